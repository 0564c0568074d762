package models

// Addcart marks a produk as wishlisted by a user. One row per (user, produk)
// pair; toggling off deletes the row instead of flipping the flag.
type Addcart struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false" json:"userID"`
	ProdukID  uint `gorm:"primaryKey;autoIncrement:false" json:"produkID"`
	IsAddcart bool `gorm:"not null;default:false" json:"isAddcart"`
}

func (Addcart) TableName() string {
	return "addcart"
}
