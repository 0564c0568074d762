package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	UserID         uint          `gorm:"primaryKey;autoIncrement" json:"userID"`
	Username       string        `gorm:"size:100;not null" json:"username"`
	Email          string        `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password       string        `gorm:"size:255;not null" json:"-"`
	ProfilePicture string        `gorm:"size:255;not null" json:"profilePicture"`
	Role           bool          `gorm:"not null;default:false" json:"role"`
	Transactions   []Transaction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	OwnedProduk    []OwnedProduk `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Addcart        []Addcart     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// SetPassword replaces the stored hash with a bcrypt hash of plain.
func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
