package transactionController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/vridaa/gift-bouqet-be/models"
)

// GET /api/transactions/admin/export-excel (admin)
func ExportTransactionsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transactions []models.Transaction
		if err := db.Preload("Produk").Order("transaction_date DESC").Find(&transactions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to fetch transactions",
			})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Transactions")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to create Excel sheet",
			})
			return
		}

		headers := []string{
			"TransactionID", "UserID", "Produk", "Quantity",
			"TotalPrice", "Status", "TransactionDate",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, t := range transactions {
			row := sheet.AddRow()
			row.AddCell().SetValue(t.TransactionID)
			row.AddCell().SetValue(t.UserID)
			if t.Produk != nil {
				row.AddCell().SetValue(t.Produk.Nama)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(t.ProdukQuantity)
			row.AddCell().SetValue(t.TotalPrice.String())
			row.AddCell().SetValue(t.Status)
			row.AddCell().SetValue(t.TransactionDate.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=transactions.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to write Excel file",
			})
			return
		}
	}
}
