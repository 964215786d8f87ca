package commands

import (
	"context"

	"sales/models"

	"gorm.io/gorm"
)

// SaleCommand định nghĩa interface cho các command ghi dữ liệu
type SaleCommand interface {
	Execute(ctx context.Context) error
}

// CreateSaleCommand ghi một giao dịch mới rồi đọc lại bản ghi đã lưu
type CreateSaleCommand struct {
	sale *models.Sale
	db   *gorm.DB
}

var _ SaleCommand = (*CreateSaleCommand)(nil)

func NewCreateSaleCommand(sale *models.Sale, db *gorm.DB) *CreateSaleCommand {
	return &CreateSaleCommand{
		sale: sale,
		db:   db,
	}
}

func (c *CreateSaleCommand) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c.sale).Error; err != nil {
			return err
		}
		// Nạp lại để lấy đúng giá trị DB đã lưu, kể cả ID vừa sinh
		return tx.First(c.sale, c.sale.ID).Error
	})
}

// Sale trả về bản ghi sau khi Execute
func (c *CreateSaleCommand) Sale() *models.Sale {
	return c.sale
}
