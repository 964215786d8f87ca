package builders

import (
	"time"

	"sales/dto"
	"sales/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	ColumnID          = "ID"
	ColumnIDOrder     = "ID_ORDER"
	ColumnCategory    = "CATEGORY"
	ColumnDatePayment = "DATE_PAYMENT"
)

// SaleQueryBuilder gắn dần điều kiện lọc vào một truy vấn gốc trên bảng sales
type SaleQueryBuilder struct {
	query *gorm.DB
}

// NewSaleQueryBuilder tạo builder từ truy vấn gốc (select toàn bảng hoặc truy vấn gộp)
func NewSaleQueryBuilder(base *gorm.DB) *SaleQueryBuilder {
	return &SaleQueryBuilder{
		query: base,
	}
}

// WithCategory lọc đúng nhãn chuẩn của danh mục
func (b *SaleQueryBuilder) WithCategory(category *models.Category) *SaleQueryBuilder {
	if category != nil {
		b.query = b.query.Where(clause.Eq{
			Column: clause.Column{Name: ColumnCategory},
			Value:  category.Label(),
		})
	}
	return b
}

// WithStartDate lọc DATE_PAYMENT >= start
func (b *SaleQueryBuilder) WithStartDate(start *time.Time) *SaleQueryBuilder {
	if start != nil {
		b.query = b.query.Where(clause.Gte{
			Column: clause.Column{Name: ColumnDatePayment},
			Value:  *start,
		})
	}
	return b
}

// WithEndDate lọc DATE_PAYMENT <= end
func (b *SaleQueryBuilder) WithEndDate(end *time.Time) *SaleQueryBuilder {
	if end != nil {
		b.query = b.query.Where(clause.Lte{
			Column: clause.Column{Name: ColumnDatePayment},
			Value:  *end,
		})
	}
	return b
}

// OrderBy sắp xếp tăng dần theo cột hoặc alias, có thể gọi nhiều lần
func (b *SaleQueryBuilder) OrderBy(column string) *SaleQueryBuilder {
	if column != "" {
		b.query = b.query.Order(clause.OrderByColumn{
			Column: clause.Column{Name: column},
		})
	}
	return b
}

// Paginate áp dụng offset/limit, page bắt đầu từ 0. limit <= 0 thì giữ nguyên truy vấn.
func (b *SaleQueryBuilder) Paginate(page, limit int) *SaleQueryBuilder {
	if limit > 0 {
		b.query = b.query.Offset(page * limit).Limit(limit)
	}
	return b
}

// Build trả về truy vấn hoàn chỉnh
func (b *SaleQueryBuilder) Build() *gorm.DB {
	return b.query
}

// BuildSaleQuery áp dụng bộ lọc theo thứ tự cố định: category, start, end, sort
func BuildSaleQuery(base *gorm.DB, filters dto.SaleFilters, orderBy string) *gorm.DB {
	return NewSaleQueryBuilder(base).
		WithCategory(filters.Category).
		WithStartDate(filters.StartDate).
		WithEndDate(filters.EndDate).
		OrderBy(orderBy).
		Build()
}
