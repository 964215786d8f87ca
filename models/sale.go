package models

import "time"

// Sale là một dòng giao dịch bán hàng. Nhiều dòng có thể cùng ID_ORDER ở tầng dữ liệu,
// nhưng schema hiện tại đặt unique index trên cột này.
type Sale struct {
	ID              uint      `json:"ID" gorm:"column:ID;primaryKey;autoIncrement"`
	IDOrder         string    `json:"ID_ORDER" gorm:"column:ID_ORDER;not null;uniqueIndex:sales_id_order_key"`
	IDProduct       string    `json:"ID_PRODUCT" gorm:"column:ID_PRODUCT;not null"`
	IDBuyer         string    `json:"ID_BUYER" gorm:"column:ID_BUYER;not null"`
	IDSeller        string    `json:"ID_SELLER" gorm:"column:ID_SELLER;not null"`
	IDSellerCountry string    `json:"ID_SELLER_COUNTRY" gorm:"column:ID_SELLER_COUNTRY;not null"`
	IDBuyerCountry  string    `json:"ID_BUYER_COUNTRY" gorm:"column:ID_BUYER_COUNTRY;not null"`
	DatePayment     time.Time `json:"DATE_PAYMENT" gorm:"column:DATE_PAYMENT;type:timestamp;not null;index"`
	Brand           *string   `json:"BRAND" gorm:"column:BRAND"`
	Category        *Category `json:"CATEGORY" gorm:"column:CATEGORY;type:varchar(64);index"`
	Revenue         float64   `json:"REVENUE" gorm:"column:REVENUE;not null"`
}

func (Sale) TableName() string {
	return "sales"
}

// Country là dữ liệu tham chiếu, được nạp từ bên ngoài
type Country struct {
	IDCountry   string  `json:"ID_COUNTRY" gorm:"column:ID_COUNTRY;primaryKey"`
	CountryName string  `json:"COUNTRY_NAME" gorm:"column:COUNTRY_NAME;not null"`
	Continent   *string `json:"CONTINENT" gorm:"column:CONTINENT"`
}

func (Country) TableName() string {
	return "countries"
}

// CategorySummary là kết quả gộp theo danh mục, không lưu xuống DB
type CategorySummary struct {
	Category     string  `json:"category" gorm:"column:category"`
	SalesCount   int64   `json:"sales_count" gorm:"column:sales_count"`
	TotalRevenue float64 `json:"total_revenue" gorm:"column:total_revenue"`
}
