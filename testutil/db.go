package testutil

import (
	"testing"
	"time"

	"sales/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB mở SQLite in-memory với schema của bảng sales và countries
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// mỗi kết nối in-memory là một database riêng
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.Country{}, &models.Sale{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// SaleFixture tạo một giao dịch hợp lệ, các trường có thể ghi đè qua opts
func SaleFixture(idOrder string, category *models.Category, revenue float64, paidAt time.Time, opts ...func(*models.Sale)) models.Sale {
	brand := "brand-" + idOrder
	sale := models.Sale{
		IDOrder:         idOrder,
		IDProduct:       "product-" + idOrder,
		IDBuyer:         "buyer-" + idOrder,
		IDSeller:        "seller-" + idOrder,
		IDSellerCountry: "FR",
		IDBuyerCountry:  "DE",
		DatePayment:     paidAt.UTC(),
		Brand:           &brand,
		Category:        category,
		Revenue:         revenue,
	}
	for _, opt := range opts {
		opt(&sale)
	}
	return sale
}

// SeedSales ghi các giao dịch và trả về bản đã có ID
func SeedSales(t *testing.T, db *gorm.DB, sales ...models.Sale) []models.Sale {
	t.Helper()
	for i := range sales {
		if err := db.Create(&sales[i]).Error; err != nil {
			t.Fatalf("seed sale %s: %v", sales[i].IDOrder, err)
		}
	}
	return sales
}

// CategoryPtr tiện cho việc khai báo fixture
func CategoryPtr(c models.Category) *models.Category {
	return &c
}

// Date trả về mốc UTC tại 12:00 của ngày đã cho
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}
