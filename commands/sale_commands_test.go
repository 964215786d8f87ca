package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales/models"
	"sales/testutil"

	"gorm.io/gorm"
)

func TestCreateSaleCommand(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	sale := testutil.SaleFixture("o-1", testutil.CategoryPtr(models.CategoryBags), 12.5, testutil.Date(2025, time.May, 4))
	cmd := NewCreateSaleCommand(&sale, db)
	if err := cmd.Execute(ctx); err != nil {
		t.Fatalf("execute: %v", err)
	}

	created := cmd.Sale()
	if created.ID == 0 {
		t.Fatal("expected generated ID")
	}
	if created.Category == nil || *created.Category != models.CategoryBags {
		t.Errorf("category = %v", created.Category)
	}
	if !created.DatePayment.Equal(testutil.Date(2025, time.May, 4)) {
		t.Errorf("date = %v", created.DatePayment)
	}

	var count int64
	db.Model(&models.Sale{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}
}

func TestCreateSaleCommandDuplicateOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	first := testutil.SaleFixture("o-1", nil, 1, testutil.Date(2025, time.May, 4))
	if err := NewCreateSaleCommand(&first, db).Execute(ctx); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	second := testutil.SaleFixture("o-1", nil, 2, testutil.Date(2025, time.May, 5))
	err := NewCreateSaleCommand(&second, db).Execute(ctx)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}

	var count int64
	db.Model(&models.Sale{}).Count(&count)
	if count != 1 {
		t.Errorf("expected the failed insert to roll back, got %d rows", count)
	}
}
