package dto

import (
	"testing"
	"time"

	"sales/models"

	"github.com/goccy/go-json"
)

func TestConvertToSaleResponse(t *testing.T) {
	category := models.CategoryArtAndCulture
	brand := "Acme"
	sale := models.Sale{
		ID:              3,
		IDOrder:         "o-3",
		IDProduct:       "p",
		IDBuyer:         "b",
		IDSeller:        "s",
		IDSellerCountry: "FR",
		IDBuyerCountry:  "DE",
		DatePayment:     time.Date(2025, 2, 3, 15, 4, 5, 0, time.UTC),
		Brand:           &brand,
		Category:        &category,
		Revenue:         1.5,
	}

	resp := ConvertToSaleResponse(sale)
	if resp.DatePayment != "2025-02-03T15:04:05" {
		t.Errorf("DatePayment = %q", resp.DatePayment)
	}
	if resp.Category == nil || *resp.Category != "art & culture" {
		t.Errorf("Category = %v", resp.Category)
	}
	if resp.ID != 3 || resp.IDOrder != "o-3" || *resp.Brand != "Acme" || resp.Revenue != 1.5 {
		t.Errorf("unexpected response %+v", resp)
	}

	var zero models.Category
	sale.Category = &zero
	if resp := ConvertToSaleResponse(sale); resp.Category != nil {
		t.Errorf("invalid category should be null, got %q", *resp.Category)
	}
}

func TestConvertersReturnEmptySlices(t *testing.T) {
	if got := ConvertToSaleResponses(nil); got == nil || len(got) != 0 {
		t.Errorf("ConvertToSaleResponses(nil) = %v", got)
	}
	if got := ConvertToCategorySummaryResponses(nil); got == nil || len(got) != 0 {
		t.Errorf("ConvertToCategorySummaryResponses(nil) = %v", got)
	}

	rows := ConvertToCategorySummaryResponses([]models.CategorySummary{{Category: "shoes", SalesCount: 2, TotalRevenue: 40}})
	if len(rows) != 1 || rows[0].Category != "shoes" || rows[0].SalesCount != 2 || rows[0].TotalRevenue != 40 {
		t.Errorf("rows = %+v", rows)
	}
}

func TestDatePaymentKeepsFractionalSeconds(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"whole seconds", time.Date(2025, 2, 3, 15, 0, 0, 0, time.UTC), "2025-02-03T15:00:00"},
		{"microseconds", time.Date(2025, 2, 3, 15, 0, 0, 123456000, time.UTC), "2025-02-03T15:00:00.123456"},
		{"nanoseconds", time.Date(2025, 2, 3, 15, 0, 0, 5, time.UTC), "2025-02-03T15:00:00.000000005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ConvertToSaleResponse(models.Sale{DatePayment: tt.at})
			if resp.DatePayment != tt.want {
				t.Errorf("DatePayment = %q, want %q", resp.DatePayment, tt.want)
			}
		})
	}
}

func TestFlexibleFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    float64
		wantErr bool
	}{
		{"number", `{"REVENUE":57.27456}`, 57.27456, false},
		{"integer", `{"REVENUE":12}`, 12, false},
		{"numeric string", `{"REVENUE":"57.27456"}`, 57.27456, false},
		{"padded string", `{"REVENUE":" 12 "}`, 12, false},
		{"negative string", `{"REVENUE":"-3.5"}`, -3.5, false},
		{"word", `{"REVENUE":"twelve"}`, 0, true},
		{"empty string", `{"REVENUE":""}`, 0, true},
		{"boolean", `{"REVENUE":true}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateSaleRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", req.Revenue)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Revenue == nil || float64(*req.Revenue) != tt.want {
				t.Errorf("Revenue = %v, want %v", req.Revenue, tt.want)
			}
		})
	}

	var req CreateSaleRequest
	if err := json.Unmarshal([]byte(`{"REVENUE":null}`), &req); err != nil || req.Revenue != nil {
		t.Errorf("null should leave Revenue nil, got %v err=%v", req.Revenue, err)
	}
}
