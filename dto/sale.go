package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sales/models"

	"github.com/goccy/go-json"
)

// DatePaymentLayout là định dạng DATE_PAYMENT trả về cho client.
// Phần lẻ của giây chỉ xuất hiện khi khác 0.
const DatePaymentLayout = "2006-01-02T15:04:05.999999999"

// FlexibleFloat nhận cả số JSON lẫn chuỗi chứa số, ví dụ 57.27 hoặc "57.27"
type FlexibleFloat float64

func (f *FlexibleFloat) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", s, err)
		}
		*f = FlexibleFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexibleFloat(v)
	return nil
}

// SaleQuery là các tham số lọc lấy từ query string
type SaleQuery struct {
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      string `form:"page"`
	Limit     string `form:"limit"`
}

// SaleFilters là bộ lọc đã được kiểm tra, nil nghĩa là không lọc
type SaleFilters struct {
	Category  *models.Category `json:"category,omitempty"`
	StartDate *time.Time       `json:"start_date,omitempty"`
	EndDate   *time.Time       `json:"end_date,omitempty"`
}

// CreateSaleRequest là payload của POST /ingest (mọi trường trừ ID)
type CreateSaleRequest struct {
	IDOrder         string         `json:"ID_ORDER" validate:"required,max=64"`
	IDProduct       string         `json:"ID_PRODUCT" validate:"required,max=64"`
	IDBuyer         string         `json:"ID_BUYER" validate:"required,max=64"`
	IDSeller        string         `json:"ID_SELLER" validate:"required,max=64"`
	IDSellerCountry string         `json:"ID_SELLER_COUNTRY" validate:"required,max=16"`
	IDBuyerCountry  string         `json:"ID_BUYER_COUNTRY" validate:"required,max=16"`
	DatePayment     string         `json:"DATE_PAYMENT" validate:"required"`
	Brand           *string        `json:"BRAND" validate:"omitempty,max=255"`
	Category        *string        `json:"CATEGORY"`
	Revenue         *FlexibleFloat `json:"REVENUE" validate:"required"`
}

// SaleResponse là DTO trả về cho một giao dịch
type SaleResponse struct {
	ID              uint    `json:"ID"`
	IDOrder         string  `json:"ID_ORDER"`
	IDProduct       string  `json:"ID_PRODUCT"`
	IDBuyer         string  `json:"ID_BUYER"`
	IDSeller        string  `json:"ID_SELLER"`
	IDSellerCountry string  `json:"ID_SELLER_COUNTRY"`
	IDBuyerCountry  string  `json:"ID_BUYER_COUNTRY"`
	DatePayment     string  `json:"DATE_PAYMENT"`
	Brand           *string `json:"BRAND"`
	Category        *string `json:"CATEGORY"`
	Revenue         float64 `json:"REVENUE"`
}

// CategorySummaryResponse là một dòng của GET /feedback
type CategorySummaryResponse struct {
	Category     string  `json:"category" example:"clothing"`
	SalesCount   int64   `json:"sales_count" example:"5"`
	TotalRevenue float64 `json:"total_revenue" example:"150"`
}

func ConvertToSaleResponse(sale models.Sale) SaleResponse {
	resp := SaleResponse{
		ID:              sale.ID,
		IDOrder:         sale.IDOrder,
		IDProduct:       sale.IDProduct,
		IDBuyer:         sale.IDBuyer,
		IDSeller:        sale.IDSeller,
		IDSellerCountry: sale.IDSellerCountry,
		IDBuyerCountry:  sale.IDBuyerCountry,
		DatePayment:     sale.DatePayment.Format(DatePaymentLayout),
		Brand:           sale.Brand,
		Revenue:         sale.Revenue,
	}
	// NULL trong DB có thể được scan thành Category(0)
	if sale.Category != nil && sale.Category.Valid() {
		label := sale.Category.Label()
		resp.Category = &label
	}
	return resp
}

// ConvertToSaleResponses luôn trả về slice khác nil để JSON ra [] thay vì null
func ConvertToSaleResponses(sales []models.Sale) []SaleResponse {
	responses := make([]SaleResponse, 0, len(sales))
	for _, sale := range sales {
		responses = append(responses, ConvertToSaleResponse(sale))
	}
	return responses
}

func ConvertToCategorySummaryResponses(summaries []models.CategorySummary) []CategorySummaryResponse {
	responses := make([]CategorySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, CategorySummaryResponse{
			Category:     s.Category,
			SalesCount:   s.SalesCount,
			TotalRevenue: s.TotalRevenue,
		})
	}
	return responses
}
