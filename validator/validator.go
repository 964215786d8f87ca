package validator

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"sales/constants"
	"sales/dto"
	"sales/errors"
	"sales/models"

	playground "github.com/go-playground/validator/v10"
)

// Các định dạng ngày giờ được chấp nhận, ví dụ "2025-02-03 15:00:00"
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04",
	"2006-01-02",
}

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()
	// Dùng tên JSON trong thông báo lỗi
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ParseDateTime đọc một mốc thời gian, luôn trả về giờ UTC
func ParseDateTime(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat,
		fmt.Sprintf("%s must be a date or datetime, e.g. 2025-02-03 15:00:00", field), nil)
}

// ParseCategoryParam đọc danh mục từ query string và gợi ý slug gần nhất khi sai
func ParseCategoryParam(value string) (models.Category, error) {
	c, err := models.ParseCategory(value)
	if err == nil {
		return c, nil
	}

	message := fmt.Sprintf("category %q is not one of: %s", value, strings.Join(models.AllCategorySlugs(), ", "))
	if suggestion := SuggestCategory(value); suggestion != "" {
		message = fmt.Sprintf("category %q is not valid, did you mean %q?", value, suggestion)
	}
	return 0, errors.NewAppError(errors.ErrCodeInvalidCategory, message, err)
}

// ParseFilters chuyển query string thành bộ lọc. Không kiểm tra start <= end.
func ParseFilters(q dto.SaleQuery) (dto.SaleFilters, error) {
	var filters dto.SaleFilters

	if q.Category != "" {
		c, err := ParseCategoryParam(q.Category)
		if err != nil {
			return filters, err
		}
		filters.Category = &c
	}

	if q.StartDate != "" {
		t, err := ParseDateTime("start_date", q.StartDate)
		if err != nil {
			return filters, err
		}
		filters.StartDate = &t
	}

	if q.EndDate != "" {
		t, err := ParseDateTime("end_date", q.EndDate)
		if err != nil {
			return filters, err
		}
		filters.EndDate = &t
	}

	return filters, nil
}

// ParsePagination chỉ phân trang khi client gửi page hoặc limit.
// Không có cả hai thì limit = 0, nghĩa là trả về mọi dòng khớp.
// Giá trị sai được thay bằng mặc định, limit bị chặn ở MaxLimit.
func ParsePagination(pageStr, limitStr string) (int, int) {
	if strings.TrimSpace(pageStr) == "" && strings.TrimSpace(limitStr) == "" {
		return constants.DefaultPage, constants.NoLimit
	}

	page := constants.DefaultPage
	limit := constants.DefaultLimit

	if parsedPage, err := strconv.Atoi(strings.TrimSpace(pageStr)); err == nil && parsedPage >= 0 {
		page = parsedPage
	}

	if parsedLimit, err := strconv.Atoi(strings.TrimSpace(limitStr)); err == nil && parsedLimit > 0 {
		limit = parsedLimit
	}

	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	return page, limit
}

// ValidateCreateSale kiểm tra payload ingest và dựng model tương ứng
func ValidateCreateSale(req *dto.CreateSaleRequest) (*models.Sale, error) {
	if err := validate.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	revenue := float64(*req.Revenue)
	if math.IsNaN(revenue) || math.IsInf(revenue, 0) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "REVENUE must be a finite number", nil)
	}

	datePayment, err := ParseDateTime("DATE_PAYMENT", req.DatePayment)
	if err != nil {
		return nil, err
	}

	sale := &models.Sale{
		IDOrder:         req.IDOrder,
		IDProduct:       req.IDProduct,
		IDBuyer:         req.IDBuyer,
		IDSeller:        req.IDSeller,
		IDSellerCountry: req.IDSellerCountry,
		IDBuyerCountry:  req.IDBuyerCountry,
		DatePayment:     datePayment,
		Brand:           req.Brand,
		Revenue:         revenue,
	}

	if req.Category != nil {
		c, err := ParseCategoryParam(*req.Category)
		if err != nil {
			return nil, err
		}
		sale.Category = &c
	}

	return sale, nil
}

func translateValidationError(err error) error {
	validationErrors, ok := err.(playground.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "invalid payload", err)
	}

	fe := validationErrors[0]
	switch fe.Tag() {
	case "required":
		return errors.NewAppError(errors.ErrCodeRequiredField, fmt.Sprintf("%s is required", fe.Field()), err)
	case "max":
		return errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()), err)
	default:
		return errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("%s is invalid", fe.Field()), err)
	}
}
