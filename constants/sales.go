package constants

import "time"

// Phân trang cho GET /sales, chỉ áp dụng khi client gửi page hoặc limit
const (
	DefaultPage  = 0
	DefaultLimit = 50
	MaxLimit     = 500
)

// NoLimit nghĩa là không phân trang, trả về mọi dòng khớp
const NoLimit = 0

// Số danh mục giữ lại ở cuối kết quả GET /feedback
const SummaryKeepLast = 3

// Cache tổng hợp danh mục
const (
	DefaultCacheTTL          = 5 * time.Minute
	SummaryCachePrefix       = "feedback"
	SummaryGenerationCounter = "feedback:generation"
)

// Thông báo lỗi cố định trả về client
const (
	MsgSaleNotFound   = "Sale not found"
	MsgDuplicateOrder = "Sale with this order id already exists"
)
