package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sales/constants"
	"sales/dto"
	"sales/models"
	"sales/services/logger"

	"github.com/redis/go-redis/v9"
)

// SummaryCache lưu kết quả GET /feedback theo bộ lọc.
// Mỗi lần ingest tăng generation nên các key cũ tự hết hiệu lực.
// Con trỏ nil là cache tắt, mọi phương thức đều an toàn.
type SummaryCache struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger logger.Logger
}

func NewSummaryCache(rdb redis.Cmdable, ttl time.Duration, log logger.Logger) *SummaryCache {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = constants.DefaultCacheTTL
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &SummaryCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: log,
	}
}

// SummaryCacheKey sinh key ổn định cho một generation và bộ lọc
func SummaryCacheKey(generation int64, filters dto.SaleFilters) string {
	parts := []string{
		constants.SummaryCachePrefix,
		fmt.Sprintf("%d", generation),
		"category=" + categoryKeyPart(filters.Category),
		"start=" + timeKeyPart(filters.StartDate),
		"end=" + timeKeyPart(filters.EndDate),
	}
	return strings.Join(parts, ":")
}

func categoryKeyPart(c *models.Category) string {
	if c == nil {
		return "*"
	}
	return c.Slug()
}

func timeKeyPart(t *time.Time) string {
	if t == nil {
		return "*"
	}
	return t.UTC().Format(time.RFC3339)
}

func (c *SummaryCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, constants.SummaryGenerationCounter).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}

// Get trả về kết quả đã cache cùng generation đã đọc, lỗi Redis được coi như cache miss.
// Generation âm nghĩa là không đọc được và Set sẽ bỏ qua.
func (c *SummaryCache) Get(ctx context.Context, filters dto.SaleFilters) ([]models.CategorySummary, int64, bool) {
	if c == nil {
		return nil, -1, false
	}
	gen, err := c.generation(ctx)
	if err != nil {
		c.logger.Warn("Không đọc được generation của cache: %v", err)
		return nil, -1, false
	}

	var summaries []models.CategorySummary
	hit, err := GetFromRedis(ctx, c.rdb, SummaryCacheKey(gen, filters), &summaries)
	if err != nil {
		c.logger.Warn("Lỗi đọc cache tổng hợp danh mục: %v", err)
		return nil, gen, false
	}
	return summaries, gen, hit
}

// Set lưu kết quả dưới generation mà Get đã trả về
func (c *SummaryCache) Set(ctx context.Context, generation int64, filters dto.SaleFilters, summaries []models.CategorySummary) {
	if c == nil || generation < 0 {
		return
	}
	if err := SetToRedis(ctx, c.rdb, SummaryCacheKey(generation, filters), summaries, c.ttl); err != nil {
		c.logger.Warn("Lỗi ghi cache tổng hợp danh mục: %v", err)
	}
}

// Invalidate làm mọi key hiện có hết hiệu lực
func (c *SummaryCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Incr(ctx, constants.SummaryGenerationCounter).Err(); err != nil {
		c.logger.Warn("Không tăng được generation của cache: %v", err)
	}
}
