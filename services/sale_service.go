package services

import (
	"context"
	"errors"

	"sales/builders"
	"sales/commands"
	"sales/constants"
	"sales/dto"
	apperrors "sales/errors"
	"sales/models"
	"sales/services/logger"
	"sales/services/notification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	aliasCategory   = "category"
	aliasSalesCount = "sales_count"

	summarySelect = `"CATEGORY" AS category, COUNT("ID") AS sales_count, SUM("REVENUE") AS total_revenue`
)

type SaleServiceInterface interface {
	ListSales(ctx context.Context, filters dto.SaleFilters, page, limit int) ([]models.Sale, int64, error)
	GetSalesByOrderID(ctx context.Context, idOrder string) ([]models.Sale, error)
	GetCategorySummary(ctx context.Context, filters dto.SaleFilters) ([]models.CategorySummary, error)
	IngestSale(ctx context.Context, sale *models.Sale) (*models.Sale, error)
}

type SaleService struct {
	db       *gorm.DB
	logger   logger.Logger
	cache    *SummaryCache
	notifier notification.Service
}

type SaleServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Cache    *SummaryCache
	Notifier notification.Service
}

func NewSaleService(opts SaleServiceOptions) *SaleService {
	s := &SaleService{
		db:       opts.DB,
		logger:   opts.Logger,
		cache:    opts.Cache,
		notifier: opts.Notifier,
	}
	if s.logger == nil {
		s.logger = logger.Nop{}
	}
	if s.notifier == nil {
		s.notifier = notification.NoopService{}
	}
	return s
}

// ListSales trả về giao dịch khớp bộ lọc cùng tổng số dòng khớp.
// limit = 0 trả về mọi dòng, ngược lại chỉ một trang.
func (s *SaleService) ListSales(ctx context.Context, filters dto.SaleFilters, page, limit int) ([]models.Sale, int64, error) {
	base := s.db.WithContext(ctx).Model(&models.Sale{})
	query := builders.BuildSaleQuery(base, filters, "").Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi khi đếm giao dịch", err)
	}

	sales := make([]models.Sale, 0)
	if total == 0 {
		return sales, 0, nil
	}

	err := builders.NewSaleQueryBuilder(query).
		OrderBy(builders.ColumnID).
		Paginate(page, limit).
		Build().
		Find(&sales).Error
	if err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi khi truy vấn giao dịch", err)
	}
	return sales, total, nil
}

// GetSalesByOrderID trả về mọi dòng có ID_ORDER khớp, lỗi SALE_NOT_FOUND nếu không có dòng nào
func (s *SaleService) GetSalesByOrderID(ctx context.Context, idOrder string) ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: builders.ColumnIDOrder}, Value: idOrder}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: builders.ColumnID}}).
		Find(&sales).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi khi truy vấn giao dịch theo mã đơn", err)
	}
	if len(sales) == 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeSaleNotFound, constants.MsgSaleNotFound, apperrors.ErrSaleNotFound)
	}
	return sales, nil
}

// GetCategorySummary gộp theo danh mục, sắp xếp tăng dần theo số giao dịch
// rồi giữ lại 3 dòng cuối (thứ tự tăng dần được giữ nguyên).
func (s *SaleService) GetCategorySummary(ctx context.Context, filters dto.SaleFilters) ([]models.CategorySummary, error) {
	cached, generation, ok := s.cache.Get(ctx, filters)
	if ok {
		s.logger.Debug("Cache hit cho tổng hợp danh mục")
		return cached, nil
	}

	summaries := make([]models.CategorySummary, 0)
	if err := summaryQuery(s.db.WithContext(ctx), filters).Scan(&summaries).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi khi tổng hợp theo danh mục", err)
	}

	summaries = keepLast(summaries, constants.SummaryKeepLast)
	// ghi theo generation đã đọc trước truy vấn, ingest xen giữa sẽ làm key này hết hiệu lực
	s.cache.Set(ctx, generation, filters, summaries)
	return summaries, nil
}

// summaryQuery dựng truy vấn gộp theo danh mục, bỏ qua dòng CATEGORY NULL
func summaryQuery(db *gorm.DB, filters dto.SaleFilters) *gorm.DB {
	base := db.Model(&models.Sale{}).
		Select(summarySelect).
		Where(`"CATEGORY" IS NOT NULL`).
		Group(builders.ColumnCategory)

	return builders.NewSaleQueryBuilder(builders.BuildSaleQuery(base, filters, aliasSalesCount)).
		OrderBy(aliasCategory).
		Build()
}

func keepLast(summaries []models.CategorySummary, n int) []models.CategorySummary {
	if len(summaries) <= n {
		return summaries
	}
	return summaries[len(summaries)-n:]
}

// IngestSale ghi một giao dịch mới và trả về bản ghi đã lưu kèm ID
func (s *SaleService) IngestSale(ctx context.Context, sale *models.Sale) (*models.Sale, error) {
	cmd := commands.NewCreateSaleCommand(sale, s.db)
	if err := cmd.Execute(ctx); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBDuplicate, constants.MsgDuplicateOrder, apperrors.ErrDuplicateOrder)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi khi ghi giao dịch", err)
	}

	created := cmd.Sale()
	s.logger.Info("Đã ghi giao dịch ID=%d ID_ORDER=%s", created.ID, created.IDOrder)

	s.cache.Invalidate(ctx)
	if err := s.notifier.PublishSaleIngested(ctx, *created); err != nil {
		s.logger.Error("Không phát được sự kiện %s cho ID_ORDER=%s: %v", notification.EventSaleIngested, created.IDOrder, err)
	}
	return created, nil
}
