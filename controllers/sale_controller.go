package controllers

import (
	"sales/dto"
	"sales/response"
	"sales/services"
	"sales/validator"

	"github.com/gin-gonic/gin"
)

type SaleController struct {
	Service services.SaleServiceInterface
}

func NewSaleController(service services.SaleServiceInterface) SaleController {
	return SaleController{
		Service: service,
	}
}

func bindFilters(c *gin.Context) (dto.SaleQuery, dto.SaleFilters, bool) {
	var query dto.SaleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return query, dto.SaleFilters{}, false
	}

	filters, err := validator.ParseFilters(query)
	if err != nil {
		c.Error(err)
		return query, dto.SaleFilters{}, false
	}
	return query, filters, true
}

// GetSales lấy danh sách giao dịch theo bộ lọc, có phân trang
//
//	@Summary	All sales
//	@Tags		sales
//	@Produce	json
//	@Param		category	query		string	false	"Filter by category"	Enums(clothing, shoes, accessories, jewellery, bags, design_and_decoration, boys, girls, sport_and_leisure, high_tech, art_and_culture, pet_accessories)
//	@Param		start_date	query		string	false	"Filter by start date or datetime"	example(2025-02-03 15:00:00)
//	@Param		end_date	query		string	false	"Filter by end date or datetime"	example(2025-02-03 15:00:00)
//	@Param		page		query		int		false	"Page number, starting at 0 (omit page and limit to get every row)"
//	@Param		limit		query		int		false	"Page size, default 50 when page is set (max 500)"
//	@Success	200			{object}	dto.PaginatedResponse[[]dto.SaleResponse]
//	@Failure	400			{object}	response.Response
//	@Router		/sales [get]
func (s SaleController) GetSales(c *gin.Context) {
	query, filters, ok := bindFilters(c)
	if !ok {
		return
	}
	page, limit := validator.ParsePagination(query.Page, query.Limit)

	sales, total, err := s.Service.ListSales(c.Request.Context(), filters, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessWithPagination(c, dto.ConvertToSaleResponses(sales), page, limit, int(total))
}

// GetSaleByOrderID lấy các giao dịch theo mã đơn, kết quả luôn là một danh sách
//
//	@Summary	Sale(s) by their order ID
//	@Tags		sales
//	@Produce	json
//	@Param		id_order	path		string	true	"The identifier of the order"	example(34033734)
//	@Success	200			{object}	dto.ListResponse[dto.SaleResponse]
//	@Failure	404			{object}	response.Response
//	@Router		/sales/{id_order} [get]
func (s SaleController) GetSaleByOrderID(c *gin.Context) {
	idOrder := c.Param("id_order")

	sales, err := s.Service.GetSalesByOrderID(c.Request.Context(), idOrder)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, dto.ConvertToSaleResponses(sales))
}

// GetCategorySummary tổng hợp 3 danh mục có nhiều giao dịch nhất, thứ tự tăng dần
//
//	@Summary	Summary of the top-3 categories
//	@Tags		sales
//	@Produce	json
//	@Param		category	query		string	false	"Filter by category"	Enums(clothing, shoes, accessories, jewellery, bags, design_and_decoration, boys, girls, sport_and_leisure, high_tech, art_and_culture, pet_accessories)
//	@Param		start_date	query		string	false	"Filter by start date or datetime"	example(2025-02-03 15:00:00)
//	@Param		end_date	query		string	false	"Filter by end date or datetime"	example(2025-02-03 15:00:00)
//	@Success	200			{object}	dto.ListResponse[dto.CategorySummaryResponse]
//	@Failure	400			{object}	response.Response
//	@Router		/feedback [get]
func (s SaleController) GetCategorySummary(c *gin.Context) {
	_, filters, ok := bindFilters(c)
	if !ok {
		return
	}

	summaries, err := s.Service.GetCategorySummary(c.Request.Context(), filters)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, dto.ConvertToCategorySummaryResponses(summaries))
}

// IngestSale ghi một giao dịch mới
//
//	@Summary	Ingest a sale
//	@Tags		sales
//	@Accept		json
//	@Produce	json
//	@Param		sale	body		dto.CreateSaleRequest	true	"Sale to create"
//	@Success	200		{object}	response.Response{data=dto.SaleResponse}
//	@Failure	400		{object}	response.Response
//	@Failure	409		{object}	response.Response
//	@Router		/ingest [post]
func (s SaleController) IngestSale(c *gin.Context) {
	var request dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := validator.ValidateCreateSale(&request)
	if err != nil {
		c.Error(err)
		return
	}

	created, err := s.Service.IngestSale(c.Request.Context(), sale)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, dto.ConvertToSaleResponse(*created))
}
