package routes

import (
	"net/http"

	"sales/controllers"
	_ "sales/docs"
	"sales/middleware"
	"sales/services/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, saleController controllers.SaleController, log logger.Logger) {
	router.Use(middleware.RequestID(), middleware.ErrorHandler(log))

	router.GET("/sales", saleController.GetSales)
	router.GET("/sales/:id_order", saleController.GetSaleByOrderID)
	router.GET("/feedback", saleController.GetCategorySummary)
	router.POST("/ingest", saleController.IngestSale)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
