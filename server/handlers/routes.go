package handlers

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует маршруты API в Gin роутере
func RegisterRoutes(router *gin.Engine, service ProviderService, maxBatchSize int) {
	lookupHandler := NewLookupHandler(service, maxBatchSize)
	searchHandler := NewSearchHandler(service)
	exportHandler := NewExportHandler()

	api := router.Group("/api")
	{
		api.GET("/health", HandleHealth)

		api.POST("/lookup", lookupHandler.HandleLookup)
		api.POST("/lookup/batch", lookupHandler.HandleBatchLookup)
		api.POST("/lookup/file", lookupHandler.HandleFileLookup)

		api.POST("/search", searchHandler.HandleSearch)

		api.POST("/export/:format", exportHandler.HandleExport)
	}
}
