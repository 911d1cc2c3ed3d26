package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealth обработчик проверки живости сервиса
// @Summary Проверка живости
// @Description Возвращает статус сервиса
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse "Сервис работает"
// @Router /api/health [get]
func HandleHealth(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, HealthResponse{Status: "ok"})
}
