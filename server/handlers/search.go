package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"npiregistry/normalization"
	"npiregistry/registry"
	apperrors "npiregistry/server/errors"
)

// SearchHandler обработчик поиска провайдеров по критериям
type SearchHandler struct {
	service ProviderService
}

// NewSearchHandler создает новый обработчик поиска по критериям
func NewSearchHandler(service ProviderService) *SearchHandler {
	return &SearchHandler{service: service}
}

// HandleSearch обработчик поиска по критериям
// @Summary Поиск провайдеров по критериям
// @Description Выполняет поиск в реестре NPPES по имени, организации, адресу или таксономии и возвращает таблицу результатов
// @Tags search
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Критерии поиска и режим отображения"
// @Success 200 {object} SearchResponse "Таблица результатов с признаком усечения"
// @Failure 400 {object} ErrorResponse "Пустые критерии поиска"
// @Failure 502 {object} ErrorResponse "Ошибка запроса к реестру"
// @Router /api/search [post]
func (h *SearchHandler) HandleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("Invalid request body", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	outcome, err := h.service.Search(c.Request.Context(), req.SearchCriteria)
	if err != nil {
		if errors.Is(err, registry.ErrMissingCriteria) {
			SendJSONError(c, http.StatusBadRequest, "At least one search criterion is required")
			return
		}
		appErr := apperrors.NewBadGatewayError("Registry search failed", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	table := normalization.ProjectRecords(outcome.Records, projectionMode(req.Focus, req.ShowAll))
	SendJSONResponse(c, http.StatusOK, SearchResponse{
		Columns:     table.Columns,
		Rows:        table.Rows,
		ResultCount: outcome.ResultCount,
		Truncated:   outcome.Truncated,
	})
}
