package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"npiregistry/importer"
	"npiregistry/normalization"
	apperrors "npiregistry/server/errors"
)

// LookupHandler обработчик поиска провайдеров по номерам NPI
type LookupHandler struct {
	service      ProviderService
	maxBatchSize int
}

// NewLookupHandler создает новый обработчик поиска
func NewLookupHandler(service ProviderService, maxBatchSize int) *LookupHandler {
	return &LookupHandler{
		service:      service,
		maxBatchSize: maxBatchSize,
	}
}

// HandleLookup обработчик одиночного поиска по номеру NPI
// @Summary Найти провайдера по NPI
// @Description Выполняет поиск в реестре NPPES по номеру NPI и возвращает нормализованную запись провайдера
// @Tags lookup
// @Accept json
// @Produce json
// @Param request body LookupRequest true "Номер NPI"
// @Success 200 {object} normalization.ProviderRecord "Запись провайдера"
// @Failure 400 {object} ErrorResponse "Неверный формат NPI"
// @Failure 404 {object} ErrorResponse "Провайдер не найден"
// @Failure 502 {object} ErrorResponse "Ошибка запроса к реестру"
// @Router /api/lookup [post]
func (h *LookupHandler) HandleLookup(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("Invalid request body", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	result, err := h.service.LookupBatch(c.Request.Context(), []string{req.NPI})
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "Lookup was interrupted")
		return
	}
	if len(result.Entries) == 0 {
		SendJSONError(c, http.StatusBadRequest, "NPI number is required")
		return
	}

	entry := result.Entries[0]
	if entry.Err != nil {
		SendJSONError(c, lookupErrorStatus(entry.Err.Kind), entry.Err.Kind.Message())
		return
	}

	SendJSONResponse(c, http.StatusOK, entry.Record)
}

// HandleBatchLookup обработчик пакетного поиска по списку номеров
// @Summary Пакетный поиск провайдеров
// @Description Выполняет поиск по списку номеров NPI и возвращает результат таблицей с учетом режима отображения
// @Tags lookup
// @Accept json
// @Produce json
// @Param request body BatchLookupRequest true "Список номеров NPI и режим отображения"
// @Success 200 {object} TableResponse "Таблица результатов"
// @Failure 400 {object} ErrorResponse "Неверный запрос"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/lookup/batch [post]
func (h *LookupHandler) HandleBatchLookup(c *gin.Context) {
	var req BatchLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("Invalid request body", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	h.respondBatch(c, req.NPIs, projectionMode(req.Focus, req.ShowAll))
}

// HandleFileLookup обработчик пакетного поиска по загруженному файлу
// @Summary Пакетный поиск по файлу
// @Description Принимает CSV, Excel или текстовый файл со списком номеров NPI и возвращает таблицу результатов
// @Tags lookup
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл со списком NPI"
// @Param focus query string false "Приоритетный набор колонок (facility или person)"
// @Param show_all query bool false "Показывать все колонки"
// @Success 200 {object} TableResponse "Таблица результатов"
// @Failure 400 {object} ErrorResponse "Неверный файл"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/lookup/file [post]
func (h *LookupHandler) HandleFileLookup(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		SendJSONError(c, http.StatusBadRequest, "File is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		SendJSONError(c, http.StatusBadRequest, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	npis, err := importer.ParseFile(fileHeader.Filename, file)
	if err != nil {
		appErr := apperrors.NewValidationError("Failed to parse uploaded file", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	showAll := c.Query("show_all") == "true"
	h.respondBatch(c, npis, projectionMode(c.Query("focus"), showAll))
}

// respondBatch выполняет пакетный поиск и отвечает таблицей результатов
func (h *LookupHandler) respondBatch(c *gin.Context, npis []string, mode normalization.Mode) {
	if len(npis) == 0 {
		SendJSONError(c, http.StatusBadRequest, "At least one NPI number is required")
		return
	}
	if len(npis) > h.maxBatchSize {
		SendJSONError(c, http.StatusBadRequest, "Batch size exceeds the allowed maximum")
		return
	}

	result, err := h.service.LookupBatch(c.Request.Context(), npis)
	if err != nil {
		// Контекст отменен клиентом, частичный результат не отправляем
		SendJSONError(c, http.StatusInternalServerError, "Lookup was interrupted")
		return
	}

	table := normalization.Project(result, mode)
	SendJSONResponse(c, http.StatusOK, TableResponse{
		Columns: table.Columns,
		Rows:    table.Rows,
		Stats:   result.Stats(),
	})
}

// lookupErrorStatus отображает вид ошибки поиска в HTTP статус
func lookupErrorStatus(kind normalization.ErrorKind) int {
	switch kind {
	case normalization.ErrInvalidFormat:
		return http.StatusBadRequest
	case normalization.ErrNotFound:
		return http.StatusNotFound
	case normalization.ErrLookupFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
