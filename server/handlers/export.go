package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"npiregistry/normalization"
	apperrors "npiregistry/server/errors"
)

// ExportHandler обработчик выгрузки таблиц результатов в файлы
type ExportHandler struct {
	exporter *normalization.Exporter
}

// NewExportHandler создает новый обработчик выгрузки
func NewExportHandler() *ExportHandler {
	return &ExportHandler{exporter: normalization.NewExporter()}
}

// HandleExport обработчик выгрузки таблицы в CSV или Excel
// @Summary Выгрузить таблицу результатов
// @Description Принимает таблицу результатов и возвращает файл в формате CSV или XLSX
// @Tags export
// @Accept json
// @Produce application/octet-stream
// @Param format path string true "Формат файла (csv или xlsx)"
// @Param request body ExportRequest true "Таблица результатов"
// @Success 200 {file} file "Файл с результатами"
// @Failure 400 {object} ErrorResponse "Неверный формат или пустая таблица"
// @Failure 500 {object} ErrorResponse "Ошибка формирования файла"
// @Router /api/export/{format} [post]
func (h *ExportHandler) HandleExport(c *gin.Context) {
	format := normalization.ExportFormat(c.Param("format"))
	if format != normalization.FormatCSV && format != normalization.FormatExcel {
		SendJSONError(c, http.StatusBadRequest, "Unsupported export format (use csv or xlsx)")
		return
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("Invalid request body", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}
	if len(req.Columns) == 0 {
		SendJSONError(c, http.StatusBadRequest, "Table columns are required")
		return
	}

	table := normalization.Table{Columns: req.Columns, Rows: req.Rows}

	var buf bytes.Buffer
	var contentType string
	var err error
	switch format {
	case normalization.FormatCSV:
		contentType = "text/csv"
		err = h.exporter.WriteCSV(&buf, table)
	case normalization.FormatExcel:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = h.exporter.WriteExcel(&buf, table)
	}
	if err != nil {
		appErr := apperrors.NewInternalError("Failed to build export file", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	filename := fmt.Sprintf("npi_results_%s.%s", time.Now().Format("20060102_150405"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
