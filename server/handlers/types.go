package handlers

import (
	"context"

	"npiregistry/normalization"
	"npiregistry/registry"
)

// ProviderService описывает операции поиска провайдеров, используемые обработчиками
type ProviderService interface {
	LookupBatch(ctx context.Context, npis []string) (*normalization.BatchResult, error)
	Search(ctx context.Context, criteria registry.SearchCriteria) (*SearchOutcome, error)
}

// SearchOutcome результат поиска по критериям: нормализованные записи
// и признак усечения выдачи лимитом
type SearchOutcome struct {
	Records     []*normalization.ProviderRecord `json:"records"`
	ResultCount int                             `json:"result_count"`
	Truncated   bool                            `json:"truncated"`
}

// LookupRequest запрос одиночного поиска по номеру NPI
type LookupRequest struct {
	NPI string `json:"npi" example:"1234567893"`
}

// BatchLookupRequest запрос пакетного поиска по списку номеров
type BatchLookupRequest struct {
	NPIs    []string `json:"npis"`
	Focus   string   `json:"focus" example:"facility"`
	ShowAll bool     `json:"show_all"`
}

// SearchRequest запрос поиска по критериям
type SearchRequest struct {
	registry.SearchCriteria
	Focus   string `json:"focus" example:"person"`
	ShowAll bool   `json:"show_all"`
}

// TableResponse табличный ответ пакетного поиска
type TableResponse struct {
	Columns []string                 `json:"columns"`
	Rows    [][]string               `json:"rows"`
	Stats   normalization.BatchStats `json:"stats"`
}

// SearchResponse табличный ответ поиска по критериям
type SearchResponse struct {
	Columns     []string   `json:"columns"`
	Rows        [][]string `json:"rows"`
	ResultCount int        `json:"result_count"`
	Truncated   bool       `json:"truncated"`
}

// ExportRequest запрос выгрузки таблицы результатов в файл
type ExportRequest struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ErrorResponse стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   bool   `json:"error" example:"true"`
	Message string `json:"message" example:"Invalid NPI format (must be 10 digits)"`
}

// HealthResponse ответ проверки живости сервиса
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// projectionMode строит режим проекции из параметров запроса
func projectionMode(focus string, showAll bool) normalization.Mode {
	f := normalization.FocusPerson
	if focus == string(normalization.FocusFacility) {
		f = normalization.FocusFacility
	}
	return normalization.Mode{Focus: f, ShowAll: showAll}
}
