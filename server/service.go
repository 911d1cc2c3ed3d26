package server

import (
	"context"
	"log/slog"

	"npiregistry/internal/config"
	"npiregistry/normalization"
	"npiregistry/registry"
	"npiregistry/server/handlers"
)

// ProviderService сервис поиска провайдеров: связывает клиент реестра
// NPPES, пакетную обработку и нормализацию записей
type ProviderService struct {
	client      *registry.Client
	processor   *normalization.BatchProcessor
	searchLimit int
	logger      *slog.Logger
}

// NewProviderService создает сервис поиска провайдеров по конфигурации
func NewProviderService(cfg *config.Config) *ProviderService {
	client := registry.NewClient(registry.ClientConfig{
		BaseURL: cfg.RegistryBaseURL,
		Timeout: cfg.RequestTimeout,
	})

	processor := normalization.NewBatchProcessor(client, normalization.BatchConfig{
		Spacing: cfg.BatchSpacing,
	})

	return &ProviderService{
		client:      client,
		processor:   processor,
		searchLimit: cfg.SearchLimit,
		logger:      slog.Default().With("component", "provider_service"),
	}
}

// LookupBatch выполняет пакетный поиск по списку номеров NPI
func (s *ProviderService) LookupBatch(ctx context.Context, npis []string) (*normalization.BatchResult, error) {
	return s.processor.Run(ctx, npis)
}

// Search выполняет поиск по критериям и нормализует найденные записи.
// Признак усечения выставляется, когда реестр сообщает больше
// результатов, чем уместилось в лимит выдачи.
func (s *ProviderService) Search(ctx context.Context, criteria registry.SearchCriteria) (*handlers.SearchOutcome, error) {
	resp, err := s.client.Search(ctx, criteria, s.searchLimit)
	if err != nil {
		return nil, err
	}

	records := normalization.NormalizeAll(resp)
	s.logger.Info("search completed",
		"result_count", resp.ResultCount,
		"returned", len(records),
	)

	return &handlers.SearchOutcome{
		Records:     records,
		ResultCount: resp.ResultCount,
		Truncated:   resp.ResultCount > s.searchLimit,
	}, nil
}
