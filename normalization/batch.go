package normalization

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"npiregistry/registry"
)

// LookupClient интерфейс клиента реестра, используемый пакетным
// обработчиком
type LookupClient interface {
	LookupByNumber(ctx context.Context, number string) (*registry.Response, error)
}

// ProgressFunc колбэк прогресса, вызывается после каждого обработанного
// элемента
type ProgressFunc func(done, total int)

// DefaultSpacing минимальный интервал между вызовами реестра по умолчанию
const DefaultSpacing = 100 * time.Millisecond

// BatchProcessor пакетный обработчик номеров NPI.
// Выполняет элементы строго последовательно: интервал между вызовами —
// глобальный дроссель против реестра, а не свойство отдельного вызова.
// Лимитер создается на каждый обработчик, поэтому параллельные пакеты
// получают независимые бюджеты.
type BatchProcessor struct {
	client   LookupClient
	limiter  *rate.Limiter
	progress ProgressFunc
	logger   *slog.Logger
}

// BatchConfig конфигурация пакетного обработчика
type BatchConfig struct {
	// Spacing минимальный интервал между сетевыми вызовами
	Spacing time.Duration

	// Progress колбэк прогресса, может быть nil
	Progress ProgressFunc
}

// NewBatchProcessor создает новый пакетный обработчик
func NewBatchProcessor(client LookupClient, config BatchConfig) *BatchProcessor {
	if config.Spacing <= 0 {
		config.Spacing = DefaultSpacing
	}

	return &BatchProcessor{
		client:   client,
		limiter:  rate.NewLimiter(rate.Every(config.Spacing), 1),
		progress: config.Progress,
		logger:   slog.Default().With("component", "batch_processor"),
	}
}

// Run обрабатывает упорядоченный список номеров NPI.
// Пустые после обрезки номера пропускаются без строки результата.
// Ошибка отдельного элемента никогда не прерывает пакет: она
// фиксируется строкой ErrorRecord, и обработка продолжается. Порядок
// строк результата совпадает с порядком непустых входных номеров.
// Отмена контекста проверяется перед каждым элементом; при отмене
// возвращается частичный результат вместе с ошибкой контекста.
func (bp *BatchProcessor) Run(ctx context.Context, npis []string) (*BatchResult, error) {
	cleaned := make([]string, 0, len(npis))
	for _, npi := range npis {
		if trimmed := strings.TrimSpace(npi); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	total := len(cleaned)
	result := &BatchResult{Entries: make([]BatchEntry, 0, total)}

	startTime := time.Now()
	bp.logger.Info("Starting batch lookup", "total", total)

	for i, npi := range cleaned {
		select {
		case <-ctx.Done():
			bp.logger.Info("Batch lookup stopped by context",
				"processed", len(result.Entries),
				"total", total)
			return result, ctx.Err()
		default:
		}

		result.Entries = append(result.Entries, bp.processOne(ctx, npi))
		bp.reportProgress(i+1, total)
	}

	stats := result.Stats()
	bp.logger.Info("Batch lookup completed",
		"total", stats.Total,
		"organizations", stats.Organizations,
		"individuals", stats.Individuals,
		"errors", stats.Errors,
		"duration_ms", time.Since(startTime).Milliseconds())

	return result, nil
}

// processOne обрабатывает один номер: валидация, запрос, нормализация.
// Для номера с неверным форматом сетевой вызов не выполняется и токен
// лимитера не расходуется.
func (bp *BatchProcessor) processOne(ctx context.Context, npi string) BatchEntry {
	if !registry.ValidateNPI(npi) {
		return BatchEntry{Err: &ErrorRecord{NPI: npi, Kind: ErrInvalidFormat}}
	}

	if err := bp.limiter.Wait(ctx); err != nil {
		return BatchEntry{Err: &ErrorRecord{NPI: npi, Kind: ErrLookupFailed}}
	}

	resp, err := bp.client.LookupByNumber(ctx, npi)
	if err != nil {
		bp.logger.Warn("Registry lookup failed",
			"npi", npi,
			"error", err.Error())
		return BatchEntry{Err: &ErrorRecord{NPI: npi, Kind: ErrLookupFailed}}
	}

	rec := Normalize(resp)
	if rec == nil {
		return BatchEntry{Err: &ErrorRecord{NPI: npi, Kind: ErrNotFound}}
	}

	return BatchEntry{Record: rec}
}

func (bp *BatchProcessor) reportProgress(done, total int) {
	if bp.progress != nil {
		bp.progress(done, total)
	}
}
