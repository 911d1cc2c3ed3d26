package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL адрес публичного NPPES NPI Registry API
	DefaultBaseURL = "https://npiregistry.cms.hhs.gov/api/"

	// APIVersion версия протокола реестра, передается в каждом запросе
	APIVersion = "2.1"

	// DefaultTimeout таймаут одного запроса к реестру
	DefaultTimeout = 10 * time.Second
)

// ErrorKind классификация ошибок клиента реестра
type ErrorKind string

const (
	// KindNetwork транспортная ошибка, таймаут или неуспешный HTTP статус
	KindNetwork ErrorKind = "network"

	// KindDecode тело ответа не является корректным JSON
	KindDecode ErrorKind = "decode"
)

// ClientError классифицированная ошибка запроса к реестру.
// Повторные попытки не выполняются: ошибка терминальна для одного вызова.
type ClientError struct {
	Kind ErrorKind
	Err  error
}

// Error реализует интерфейс error
func (e *ClientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("registry %s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("registry %s error", e.Kind)
}

// Unwrap возвращает вложенную ошибку для errors.Is и errors.As
func (e *ClientError) Unwrap() error {
	return e.Err
}

// Client клиент NPPES NPI Registry API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientConfig конфигурация клиента реестра
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient создает новый клиент реестра
func NewClient(config ClientConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	// Connection pooling для серий запросов к одному хосту
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxConnsPerHost:     5,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
		logger: slog.Default().With("component", "registry_client"),
	}
}

// LookupByNumber выполняет поиск записи по 10-значному номеру NPI.
// Пустой результат (result_count = 0) не является ошибкой.
func (c *Client) LookupByNumber(ctx context.Context, number string) (*Response, error) {
	params := url.Values{}
	params.Set("version", APIVersion)
	params.Set("number", number)

	return c.get(ctx, params)
}

// Search выполняет поиск по набору критериев.
// limit ограничивает число возвращаемых записей; общее количество
// совпадений реестр сообщает в result_count, поэтому вызывающая сторона
// обязана сравнить result_count с limit и показать признак усечения.
func (c *Client) Search(ctx context.Context, criteria SearchCriteria, limit int) (*Response, error) {
	params, err := criteria.BuildQuery()
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	return c.get(ctx, params)
}

func (c *Client) get(ctx context.Context, params url.Values) (*Response, error) {
	fullURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &ClientError{Kind: KindNetwork, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Registry request failed",
			"error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds())
		return nil, &ClientError{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Registry returned non-OK status",
			"status_code", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds())
		return nil, &ClientError{Kind: KindNetwork, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &ClientError{Kind: KindDecode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return &out, nil
}
