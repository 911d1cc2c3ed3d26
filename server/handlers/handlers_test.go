package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npiregistry/normalization"
	"npiregistry/registry"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubService сервис провайдеров для тестов обработчиков
type stubService struct {
	batchResult *normalization.BatchResult
	batchErr    error
	batchNPIs   []string

	searchOutcome *SearchOutcome
	searchErr     error
}

func (s *stubService) LookupBatch(ctx context.Context, npis []string) (*normalization.BatchResult, error) {
	s.batchNPIs = npis
	if s.batchErr != nil {
		return nil, s.batchErr
	}
	return s.batchResult, nil
}

func (s *stubService) Search(ctx context.Context, criteria registry.SearchCriteria) (*SearchOutcome, error) {
	if criteria.IsEmpty() {
		return nil, registry.ErrMissingCriteria
	}
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.searchOutcome, nil
}

func newTestRouter(service ProviderService) *gin.Engine {
	router := gin.New()
	RegisterRoutes(router, service, 100)
	return router
}

func orgRecord(npi string) *normalization.ProviderRecord {
	return &normalization.ProviderRecord{
		NPI:              npi,
		EntityType:       normalization.EntityOrganization,
		OrganizationName: "ACME HEALTH",
		FacilityName:     "ACME HEALTH",
		Name:             "ACME HEALTH",
		LocationCount:    1,
	}
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHandleLookupSuccess(t *testing.T) {
	service := &stubService{
		batchResult: &normalization.BatchResult{Entries: []normalization.BatchEntry{
			{Record: orgRecord("1234567893")},
		}},
	}
	router := newTestRouter(service)

	body, _ := json.Marshal(LookupRequest{NPI: "1234567893"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/lookup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"1234567893"}, service.batchNPIs)

	var rec normalization.ProviderRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "ACME HEALTH", rec.OrganizationName)
}

func TestHandleLookupErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		kind       normalization.ErrorKind
		wantStatus int
	}{
		{"invalid format", normalization.ErrInvalidFormat, http.StatusBadRequest},
		{"not found", normalization.ErrNotFound, http.StatusNotFound},
		{"lookup failed", normalization.ErrLookupFailed, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubService{
				batchResult: &normalization.BatchResult{Entries: []normalization.BatchEntry{
					{Err: &normalization.ErrorRecord{NPI: "123", Kind: tt.kind}},
				}},
			}
			router := newTestRouter(service)

			body, _ := json.Marshal(LookupRequest{NPI: "123"})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/lookup", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, resp.Error)
			assert.Equal(t, tt.kind.Message(), resp.Message)
		})
	}
}

func TestHandleBatchLookup(t *testing.T) {
	service := &stubService{
		batchResult: &normalization.BatchResult{Entries: []normalization.BatchEntry{
			{Record: orgRecord("1234567893")},
			{Err: &normalization.ErrorRecord{NPI: "123", Kind: normalization.ErrInvalidFormat}},
		}},
	}
	router := newTestRouter(service)

	body, _ := json.Marshal(BatchLookupRequest{
		NPIs:  []string{"1234567893", "123"},
		Focus: "facility",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/lookup/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp TableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Rows, 2)
	assert.Contains(t, resp.Columns, "error")
	assert.Equal(t, 2, resp.Stats.Total)
	assert.Equal(t, 1, resp.Stats.Organizations)
	assert.Equal(t, 1, resp.Stats.Errors)
}

func TestHandleBatchLookupEmptyList(t *testing.T) {
	router := newTestRouter(&stubService{})

	body, _ := json.Marshal(BatchLookupRequest{NPIs: nil})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/lookup/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleBatchLookupTooLarge(t *testing.T) {
	router := newTestRouter(&stubService{})

	npis := make([]string, 101)
	for i := range npis {
		npis[i] = "1234567893"
	}
	body, _ := json.Marshal(BatchLookupRequest{NPIs: npis})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/lookup/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFileLookup(t *testing.T) {
	service := &stubService{
		batchResult: &normalization.BatchResult{Entries: []normalization.BatchEntry{
			{Record: orgRecord("1234567893")},
		}},
	}
	router := newTestRouter(service)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "npis.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("npi\n1234567893\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/lookup/file?focus=facility", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"1234567893"}, service.batchNPIs)
}

func TestHandleFileLookupMissingFile(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/lookup/file", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSearch(t *testing.T) {
	service := &stubService{
		searchOutcome: &SearchOutcome{
			Records:     []*normalization.ProviderRecord{orgRecord("1234567893")},
			ResultCount: 120,
			Truncated:   true,
		},
	}
	router := newTestRouter(service)

	body, _ := json.Marshal(SearchRequest{
		SearchCriteria: registry.SearchCriteria{OrganizationName: "ACME"},
		Focus:          "facility",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Truncated)
	assert.Equal(t, 120, resp.ResultCount)
	assert.Len(t, resp.Rows, 1)
}

func TestHandleSearchEmptyCriteria(t *testing.T) {
	router := newTestRouter(&stubService{})

	body, _ := json.Marshal(SearchRequest{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleExportCSV(t *testing.T) {
	router := newTestRouter(&stubService{})

	body, _ := json.Marshal(ExportRequest{
		Columns: []string{"npi", "name"},
		Rows:    [][]string{{"1234567893", "JOHN DOE"}},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/export/csv", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "1234567893")
}

func TestHandleExportExcel(t *testing.T) {
	router := newTestRouter(&stubService{})

	body, _ := json.Marshal(ExportRequest{
		Columns: []string{"npi"},
		Rows:    [][]string{{"1234567893"}},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/export/xlsx", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestHandleExportUnknownFormat(t *testing.T) {
	router := newTestRouter(&stubService{})

	body, _ := json.Marshal(ExportRequest{Columns: []string{"npi"}})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/export/pdf", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
