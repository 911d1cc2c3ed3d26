package normalization

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"npiregistry/registry"
)

// fakeLookupClient клиент реестра для тестов: отдает заранее
// подготовленные ответы и считает вызовы
type fakeLookupClient struct {
	mu        sync.Mutex
	responses map[string]*registry.Response
	errs      map[string]error
	calls     []string
}

func (f *fakeLookupClient) LookupByNumber(ctx context.Context, number string) (*registry.Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, number)
	f.mu.Unlock()

	if err, ok := f.errs[number]; ok {
		return nil, err
	}
	if resp, ok := f.responses[number]; ok {
		return resp, nil
	}
	return &registry.Response{ResultCount: 0}, nil
}

func singleResult(npi, enumerationType string) *registry.Response {
	return &registry.Response{
		ResultCount: 1,
		Results: []registry.Result{{
			Number:          npi,
			EnumerationType: enumerationType,
			Basic:           registry.Basic{OrganizationName: "ACME", FirstName: "JOHN", LastName: "DOE"},
		}},
	}
}

func TestBatchProcessorRun(t *testing.T) {
	client := &fakeLookupClient{
		responses: map[string]*registry.Response{
			"1234567893": singleResult("1234567893", "NPI-2"),
		},
		errs: map[string]error{
			"1111111111": &registry.ClientError{Kind: registry.KindNetwork, Err: errors.New("connection refused")},
		},
	}

	bp := NewBatchProcessor(client, BatchConfig{Spacing: time.Millisecond})

	result, err := bp.Run(context.Background(), []string{"1234567893", "123456789", "1111111111"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(result.Entries))
	}

	if result.Entries[0].Record == nil || result.Entries[0].Record.NPI != "1234567893" {
		t.Errorf("entry 0 = %+v, want record for 1234567893", result.Entries[0])
	}
	if result.Entries[1].Err == nil || result.Entries[1].Err.Kind != ErrInvalidFormat {
		t.Errorf("entry 1 = %+v, want invalid format error", result.Entries[1])
	}
	if result.Entries[2].Err == nil || result.Entries[2].Err.Kind != ErrLookupFailed {
		t.Errorf("entry 2 = %+v, want lookup failed error", result.Entries[2])
	}

	// Номер с неверным форматом не должен порождать сетевой вызов
	if len(client.calls) != 2 {
		t.Errorf("client calls = %v, want 2 calls without the malformed number", client.calls)
	}
	for _, call := range client.calls {
		if call == "123456789" {
			t.Error("malformed number must not reach the registry")
		}
	}

	stats := result.Stats()
	if stats.Total != 3 || stats.Organizations != 1 || stats.Errors != 2 {
		t.Errorf("stats = %+v, want total 3, organizations 1, errors 2", stats)
	}
}

func TestBatchProcessorNotFound(t *testing.T) {
	client := &fakeLookupClient{}
	bp := NewBatchProcessor(client, BatchConfig{Spacing: time.Millisecond})

	result, err := bp.Run(context.Background(), []string{"9999999999"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Entries) != 1 || result.Entries[0].Err == nil {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Entries[0].Err.Kind != ErrNotFound {
		t.Errorf("error kind = %q, want %q", result.Entries[0].Err.Kind, ErrNotFound)
	}
}

func TestBatchProcessorSkipsBlankInput(t *testing.T) {
	client := &fakeLookupClient{
		responses: map[string]*registry.Response{
			"1234567893": singleResult("1234567893", "NPI-1"),
		},
	}
	bp := NewBatchProcessor(client, BatchConfig{Spacing: time.Millisecond})

	result, err := bp.Run(context.Background(), []string{"", "  ", "1234567893", "\t"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("got %d entries, want 1 (blanks skipped)", len(result.Entries))
	}
}

func TestBatchProcessorProgress(t *testing.T) {
	client := &fakeLookupClient{}

	var progress [][2]int
	bp := NewBatchProcessor(client, BatchConfig{
		Spacing: time.Millisecond,
		Progress: func(done, total int) {
			progress = append(progress, [2]int{done, total})
		},
	})

	if _, err := bp.Run(context.Background(), []string{"1234567893", "1558364273"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := [][2]int{{1, 2}, {2, 2}}
	if len(progress) != len(want) {
		t.Fatalf("progress calls = %v, want %v", progress, want)
	}
	for i := range want {
		if progress[i] != want[i] {
			t.Errorf("progress[%d] = %v, want %v", i, progress[i], want[i])
		}
	}
}

func TestBatchProcessorContextCancel(t *testing.T) {
	client := &fakeLookupClient{}
	bp := NewBatchProcessor(client, BatchConfig{Spacing: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := bp.Run(ctx, []string{"1234567893", "1558364273"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	// Частичный результат возвращается вместе с ошибкой контекста
	if result == nil {
		t.Fatal("Run() must return partial result on cancellation")
	}
	if len(result.Entries) != 0 {
		t.Errorf("got %d entries after immediate cancel, want 0", len(result.Entries))
	}
}

func TestBatchProcessorPreservesDuplicates(t *testing.T) {
	client := &fakeLookupClient{
		responses: map[string]*registry.Response{
			"1234567893": singleResult("1234567893", "NPI-1"),
		},
	}
	bp := NewBatchProcessor(client, BatchConfig{Spacing: time.Millisecond})

	result, err := bp.Run(context.Background(), []string{"1234567893", "1234567893"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("got %d entries, want 2 (duplicates preserved)", len(result.Entries))
	}
}
