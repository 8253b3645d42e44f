package services

import (
	"context"
	"sync"

	"recordapi/models"
)

// RecordStore is the tabular persistence backend. The sheet is append-only
// from the service's perspective: no updates, no deletes, no duplicate
// detection. ListAll returns raw rows keyed by whatever header the sheet
// carries; normalization happens downstream.
type RecordStore interface {
	AppendRow(ctx context.Context, record models.Record) error
	ListAll(ctx context.Context) ([]map[string]string, error)
	Kind() string
}

// MemoryStore is the in-memory fallback used when the remote sheet is
// unreachable at startup. Appends are individually atomic; insertion order
// is the only ordering.
type MemoryStore struct {
	mu   sync.Mutex
	rows []map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// AppendRow stores the record under canonical header keys.
func (m *MemoryStore) AppendRow(_ context.Context, record models.Record) error {
	row := make(map[string]string, len(models.CanonicalFields))
	for _, field := range models.CanonicalFields {
		value, _ := record.Field(field)
		row[field] = value
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, row)
	return nil
}

// ListAll returns a copy of every stored row in insertion order.
func (m *MemoryStore) ListAll(_ context.Context) ([]map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]map[string]string, 0, len(m.rows))
	for _, row := range m.rows {
		copied := make(map[string]string, len(row))
		for k, v := range row {
			copied[k] = v
		}
		out = append(out, copied)
	}
	return out, nil
}

// Kind identifies the backend in health/status payloads.
func (m *MemoryStore) Kind() string {
	return "memory"
}
