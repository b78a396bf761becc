package chat

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"timesheet-assistant/internal/model"
)

const defaultExportStoreSize = 256

// ExportStore keeps generated CSV files for a while so that surfaces without
// a push channel can hand out download links.
type ExportStore struct {
	exports *expirable.LRU[string, model.Export]
}

// NewExportStore keeps up to size exports for ttl each.
func NewExportStore(size int, ttl time.Duration) *ExportStore {
	if size <= 0 {
		size = defaultExportStoreSize
	}
	return &ExportStore{
		exports: expirable.NewLRU[string, model.Export](size, nil, ttl),
	}
}

// Put stores export and returns its id.
func (s *ExportStore) Put(export model.Export) string {
	id := uuid.NewString()
	s.exports.Add(id, export)
	return id
}

// Get returns the export stored under id, if it has not expired.
func (s *ExportStore) Get(id string) (model.Export, bool) {
	return s.exports.Get(id)
}
