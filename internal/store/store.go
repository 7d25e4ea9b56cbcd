package store

import (
	"sync"
	"time"

	"github.com/vfg2006/gads-insights-api/internal/domain"
)

// SnapshotStore guarda o último snapshot completo da planilha em memória.
// Toda leitura serve o snapshot inteiro; a troca é atômica na gravação.
type SnapshotStore interface {
	Set(data *domain.TabData)
	Get() (*domain.TabData, bool)
	FetchedAt() time.Time
}

type memoryStore struct {
	mu   sync.RWMutex
	data *domain.TabData
}

// NewMemoryStore cria um store vazio
func NewMemoryStore() SnapshotStore {
	return &memoryStore{}
}

func (s *memoryStore) Set(data *domain.TabData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

func (s *memoryStore) Get() (*domain.TabData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, false
	}
	return s.data, true
}

func (s *memoryStore) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return time.Time{}
	}
	return s.data.FetchedAt
}
