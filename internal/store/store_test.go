package store_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/internal/store"
)

func TestMemoryStore(t *testing.T) {
	t.Run("deve retornar falso quando não há snapshot", func(t *testing.T) {
		s := store.NewMemoryStore()

		data, ok := s.Get()

		assert.False(t, ok)
		assert.Nil(t, data)
		assert.True(t, s.FetchedAt().IsZero())
	})

	t.Run("deve servir o último snapshot gravado", func(t *testing.T) {
		s := store.NewMemoryStore()
		fetchedAt := time.Date(2025, time.August, 15, 6, 0, 0, 0, time.UTC)

		s.Set(&domain.TabData{
			Daily:     []domain.AdMetric{{CampaignID: "1"}},
			FetchedAt: fetchedAt,
		})

		data, ok := s.Get()

		assert.True(t, ok)
		assert.Len(t, data.Daily, 1)
		assert.Equal(t, fetchedAt, s.FetchedAt())
	})

	t.Run("deve substituir o snapshot anterior", func(t *testing.T) {
		s := store.NewMemoryStore()

		s.Set(&domain.TabData{Daily: []domain.AdMetric{{CampaignID: "1"}}})
		s.Set(&domain.TabData{Daily: []domain.AdMetric{{CampaignID: "2"}, {CampaignID: "3"}}})

		data, ok := s.Get()

		assert.True(t, ok)
		assert.Len(t, data.Daily, 2)
	})
}

func TestMemoryStoreConcorrente(t *testing.T) {
	s := store.NewMemoryStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set(&domain.TabData{FetchedAt: time.Now()})
		}()
		go func() {
			defer wg.Done()
			s.Get()
		}()
	}

	wg.Wait()
}
