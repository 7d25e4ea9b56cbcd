package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	sheetsmocks "github.com/vfg2006/gads-insights-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/internal/store"
)

func newSyncService(integrator *sheetsmocks.MockIntegrator, snapshots store.SnapshotStore) *SheetSyncService {
	cfg := &config.Config{
		SheetSync: config.SheetSync{
			CronSchedule:      "0 6 * * *",
			RequestDelayMs:    0,
			MaxConcurrentJobs: 2,
			Enabled:           true,
		},
	}
	return NewSheetSyncService(integrator, snapshots, cfg)
}

func TestSheetSyncService_syncSheet(t *testing.T) {
	t.Run("Deve substituir o snapshot quando a busca funciona", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := sheetsmocks.NewMockIntegrator(ctrl)
		snapshots := store.NewMemoryStore()
		service := newSyncService(integrator, snapshots)

		data := &domain.TabData{
			Daily:     []domain.AdMetric{{Campaign: "Brand", CampaignID: "1", Clicks: 10}},
			FetchedAt: time.Now(),
		}
		integrator.EXPECT().FetchAll(gomock.Any()).Return(data, nil)

		service.syncSheet(context.Background())

		stored, ok := snapshots.Get()
		require.True(t, ok)
		assert.Len(t, stored.Daily, 1)
		assert.False(t, service.lastSyncCompletedAt.IsZero())
		assert.Empty(t, service.lastSyncError)
	})

	t.Run("Deve manter o snapshot anterior quando a busca falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := sheetsmocks.NewMockIntegrator(ctrl)
		snapshots := store.NewMemoryStore()
		service := newSyncService(integrator, snapshots)

		previous := &domain.TabData{
			Daily:     []domain.AdMetric{{Campaign: "Existente", CampaignID: "9"}},
			FetchedAt: time.Now(),
		}
		snapshots.Set(previous)

		integrator.EXPECT().FetchAll(gomock.Any()).Return(nil, errors.New("export indisponível"))

		service.syncSheet(context.Background())

		stored, ok := snapshots.Get()
		require.True(t, ok)
		assert.Equal(t, "Existente", stored.Daily[0].Campaign)
		assert.Equal(t, "export indisponível", service.lastSyncError)
	})

	t.Run("Deve ignorar uma execução quando outra já está em andamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := sheetsmocks.NewMockIntegrator(ctrl)
		service := newSyncService(integrator, store.NewMemoryStore())

		service.syncMutex.Lock()
		service.syncRunning = true
		service.syncMutex.Unlock()

		// Nenhuma chamada ao integrador é esperada.
		service.syncSheet(context.Background())
	})
}

func TestSheetSyncService_Start(t *testing.T) {
	t.Run("Não deve agendar quando a sincronização está desabilitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := sheetsmocks.NewMockIntegrator(ctrl)

		cfg := &config.Config{
			SheetSync: config.SheetSync{
				CronSchedule: "0 6 * * *",
				Enabled:      false,
			},
		}
		service := NewSheetSyncService(integrator, store.NewMemoryStore(), cfg)

		err := service.Start(context.Background())
		assert.NoError(t, err)
	})

	t.Run("Deve falhar com uma expressão cron inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := sheetsmocks.NewMockIntegrator(ctrl)

		cfg := &config.Config{
			SheetSync: config.SheetSync{
				CronSchedule: "isso não é cron",
				Enabled:      true,
			},
		}
		service := NewSheetSyncService(integrator, store.NewMemoryStore(), cfg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		err := service.Start(ctx)
		assert.Error(t, err)
	})
}

func TestSheetSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := sheetsmocks.NewMockIntegrator(ctrl)
	service := newSyncService(integrator, store.NewMemoryStore())

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 6 * * *", status["sync_cron"])
	assert.Equal(t, 2, status["sync_max_concurrent"])
	assert.Equal(t, false, status["sync_running"])
}
