package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gads-insights-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/store"
)

// SheetSyncConfig representa a configuração do agendador de sincronização da planilha
type SheetSyncConfig struct {
	CronSchedule      string
	RequestDelayMs    int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// SheetSyncService gerencia o agendamento e execução da sincronização do
// export da planilha do Google Ads para o snapshot em memória
type SheetSyncService struct {
	scheduler           *gocron.Scheduler
	config              SheetSyncConfig
	integrator          sheets.Integrator
	snapshots           store.SnapshotStore
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewSheetSyncService cria uma nova instância do serviço de sincronização da planilha
func NewSheetSyncService(
	integrator sheets.Integrator,
	snapshots store.SnapshotStore,
	appConfig *config.Config,
) *SheetSyncService {
	syncConfig := SheetSyncConfig{
		CronSchedule:      appConfig.SheetSync.CronSchedule,
		RequestDelayMs:    appConfig.SheetSync.RequestDelayMs,
		MaxConcurrentJobs: appConfig.SheetSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.SheetSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"request_delay_ms":    syncConfig.RequestDelayMs,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização da planilha carregada")

	return &SheetSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		integrator:  integrator,
		snapshots:   snapshots,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *SheetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização da planilha desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização da planilha")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSheet(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização da planilha: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização da planilha")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSheet busca todas as abas da planilha e substitui o snapshot em memória
func (s *SheetSyncService) syncSheet(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização da planilha já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização da planilha")

	data, err := s.integrator.FetchAll(ctx)
	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Erro ao buscar o export da planilha")
		return
	}

	s.snapshots.Set(data)
	s.lastSyncError = ""
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":      time.Since(startTime).String(),
		"daily_rows":    len(data.Daily),
		"search_terms":  len(data.SearchTerms),
		"ad_groups":     len(data.AdGroups),
		"asset_groups":  len(data.AssetGroups),
		"landing_pages": len(data.LandingPages),
	}).Info("Sincronização da planilha concluída")
}

// TriggerManualSync inicia manualmente uma sincronização da planilha. A
// execução não herda o contexto da requisição que a disparou.
func (s *SheetSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização da planilha já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual da planilha")
	go s.syncSheet(context.Background())
}

// RunNow executa uma sincronização de forma síncrona. Usada na subida do
// serviço para popular o snapshot antes de aceitar requisições.
func (s *SheetSyncService) RunNow(ctx context.Context) {
	s.syncSheet(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *SheetSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_ms":  s.config.RequestDelayMs,
		"sync_running":           running,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
