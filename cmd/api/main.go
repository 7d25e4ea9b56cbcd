package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/gads-insights-api/infrastructure/integrator/firecrawl"
	"github.com/vfg2006/gads-insights-api/infrastructure/integrator/openai"
	"github.com/vfg2006/gads-insights-api/infrastructure/integrator/screenshotone"
	"github.com/vfg2006/gads-insights-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/gads-insights-api/infrastructure/repository"
	"github.com/vfg2006/gads-insights-api/internal/api"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/scheduler"
	"github.com/vfg2006/gads-insights-api/internal/store"
	"github.com/vfg2006/gads-insights-api/internal/usecases/auditing"
	"github.com/vfg2006/gads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/gads-insights-api/internal/usecases/querying"
)

// insightHistoryRetentionDays limita o histórico de análises persistido no banco
const insightHistoryRetentionDays = 90

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots := store.NewMemoryStore()
	engine := querying.NewEngine()

	sheetsClient := sheets.NewClient(cfg)
	sheetsIntegrator := sheets.NewService(sheetsClient, cfg.SheetSync)

	llmIntegrator := openai.NewService(cfg)
	scraper := firecrawl.NewClient(cfg)
	screenshots := screenshotone.NewClient(cfg)

	insightService := insighting.NewService(cfg, snapshots, engine, llmIntegrator)

	// O banco guarda apenas o histórico de análises; sem ele o serviço sobe
	// do mesmo jeito, só sem persistência
	pgConn := pgconn(ctx, cfg.Database)
	if pgConn != nil {
		defer pgConn.Close()

		historyRepo := repository.NewInsightHistoryRepository(pgConn)
		insightService = insightService.WithHistory(historyRepo)

		if removed, err := historyRepo.DeleteOlderThan(insightHistoryRetentionDays); err != nil {
			logrus.WithError(err).Warn("Erro ao limpar o histórico de análises antigas")
		} else if removed > 0 {
			logrus.Infof("Histórico de análises: %d entradas antigas removidas", removed)
		}
	}

	auditService := auditing.NewService(cfg, scraper, screenshots, llmIntegrator)

	sheetSyncService := scheduler.NewSheetSyncService(sheetsIntegrator, snapshots, cfg)

	if err := sheetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização da planilha")
	} else {
		logrus.Info("Agendador de sincronização da planilha iniciado com sucesso")
	}

	// Popula o snapshot na subida para não servir 503 até o primeiro cron
	if cfg.Sheets.ExportURL != "" {
		go sheetSyncService.RunNow(ctx)
	}

	server, err := api.New(
		cfg,
		snapshots,
		engine,
		insightService,
		auditService,
		sheetSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao conectar ao PostgreSQL, seguindo sem histórico de análises")
		return nil
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao testar conexão com PostgreSQL, seguindo sem histórico de análises")
		return nil
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
