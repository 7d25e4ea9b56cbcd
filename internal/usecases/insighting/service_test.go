package insighting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openaimocks "github.com/vfg2006/gads-insights-api/infrastructure/integrator/openai/mocks"
	repomocks "github.com/vfg2006/gads-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/internal/store"
	"github.com/vfg2006/gads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/gads-insights-api/internal/usecases/querying"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	return &config.Config{
		Sheets: config.Sheets{Currency: "EUR"},
		OpenAI: config.OpenAI{DefaultModel: "gpt-4.1-mini"},
	}
}

func snapshotWithDaily(rows []domain.AdMetric) store.SnapshotStore {
	s := store.NewMemoryStore()
	s.Set(&domain.TabData{Daily: rows})
	return s
}

func TestGenerate(t *testing.T) {
	t.Run("deve montar o prompt com o contexto dos dados e precificar o uso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := openaimocks.NewMockIntegrator(ctrl)

		snapshots := snapshotWithDaily([]domain.AdMetric{
			{Campaign: "Brand", CampaignID: "1", Cost: 10, Date: "2025-08-01"},
			{Campaign: "Generic", CampaignID: "2", Cost: 5, Date: "2025-08-01"},
		})

		var capturedPrompt string
		llm.EXPECT().
			Generate(gomock.Any(), "gpt-4.1-mini-2025-04-14", insighting.DataAnalysisSystemPrompt, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, userPrompt string) (string, *domain.TokenUsage, error) {
				capturedPrompt = userPrompt
				return "análise gerada", &domain.TokenUsage{InputTokens: 1000, OutputTokens: 500}, nil
			})

		service := insighting.NewService(newConfig(), snapshots, querying.NewEngine(), llm)

		response, err := service.Generate(context.Background(), domain.InsightRequest{
			Dataset: domain.DatasetDaily,
			Prompt:  "Quais campanhas têm melhor desempenho?",
			Filters: []domain.FilterClause{{Column: "cost", Operator: "greater_than", Value: "7"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "análise gerada", response.Content)
		assert.Equal(t, "gpt-4.1-mini-2025-04-14", response.Model)
		assert.Equal(t, 2, response.TotalRows)
		assert.Equal(t, 1, response.AnalyzedRows)
		require.NotNil(t, response.Usage)
		assert.Equal(t, int64(1500), response.Usage.TotalTokens)
		assert.InDelta(t, 0.0012, response.Usage.Cost, 1e-9)

		assert.Contains(t, capturedPrompt, "Quais campanhas têm melhor desempenho?")
		assert.Contains(t, capturedPrompt, "Data Source: daily")
		assert.Contains(t, capturedPrompt, "Currency: EUR")
		assert.Contains(t, capturedPrompt, "Total Rows in Dataset: 2")
		assert.Contains(t, capturedPrompt, "Rows Being Analyzed: 1")
		assert.Contains(t, capturedPrompt, `Cost greater than "7"`)
		assert.Contains(t, capturedPrompt, `"campaign":"Brand"`)
		assert.NotContains(t, capturedPrompt, `"campaign":"Generic"`)
	})

	t.Run("deve salvar a análise no histórico quando habilitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := openaimocks.NewMockIntegrator(ctrl)
		historyRepo := repomocks.NewMockInsightHistoryRepository(ctrl)

		snapshots := snapshotWithDaily([]domain.AdMetric{{Campaign: "Brand", CampaignID: "1"}})

		llm.EXPECT().
			Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("conteúdo", &domain.TokenUsage{InputTokens: 10, OutputTokens: 5}, nil)

		historyRepo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(entry *domain.InsightEntry) error {
				assert.Equal(t, "daily", entry.Dataset)
				assert.Equal(t, "conteúdo", entry.Content)
				assert.Equal(t, 1, entry.TotalRows)
				return nil
			})

		service := insighting.NewService(newConfig(), snapshots, querying.NewEngine(), llm).
			WithHistory(historyRepo)

		_, err := service.Generate(context.Background(), domain.InsightRequest{
			Dataset: domain.DatasetDaily,
			Prompt:  "analise",
		})

		require.NoError(t, err)
	})

	t.Run("deve rejeitar prompt vazio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := openaimocks.NewMockIntegrator(ctrl)
		snapshots := snapshotWithDaily(nil)

		service := insighting.NewService(newConfig(), snapshots, querying.NewEngine(), llm)

		_, err := service.Generate(context.Background(), domain.InsightRequest{
			Dataset: domain.DatasetDaily,
			Prompt:  "   ",
		})

		assert.ErrorIs(t, err, insighting.ErrEmptyPrompt)
	})

	t.Run("deve rejeitar dataset desconhecido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := openaimocks.NewMockIntegrator(ctrl)
		snapshots := snapshotWithDaily(nil)

		service := insighting.NewService(newConfig(), snapshots, querying.NewEngine(), llm)

		_, err := service.Generate(context.Background(), domain.InsightRequest{
			Dataset: "inexistente",
			Prompt:  "analise",
		})

		assert.ErrorIs(t, err, insighting.ErrUnknownDataset)
	})

	t.Run("deve falhar quando não há snapshot carregado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := openaimocks.NewMockIntegrator(ctrl)

		service := insighting.NewService(newConfig(), store.NewMemoryStore(), querying.NewEngine(), llm)

		_, err := service.Generate(context.Background(), domain.InsightRequest{
			Dataset: domain.DatasetDaily,
			Prompt:  "analise",
		})

		assert.ErrorIs(t, err, insighting.ErrNoSnapshot)
	})
}

func TestEstimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	llm := openaimocks.NewMockIntegrator(ctrl)

	snapshots := snapshotWithDaily([]domain.AdMetric{{Campaign: "Brand", CampaignID: "1", Cost: 10}})

	service := insighting.NewService(newConfig(), snapshots, querying.NewEngine(), llm)

	estimate, err := service.Estimate(domain.InsightRequest{
		Dataset: domain.DatasetDaily,
		Prompt:  "analise",
	})

	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1-mini-2025-04-14", estimate.Model)
	assert.Greater(t, estimate.InputTokens, int64(0))
	assert.Equal(t, int64(1000), estimate.OutputTokens)
	assert.Greater(t, estimate.Cost, 0.0)
}

func TestHistory(t *testing.T) {
	t.Run("deve retornar lista vazia sem repositório configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := openaimocks.NewMockIntegrator(ctrl)

		service := insighting.NewService(newConfig(), store.NewMemoryStore(), querying.NewEngine(), llm)

		entries, err := service.History(10)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("deve listar as análises recentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := openaimocks.NewMockIntegrator(ctrl)
		historyRepo := repomocks.NewMockInsightHistoryRepository(ctrl)

		historyRepo.EXPECT().ListRecent(5).Return([]*domain.InsightEntry{
			{ID: "abc123", Content: "análise antiga"},
		}, nil)

		service := insighting.NewService(newConfig(), store.NewMemoryStore(), querying.NewEngine(), llm).
			WithHistory(historyRepo)

		entries, err := service.History(5)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "abc123", entries[0].ID)
	})

	t.Run("deve usar o limite padrão quando o limite é inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := openaimocks.NewMockIntegrator(ctrl)
		historyRepo := repomocks.NewMockInsightHistoryRepository(ctrl)

		historyRepo.EXPECT().ListRecent(10).Return(nil, nil)

		service := insighting.NewService(newConfig(), store.NewMemoryStore(), querying.NewEngine(), llm).
			WithHistory(historyRepo)

		_, err := service.History(0)

		require.NoError(t, err)
	})

	t.Run("deve usar o limite configurado quando o limite é omitido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := openaimocks.NewMockIntegrator(ctrl)
		historyRepo := repomocks.NewMockInsightHistoryRepository(ctrl)

		historyRepo.EXPECT().ListRecent(25).Return(nil, nil)

		cfg := newConfig()
		cfg.Query.HistoryLimit = 25

		service := insighting.NewService(cfg, store.NewMemoryStore(), querying.NewEngine(), llm).
			WithHistory(historyRepo)

		_, err := service.History(0)

		require.NoError(t, err)
	})
}
