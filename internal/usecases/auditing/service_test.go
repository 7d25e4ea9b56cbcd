package auditing_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	firecrawlMocks "github.com/vfg2006/gads-insights-api/infrastructure/integrator/firecrawl/mocks"
	openaiMocks "github.com/vfg2006/gads-insights-api/infrastructure/integrator/openai/mocks"
	"github.com/vfg2006/gads-insights-api/infrastructure/integrator/screenshotone"
	screenshotMocks "github.com/vfg2006/gads-insights-api/infrastructure/integrator/screenshotone/mocks"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/internal/usecases/auditing"
)

func newTestConfig() *config.Config {
	return &config.Config{
		OpenAI: config.OpenAI{
			DefaultModel: "gpt-4.1-mini",
		},
	}
}

func TestServiceExtractCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	scraper := firecrawlMocks.NewMockIntegrator(ctrl)
	service := auditing.NewService(newTestConfig(), scraper, nil, nil)

	t.Run("Deve devolver o markdown extraído da página", func(t *testing.T) {
		scraper.EXPECT().
			Scrape(ctx, "https://loja.example.com").
			Return(&domain.PageCopy{URL: "https://loja.example.com", Markdown: "# Oferta"}, nil)

		pageCopy, err := service.ExtractCopy(ctx, "https://loja.example.com")
		require.NoError(t, err)
		assert.Equal(t, "# Oferta", pageCopy.Markdown)
	})

	t.Run("Deve falhar quando a URL está vazia", func(t *testing.T) {
		_, err := service.ExtractCopy(ctx, "   ")
		assert.ErrorIs(t, err, auditing.ErrEmptyURL)
	})

	t.Run("Deve propagar a falha do scraper", func(t *testing.T) {
		scraper.EXPECT().
			Scrape(ctx, "https://fora.example.com").
			Return(nil, errors.New("página inacessível"))

		_, err := service.ExtractCopy(ctx, "https://fora.example.com")
		assert.Error(t, err)
	})

	t.Run("Deve transcrever pela captura quando o scraper falha", func(t *testing.T) {
		screenshots := screenshotMocks.NewMockIntegrator(ctrl)
		llm := openaiMocks.NewMockIntegrator(ctrl)
		fallback := auditing.NewService(newTestConfig(), scraper, screenshots, llm)

		scraper.EXPECT().
			Scrape(ctx, "https://bloqueada.example.com").
			Return(nil, errors.New("bloqueado pelo robots.txt"))
		screenshots.EXPECT().
			Capture(ctx, "https://bloqueada.example.com").
			Return(&screenshotone.Screenshot{PNG: []byte{1}, Width: 1920, Height: 1080}, nil)
		llm.EXPECT().
			GenerateWithImage(ctx, "gpt-4.1-mini-2025-04-14", auditing.DefaultLandingPageCopyPrompt, gomock.Any(), gomock.Any()).
			Return("# Título transcrito", nil, nil)

		pageCopy, err := fallback.ExtractCopy(ctx, "https://bloqueada.example.com")
		require.NoError(t, err)
		assert.Equal(t, "# Título transcrito", pageCopy.Markdown)
	})
}

func TestServiceAnalyze(t *testing.T) {
	ctx := context.Background()

	pageCopy := &domain.PageCopy{
		URL:      "https://loja.example.com",
		Markdown: "# Tênis de corrida\nFrete grátis acima de R$ 200.",
	}

	t.Run("Deve analisar apenas com o texto quando o screenshot não é pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scraper := firecrawlMocks.NewMockIntegrator(ctrl)
		llm := openaiMocks.NewMockIntegrator(ctrl)
		service := auditing.NewService(newTestConfig(), scraper, nil, llm)

		scraper.EXPECT().Scrape(ctx, pageCopy.URL).Return(pageCopy, nil)

		var capturedPrompt string
		llm.EXPECT().
			Generate(ctx, "gpt-4.1-mini-2025-04-14", auditing.LandingPageAnalysisSystemPrompt, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, userPrompt string) (string, *domain.TokenUsage, error) {
				capturedPrompt = userPrompt
				return "Auditoria concluída", &domain.TokenUsage{InputTokens: 1000, OutputTokens: 500, TotalTokens: 1500}, nil
			})

		analysis, err := service.Analyze(ctx, auditing.AnalyzeRequest{URL: pageCopy.URL})
		require.NoError(t, err)

		assert.Equal(t, "Auditoria concluída", analysis.Content)
		assert.Equal(t, "gpt-4.1-mini-2025-04-14", analysis.Model)
		assert.Contains(t, capturedPrompt, "Tênis de corrida")
		require.NotNil(t, analysis.Usage)
		assert.InDelta(t, 0.0012, analysis.Usage.Cost, 1e-9)
	})

	t.Run("Deve enviar o screenshot como imagem quando disponível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scraper := firecrawlMocks.NewMockIntegrator(ctrl)
		screenshots := screenshotMocks.NewMockIntegrator(ctrl)
		llm := openaiMocks.NewMockIntegrator(ctrl)
		service := auditing.NewService(newTestConfig(), scraper, screenshots, llm)

		scraper.EXPECT().Scrape(ctx, pageCopy.URL).Return(pageCopy, nil)

		shot := &screenshotone.Screenshot{PNG: []byte{0x89, 0x50, 0x4e, 0x47}, Width: 1920, Height: 1080}
		screenshots.EXPECT().Capture(ctx, pageCopy.URL).Return(shot, nil)

		var capturedImage string
		llm.EXPECT().
			GenerateWithImage(ctx, "gpt-4.1-mini-2025-04-14", auditing.LandingPageAnalysisSystemPrompt, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _, imageURL string) (string, *domain.TokenUsage, error) {
				capturedImage = imageURL
				return "Auditoria visual", &domain.TokenUsage{InputTokens: 2000, OutputTokens: 700, TotalTokens: 2700}, nil
			})

		analysis, err := service.Analyze(ctx, auditing.AnalyzeRequest{URL: pageCopy.URL, IncludeScreenshot: true})
		require.NoError(t, err)

		assert.Equal(t, "Auditoria visual", analysis.Content)
		assert.True(t, strings.HasPrefix(capturedImage, "data:image/png;base64,"))
	})

	t.Run("Deve seguir sem imagem quando a captura falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scraper := firecrawlMocks.NewMockIntegrator(ctrl)
		screenshots := screenshotMocks.NewMockIntegrator(ctrl)
		llm := openaiMocks.NewMockIntegrator(ctrl)
		service := auditing.NewService(newTestConfig(), scraper, screenshots, llm)

		scraper.EXPECT().Scrape(ctx, pageCopy.URL).Return(pageCopy, nil)
		screenshots.EXPECT().Capture(ctx, pageCopy.URL).Return(nil, errors.New("limite de captura atingido"))

		llm.EXPECT().
			Generate(ctx, "gpt-4.1-mini-2025-04-14", auditing.LandingPageAnalysisSystemPrompt, gomock.Any()).
			Return("Auditoria somente texto", &domain.TokenUsage{InputTokens: 900, OutputTokens: 300, TotalTokens: 1200}, nil)

		analysis, err := service.Analyze(ctx, auditing.AnalyzeRequest{URL: pageCopy.URL, IncludeScreenshot: true})
		require.NoError(t, err)
		assert.Equal(t, "Auditoria somente texto", analysis.Content)
	})

	t.Run("Deve usar o prompt do usuário quando informado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scraper := firecrawlMocks.NewMockIntegrator(ctrl)
		llm := openaiMocks.NewMockIntegrator(ctrl)
		service := auditing.NewService(newTestConfig(), scraper, nil, llm)

		scraper.EXPECT().Scrape(ctx, pageCopy.URL).Return(pageCopy, nil)

		var capturedPrompt string
		llm.EXPECT().
			Generate(ctx, "gpt-4.1-nano-2025-04-14", auditing.LandingPageAnalysisSystemPrompt, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, userPrompt string) (string, *domain.TokenUsage, error) {
				capturedPrompt = userPrompt
				return "ok", nil, nil
			})

		analysis, err := service.Analyze(ctx, auditing.AnalyzeRequest{
			URL:    pageCopy.URL,
			Prompt: "Avalie apenas o título principal",
			Model:  "gpt-4.1-nano",
		})
		require.NoError(t, err)

		assert.Contains(t, capturedPrompt, "Avalie apenas o título principal")
		assert.Nil(t, analysis.Usage)
	})

	t.Run("Deve falhar quando a URL está vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := auditing.NewService(newTestConfig(), firecrawlMocks.NewMockIntegrator(ctrl), nil, nil)

		_, err := service.Analyze(ctx, auditing.AnalyzeRequest{URL: ""})
		assert.ErrorIs(t, err, auditing.ErrEmptyURL)
	})
}

func TestServiceEstimateAnalysis(t *testing.T) {
	ctx := context.Background()

	pageCopy := &domain.PageCopy{
		URL:      "https://loja.example.com",
		Markdown: strings.Repeat("oferta ", 100),
	}

	t.Run("Deve estimar tokens de texto e de imagem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scraper := firecrawlMocks.NewMockIntegrator(ctrl)
		screenshots := screenshotMocks.NewMockIntegrator(ctrl)
		service := auditing.NewService(newTestConfig(), scraper, screenshots, nil)

		scraper.EXPECT().Scrape(ctx, pageCopy.URL).Return(pageCopy, nil)
		screenshots.EXPECT().
			Capture(ctx, pageCopy.URL).
			Return(&screenshotone.Screenshot{Width: 1024, Height: 1024}, nil)

		estimate, err := service.EstimateAnalysis(ctx, auditing.AnalyzeRequest{URL: pageCopy.URL, IncludeScreenshot: true})
		require.NoError(t, err)

		assert.Equal(t, "gpt-4.1-mini-2025-04-14", estimate.Model)
		assert.Equal(t, int64(1024), estimate.ImageTokens)
		assert.Positive(t, estimate.InputTokens)
		assert.Positive(t, estimate.Cost)
	})

	t.Run("Deve estimar sem imagem quando o screenshot não é pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scraper := firecrawlMocks.NewMockIntegrator(ctrl)
		service := auditing.NewService(newTestConfig(), scraper, nil, nil)

		scraper.EXPECT().Scrape(ctx, pageCopy.URL).Return(pageCopy, nil)

		estimate, err := service.EstimateAnalysis(ctx, auditing.AnalyzeRequest{URL: pageCopy.URL})
		require.NoError(t, err)
		assert.Zero(t, estimate.ImageTokens)
	})
}
