package auditing

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gads-insights-api/infrastructure/integrator/firecrawl"
	"github.com/vfg2006/gads-insights-api/infrastructure/integrator/openai"
	"github.com/vfg2006/gads-insights-api/infrastructure/integrator/screenshotone"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/internal/usecases/estimating"
)

// ErrEmptyURL indica que a auditoria foi pedida sem URL
var ErrEmptyURL = errors.New("a URL da página é obrigatória")

// AnalyzeRequest descreve uma auditoria de página de destino
type AnalyzeRequest struct {
	URL               string `json:"url"`
	Prompt            string `json:"prompt,omitempty"`
	Model             string `json:"model,omitempty"`
	IncludeScreenshot bool   `json:"includeScreenshot,omitempty"`
}

// Auditor executa auditorias de páginas de destino
type Auditor interface {
	ExtractCopy(ctx context.Context, pageURL string) (*domain.PageCopy, error)
	Analyze(ctx context.Context, req AnalyzeRequest) (*domain.LandingPageAnalysis, error)
	EstimateAnalysis(ctx context.Context, req AnalyzeRequest) (*domain.CostEstimate, error)
}

type Service struct {
	cfg         *config.Config
	scraper     firecrawl.Integrator
	screenshots screenshotone.Integrator
	llm         openai.Integrator
}

func NewService(
	cfg *config.Config,
	scraper firecrawl.Integrator,
	screenshots screenshotone.Integrator,
	llm openai.Integrator,
) *Service {
	return &Service{
		cfg:         cfg,
		scraper:     scraper,
		screenshots: screenshots,
		llm:         llm,
	}
}

// ExtractCopy devolve o conteúdo textual da página em markdown. Quando o
// scraper falha e há captura de tela disponível, o modelo transcreve a página
// a partir da imagem.
func (s *Service) ExtractCopy(ctx context.Context, pageURL string) (*domain.PageCopy, error) {
	if strings.TrimSpace(pageURL) == "" {
		return nil, ErrEmptyURL
	}

	pageCopy, err := s.scraper.Scrape(ctx, pageURL)
	if err == nil {
		return pageCopy, nil
	}

	if s.screenshots == nil || s.llm == nil {
		return nil, err
	}

	logrus.WithError(err).WithField("url", pageURL).Warn("Scraper indisponível, transcrevendo a página pela captura")

	shot, captureErr := s.screenshots.Capture(ctx, pageURL)
	if captureErr != nil {
		return nil, err
	}

	apiModel := domain.GetAPIModelName(s.cfg.OpenAI.DefaultModel)
	content, _, genErr := s.llm.GenerateWithImage(ctx, apiModel, DefaultLandingPageCopyPrompt, BuildCopyPrompt(pageURL), shot.DataURL())
	if genErr != nil {
		return nil, err
	}

	return &domain.PageCopy{
		URL:       pageURL,
		Markdown:  content,
		FetchedAt: time.Now(),
	}, nil
}

// Analyze extrai o conteúdo da página, opcionalmente captura um screenshot e
// envia tudo ao modelo com o roteiro de auditoria. Falha na captura não
// derruba a análise: segue apenas com o texto.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (*domain.LandingPageAnalysis, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, ErrEmptyURL
	}

	pageCopy, err := s.scraper.Scrape(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = s.cfg.OpenAI.DefaultModel
	}
	apiModel := domain.GetAPIModelName(model)

	userPrompt := BuildAnalysisPrompt(pageCopy.Markdown, req.Prompt)

	var content string
	var usage *domain.TokenUsage

	if req.IncludeScreenshot && s.screenshots != nil {
		shot, captureErr := s.screenshots.Capture(ctx, req.URL)
		if captureErr != nil {
			logrus.WithError(captureErr).WithField("url", req.URL).Warn("Captura indisponível, seguindo apenas com o texto")
		} else {
			content, usage, err = s.llm.GenerateWithImage(ctx, apiModel, LandingPageAnalysisSystemPrompt, userPrompt, shot.DataURL())
			if err != nil {
				return nil, err
			}
			return s.buildAnalysis(req.URL, apiModel, content, usage), nil
		}
	}

	content, usage, err = s.llm.Generate(ctx, apiModel, LandingPageAnalysisSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	return s.buildAnalysis(req.URL, apiModel, content, usage), nil
}

// EstimateAnalysis calcula o custo esperado da auditoria antes de executá-la.
// Com screenshot, as dimensões reais da captura alimentam a fórmula de tokens
// de imagem.
func (s *Service) EstimateAnalysis(ctx context.Context, req AnalyzeRequest) (*domain.CostEstimate, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, ErrEmptyURL
	}

	pageCopy, err := s.scraper.Scrape(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = s.cfg.OpenAI.DefaultModel
	}
	apiModel := domain.GetAPIModelName(model)

	userPrompt := BuildAnalysisPrompt(pageCopy.Markdown, req.Prompt)
	inputTokens := estimating.TextTokens(LandingPageAnalysisSystemPrompt) + estimating.TextTokens(userPrompt)

	var imageTokens int64
	if req.IncludeScreenshot && s.screenshots != nil {
		shot, captureErr := s.screenshots.Capture(ctx, req.URL)
		if captureErr != nil {
			logrus.WithError(captureErr).WithField("url", req.URL).Warn("Captura indisponível para a estimativa")
		} else {
			imageTokens = estimating.ImageTokens(shot.Width, shot.Height)
		}
	}

	estimate := estimating.Estimate(apiModel, inputTokens, assumedOutputTokens, imageTokens)
	return &estimate, nil
}

const assumedOutputTokens = 1500

func (s *Service) buildAnalysis(url, apiModel, content string, usage *domain.TokenUsage) *domain.LandingPageAnalysis {
	if usage != nil {
		priced := estimating.UsageCost(apiModel, *usage)
		usage = &priced
	}

	return &domain.LandingPageAnalysis{
		URL:         url,
		Content:     content,
		Model:       apiModel,
		Usage:       usage,
		GeneratedAt: time.Now(),
	}
}
