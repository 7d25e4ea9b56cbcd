package insighting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gads-insights-api/infrastructure/integrator/openai"
	"github.com/vfg2006/gads-insights-api/infrastructure/repository"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/internal/store"
	"github.com/vfg2006/gads-insights-api/internal/usecases/estimating"
	"github.com/vfg2006/gads-insights-api/internal/usecases/querying"
)

// Estimativa de tokens de saída usada no cálculo de custo antes da chamada,
// quando a resposta real ainda não existe
const assumedOutputTokens = 1000

const defaultHistoryLimit = 10

type Service struct {
	cfg               *config.Config
	snapshots         store.SnapshotStore
	engine            *querying.Engine
	llm               openai.Integrator
	historyRepository repository.InsightHistoryRepository
}

// NewService cria o serviço de análise sem persistência de histórico
func NewService(
	cfg *config.Config,
	snapshots store.SnapshotStore,
	engine *querying.Engine,
	llm openai.Integrator,
) *Service {
	return &Service{
		cfg:       cfg,
		snapshots: snapshots,
		engine:    engine,
		llm:       llm,
	}
}

// WithHistory habilita a persistência das análises geradas
func (s *Service) WithHistory(historyRepo repository.InsightHistoryRepository) *Service {
	s.historyRepository = historyRepo
	return s
}

// prepared carrega tudo que o prompt precisa: linhas exportadas e contexto
type prepared struct {
	systemPrompt string
	userPrompt   string
	totalRows    int
	analyzedRows int
	apiModel     string
}

func (s *Service) prepare(req domain.InsightRequest) (*prepared, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	if !req.Dataset.Valid() {
		return nil, ErrUnknownDataset
	}

	data, ok := s.snapshots.Get()
	if !ok {
		return nil, ErrNoSnapshot
	}

	records := data.Records(req.Dataset)
	schema := s.engine.Schema(req.Dataset, records)
	exported := s.engine.Export(req.Dataset, records, req.Filters, req.Sort)
	if limit := s.cfg.Query.InsightLimit; limit > 0 && len(exported) > limit {
		exported = exported[:limit]
	}

	rowsJSON, err := json.Marshal(exported)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar as linhas exportadas: %w", err)
	}

	userPrompt := BuildDataInsightsPrompt(PromptContext{
		Prompt:       req.Prompt,
		DataSource:   string(req.Dataset),
		Filters:      s.engine.DescribeFilters(req.Filters, schema),
		TotalRows:    len(records),
		AnalyzedRows: len(exported),
		Currency:     s.cfg.Sheets.Currency,
	})
	userPrompt = fmt.Sprintf("%s\n\n**Data (JSON):**\n%s", userPrompt, string(rowsJSON))

	model := req.Model
	if model == "" {
		model = s.cfg.OpenAI.DefaultModel
	}

	return &prepared{
		systemPrompt: DataAnalysisSystemPrompt,
		userPrompt:   userPrompt,
		totalRows:    len(records),
		analyzedRows: len(exported),
		apiModel:     domain.GetAPIModelName(model),
	}, nil
}

// Generate executa a análise: filtra e exporta as linhas, monta o prompt com
// o contexto dos dados, chama o modelo e registra o resultado no histórico
func (s *Service) Generate(ctx context.Context, req domain.InsightRequest) (*domain.InsightResponse, error) {
	p, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	content, usage, err := s.llm.Generate(ctx, p.apiModel, p.systemPrompt, p.userPrompt)
	if err != nil {
		return nil, err
	}

	if usage != nil {
		priced := estimating.UsageCost(p.apiModel, *usage)
		usage = &priced
	}

	response := &domain.InsightResponse{
		Content:      content,
		Model:        p.apiModel,
		Provider:     "openai",
		Usage:        usage,
		TotalRows:    p.totalRows,
		AnalyzedRows: p.analyzedRows,
		GeneratedAt:  time.Now(),
	}

	s.saveHistory(req, response)

	return response, nil
}

// Estimate calcula o custo esperado da análise sem chamar o modelo, assumindo
// uma resposta de tamanho típico
func (s *Service) Estimate(req domain.InsightRequest) (*domain.CostEstimate, error) {
	p, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	inputTokens := estimating.TextTokens(p.systemPrompt) + estimating.TextTokens(p.userPrompt)
	estimate := estimating.Estimate(p.apiModel, inputTokens, assumedOutputTokens, 0)
	return &estimate, nil
}

// History lista as análises mais recentes do histórico persistido
func (s *Service) History(limit int) ([]*domain.InsightEntry, error) {
	if s.historyRepository == nil {
		return []*domain.InsightEntry{}, nil
	}
	if limit <= 0 {
		limit = s.cfg.Query.HistoryLimit
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.historyRepository.ListRecent(limit)
}

// Falha ao salvar o histórico não derruba a análise já gerada
func (s *Service) saveHistory(req domain.InsightRequest, response *domain.InsightResponse) {
	if s.historyRepository == nil {
		return
	}

	entry := &domain.InsightEntry{
		Dataset:      string(req.Dataset),
		Prompt:       req.Prompt,
		Model:        response.Model,
		Content:      response.Content,
		Usage:        response.Usage,
		TotalRows:    response.TotalRows,
		AnalyzedRows: response.AnalyzedRows,
		CreatedAt:    response.GeneratedAt,
	}

	if err := s.historyRepository.Save(entry); err != nil {
		logrus.WithError(err).Error("insights: failed to save insight history")
	}
}
