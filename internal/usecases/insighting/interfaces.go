package insighting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/gads-insights-api/internal/domain"
)

var (
	// ErrUnknownDataset indica que o dataset pedido não existe
	ErrUnknownDataset = errors.New("dataset desconhecido")

	// ErrNoSnapshot indica que nenhum snapshot da planilha foi carregado ainda
	ErrNoSnapshot = errors.New("nenhum snapshot de dados disponível")

	// ErrEmptyPrompt indica que o pedido de análise veio sem prompt
	ErrEmptyPrompt = errors.New("o prompt de análise é obrigatório")
)

// Insighter orquestra a geração de análises sobre o snapshot atual
type Insighter interface {
	Generate(ctx context.Context, req domain.InsightRequest) (*domain.InsightResponse, error)
	Estimate(req domain.InsightRequest) (*domain.CostEstimate, error)
	History(limit int) ([]*domain.InsightEntry, error)
}
