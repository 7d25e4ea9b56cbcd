package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/domain"
)

// Client busca uma aba da exportação da planilha como linhas brutas
type Client interface {
	FetchTab(ctx context.Context, tab domain.DatasetType) ([]map[string]any, error)
}

type SheetsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &SheetsClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// FetchTab busca uma aba via o parâmetro ?tab= da exportação. A resposta deve
// ser um array JSON de objetos; qualquer outra forma é erro.
func (c *SheetsClient) FetchTab(ctx context.Context, tab domain.DatasetType) ([]map[string]any, error) {
	url := fmt.Sprintf("%s?tab=%s", c.Cfg.Sheets.ExportURL, tab)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("tab", tab).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("falha ao buscar a aba %s: status %d: %s", tab, resp.StatusCode, string(body))
	}

	var rows []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		logrus.WithError(err).WithField("tab", tab).Error("Erro ao decodificar JSON")
		return nil, fmt.Errorf("resposta da aba %s não é um array JSON: %w", tab, err)
	}

	return rows, nil
}
