package firecrawl

import (
	"bytes"
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

// Integrator extrai o conteúdo textual de uma página como markdown
type Integrator interface {
	Scrape(ctx context.Context, pageURL string) (*domain.PageCopy, error)
}

type Client struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Integrator {
	return &Client{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type scrapeResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Markdown string `json:"markdown"`
	} `json:"data"`
	Error string `json:"error"`
}

// Scrape pede a versão markdown da página ao Firecrawl
func (c *Client) Scrape(ctx context.Context, pageURL string) (*domain.PageCopy, error) {
	payload, err := json.Marshal(scrapeRequest{
		URL:     pageURL,
		Formats: []string{"markdown"},
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/scrape", c.Cfg.Firecrawl.URL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.Firecrawl.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("url", pageURL).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("falha ao extrair a página: status %d: %s", resp.StatusCode, string(body))
	}

	var response scrapeResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if !response.Success {
		return nil, fmt.Errorf("falha ao extrair a página: %s", response.Error)
	}

	return &domain.PageCopy{
		URL:       pageURL,
		Markdown:  response.Data.Markdown,
		FetchedAt: time.Now(),
	}, nil
}
