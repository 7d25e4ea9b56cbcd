package screenshotone

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gads-insights-api/internal/config"
)

// Screenshot é a captura de uma página com as dimensões reais da imagem,
// usadas na estimativa de tokens antes de enviar ao modelo de visão
type Screenshot struct {
	PNG    []byte
	Width  int
	Height int
}

// Integrator captura screenshots de páginas de destino
type Integrator interface {
	Capture(ctx context.Context, pageURL string) (*Screenshot, error)
}

type Client struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Integrator {
	return &Client{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Capture tira um screenshot de página inteira em 1920x1080, com bloqueio de
// anúncios, banners de cookies e chats para uma captura limpa
func (c *Client) Capture(ctx context.Context, pageURL string) (*Screenshot, error) {
	params := url.Values{}
	params.Add("access_key", c.Cfg.ScreenshotOne.APIKey)
	params.Add("url", pageURL)
	params.Add("viewport_width", "1920")
	params.Add("viewport_height", "1080")
	params.Add("device_scale_factor", "1")
	params.Add("format", "png")
	params.Add("full_page", "true")
	params.Add("block_ads", "true")
	params.Add("block_cookie_banners", "true")
	params.Add("block_chats", "true")

	endpoint := fmt.Sprintf("%s/take?%s", c.Cfg.ScreenshotOne.URL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

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
		return nil, fmt.Errorf("falha ao capturar a página: status %d: %s", resp.StatusCode, string(body))
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler as dimensões do screenshot")
		return nil, err
	}

	return &Screenshot{
		PNG:    body,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// DataURL codifica o screenshot como data URL para envio ao modelo de visão
func (s *Screenshot) DataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(s.PNG)
}
