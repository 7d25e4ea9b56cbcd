package estimating

import (
	"math"

	"github.com/vfg2006/gads-insights-api/internal/domain"
)

// Pacote de estimativa determinística de tokens e custo. Nenhuma função falha:
// modelo sem preço resulta em custo zero, nunca em erro.

const (
	// Tamanho do lado de um patch de imagem em pixels
	patchSize = 32

	// Teto de patches faturáveis por imagem
	maxImagePatches = 1536

	// Média de caracteres por token usada na estimativa de texto, aplicada
	// apenas quando a contagem oficial da resposta não está disponível
	charsPerToken = 3.5
)

// TextTokens estima os tokens de um texto pela contagem de caracteres
func TextTokens(text string) int64 {
	runes := len([]rune(text))
	if runes == 0 {
		return 0
	}
	return int64(math.Ceil(float64(runes) / charsPerToken))
}

// ImageTokens calcula os tokens de uma imagem a partir das dimensões em
// pixels. Imagens cujo total de patches excede o teto são reduzidas pelo
// fator de escala antes do recálculo, com o resultado limitado ao teto.
func ImageTokens(width, height int) int64 {
	if width <= 0 || height <= 0 {
		return 0
	}

	patches := countPatches(width, height)
	if patches <= maxImagePatches {
		return patches
	}

	shrink := math.Sqrt(float64(maxImagePatches*patchSize*patchSize) / float64(width*height))
	scaledW := int(math.Floor(float64(width) * shrink))
	scaledH := int(math.Floor(float64(height) * shrink))

	patches = countPatches(scaledW, scaledH)
	if patches > maxImagePatches {
		patches = maxImagePatches
	}
	return patches
}

func countPatches(width, height int) int64 {
	patchesW := int64(math.Ceil(float64(width) / patchSize))
	patchesH := int64(math.Ceil(float64(height) / patchSize))
	return patchesW * patchesH
}

// imageMultiplier devolve o multiplicador de tokens de imagem do modelo.
// Aceita tanto o identificador curto quanto o nome de API, como resolvePricing;
// modelos fora da tabela usam 1.0
func imageMultiplier(model string) float64 {
	if m, ok := domain.ImageTokenMultipliers[model]; ok {
		return m
	}
	for _, m := range domain.AvailableModels {
		if m.ID == model {
			if mult, ok := domain.ImageTokenMultipliers[m.APIModel]; ok {
				return mult
			}
		}
	}
	return 1.0
}

// resolvePricing aceita tanto o identificador curto quanto o nome de API do modelo
func resolvePricing(model string) (domain.ModelPricing, bool) {
	if pricing, ok := domain.OpenAIPricing[model]; ok {
		return pricing, true
	}
	for _, m := range domain.AvailableModels {
		if m.ID == model {
			pricing, ok := domain.OpenAIPricing[m.APIModel]
			return pricing, ok
		}
	}
	return domain.ModelPricing{}, false
}

// Cost calcula o custo de uma chamada em dólares. Os tokens de imagem são
// ajustados pelo multiplicador do modelo antes de somar aos tokens de entrada.
// Modelo desconhecido custa zero.
func Cost(model string, inputTokens, outputTokens, imageTokens int64) float64 {
	pricing, ok := resolvePricing(model)
	if !ok {
		return 0
	}

	billedInput := inputTokens + int64(math.Round(float64(imageTokens)*imageMultiplier(model)))
	inputCost := float64(billedInput) / 1_000_000 * pricing.Input
	outputCost := float64(outputTokens) / 1_000_000 * pricing.Output
	return inputCost + outputCost
}

// Estimate monta a estimativa completa de uma chamada antes de executá-la
func Estimate(model string, inputTokens, outputTokens, imageTokens int64) domain.CostEstimate {
	return domain.CostEstimate{
		Model:        model,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		ImageTokens:  imageTokens,
		Cost:         Cost(model, inputTokens, outputTokens, imageTokens),
	}
}

// UsageCost preenche o custo de um uso reportado pela API
func UsageCost(model string, usage domain.TokenUsage) domain.TokenUsage {
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	usage.Cost = Cost(model, usage.InputTokens, usage.OutputTokens, 0)
	return usage
}
