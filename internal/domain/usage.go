package domain

// TokenUsage contabiliza os tokens de uma chamada de modelo de linguagem
type TokenUsage struct {
	InputTokens  int64   `json:"inputTokens"`
	OutputTokens int64   `json:"outputTokens"`
	TotalTokens  int64   `json:"totalTokens,omitempty"`
	Cost         float64 `json:"cost,omitempty"`
}

// ModelPricing é o preço por milhão de tokens de um modelo
type ModelPricing struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

// LLMModel descreve um modelo disponível para análise
type LLMModel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	APIModel string `json:"apiModel"`
}

// AvailableModels lista os modelos habilitados para geração de insights
var AvailableModels = []LLMModel{
	{ID: "gpt-4.1-mini", Name: "GPT-4.1 Mini", Provider: "openai", APIModel: "gpt-4.1-mini-2025-04-14"},
	{ID: "gpt-4.1", Name: "GPT-4.1", Provider: "openai", APIModel: "gpt-4.1-2025-04-14"},
	{ID: "gpt-4.1-nano", Name: "GPT-4.1 Nano", Provider: "openai", APIModel: "gpt-4.1-nano-2025-04-14"},
}

// OpenAIPricing mapeia modelo da API para preço por milhão de tokens
var OpenAIPricing = map[string]ModelPricing{
	"gpt-4.1-2025-04-14":      {Input: 2.00, Output: 8.00},
	"gpt-4.1-mini-2025-04-14": {Input: 0.40, Output: 1.60},
	"gpt-4.1-nano-2025-04-14": {Input: 0.10, Output: 0.40},
}

// ImageTokenMultipliers ajusta o custo efetivo de tokens de imagem por modelo.
// Modelos ausentes usam multiplicador 1.0.
var ImageTokenMultipliers = map[string]float64{
	"gpt-4.1-mini-2025-04-14": 1.62,
	"gpt-4.1-nano-2025-04-14": 2.46,
}

// DefaultOpenAIModel é o modelo usado quando nenhum é informado
const DefaultOpenAIModel = "gpt-4.1-mini-2025-04-14"

// GetAPIModelName traduz o identificador curto do modelo para o nome usado na API
func GetAPIModelName(modelID string) string {
	for _, m := range AvailableModels {
		if m.ID == modelID {
			return m.APIModel
		}
	}
	return DefaultOpenAIModel
}
