package domain

import "time"

// InsightRequest descreve um pedido de análise de dados por modelo de linguagem
type InsightRequest struct {
	Dataset DatasetType    `json:"dataset"`
	Prompt  string         `json:"prompt"`
	Model   string         `json:"model"`
	Filters []FilterClause `json:"filters,omitempty"`
	Sort    *SortSpec      `json:"sort,omitempty"`
}

// InsightResponse é o resultado de uma análise gerada
type InsightResponse struct {
	Content      string      `json:"content"`
	Model        string      `json:"model"`
	Provider     string      `json:"provider"`
	Usage        *TokenUsage `json:"usage,omitempty"`
	TotalRows    int         `json:"totalRows"`
	AnalyzedRows int         `json:"analyzedRows"`
	GeneratedAt  time.Time   `json:"generatedAt"`
}

// InsightEntry representa uma análise persistida no histórico
type InsightEntry struct {
	ID           string      `json:"id"`
	Dataset      string      `json:"dataset"`
	Prompt       string      `json:"prompt"`
	Model        string      `json:"model"`
	Content      string      `json:"content"`
	Usage        *TokenUsage `json:"usage,omitempty"`
	TotalRows    int         `json:"total_rows"`
	AnalyzedRows int         `json:"analyzed_rows"`
	CreatedAt    time.Time   `json:"created_at"`
}

// PageCopy é o conteúdo textual extraído de uma página de destino
type PageCopy struct {
	URL       string    `json:"url"`
	Markdown  string    `json:"markdown"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// LandingPageAnalysis é o resultado da auditoria de uma página de destino
type LandingPageAnalysis struct {
	URL         string      `json:"url"`
	Content     string      `json:"content"`
	Model       string      `json:"model"`
	Usage       *TokenUsage `json:"usage,omitempty"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

// CostEstimate é a estimativa de custo de uma chamada antes de executá-la
type CostEstimate struct {
	Model        string  `json:"model"`
	InputTokens  int64   `json:"inputTokens"`
	OutputTokens int64   `json:"outputTokens"`
	ImageTokens  int64   `json:"imageTokens,omitempty"`
	Cost         float64 `json:"cost"`
}
