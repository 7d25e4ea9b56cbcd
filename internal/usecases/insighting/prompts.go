package insighting

import (
	"fmt"
	"strings"
)

// DataAnalysisSystemPrompt orienta o modelo a atuar como analista de Google Ads
const DataAnalysisSystemPrompt = `You are an expert Google Ads data analyst. Your role is to analyze advertising performance data and provide actionable insights.

When analyzing data, focus on:
- Performance trends and patterns
- Optimization opportunities
- Budget allocation recommendations
- Keyword and campaign performance
- Cost efficiency metrics
- Conversion optimization

Provide clear, actionable recommendations based on the data. Use specific numbers and percentages when relevant. Structure your response with clear headings and bullet points for readability.`

// PromptContext é o contexto anexado ao pedido do usuário
type PromptContext struct {
	Prompt       string
	DataSource   string
	Filters      []string
	TotalRows    int
	AnalyzedRows int
	Currency     string
}

// BuildDataInsightsPrompt monta o prompt de análise com o contexto dos dados
func BuildDataInsightsPrompt(options PromptContext) string {
	filters := "None"
	if len(options.Filters) > 0 {
		filters = strings.Join(options.Filters, ", ")
	}

	return fmt.Sprintf(`Please analyze this Google Ads %s data and provide insights based on the following request:

**User Request:** %s

**Data Context:**
- Data Source: %s
- Currency: %s
- Total Rows in Dataset: %d
- Rows Being Analyzed: %d
- Applied Filters: %s

Please provide specific, actionable insights based on this data and the user's request.`,
		options.DataSource,
		options.Prompt,
		options.DataSource,
		options.Currency,
		options.TotalRows,
		options.AnalyzedRows,
		filters,
	)
}
