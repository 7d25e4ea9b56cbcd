package deriving

import (
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/pkg/utils"
)

// Pacote de derivação das métricas de desempenho. Todas as funções são puras:
// mesma entrada, mesma saída, sem efeitos colaterais. As razões são sempre
// frações (0 a 1); a multiplicação por 100 é responsabilidade da camada de
// formatação.

func ratios(impr, clicks, cost, conv, value float64) domain.DerivedMetrics {
	return domain.DerivedMetrics{
		CTR:  utils.SafeRatio(clicks, impr),
		CvR:  utils.SafeRatio(conv, clicks),
		CPA:  utils.SafeRatio(cost, conv),
		ROAS: utils.SafeRatio(value, cost),
		CPC:  utils.SafeRatio(cost, clicks),
	}
}

// Daily deriva as razões de uma linha diária
func Daily(row domain.AdMetric) domain.DailyMetrics {
	return domain.DailyMetrics{
		AdMetric:       row,
		DerivedMetrics: ratios(row.Impr, row.Clicks, row.Cost, row.Conv, row.Value),
	}
}

// AllDaily deriva as razões de todas as linhas diárias preservando a ordem
func AllDaily(rows []domain.AdMetric) []domain.DailyMetrics {
	out := make([]domain.DailyMetrics, len(rows))
	for i, row := range rows {
		out[i] = Daily(row)
	}
	return out
}

// Totals soma os contadores de todas as linhas e deriva as razões do agregado.
// A data do agregado fica vazia; campanha e id vêm da última linha, como no
// uso por campanha em que todas as linhas pertencem à mesma campanha.
func Totals(rows []domain.AdMetric) domain.DailyMetrics {
	var total domain.AdMetric
	for _, row := range rows {
		total.Campaign = row.Campaign
		total.CampaignID = row.CampaignID
		total.Clicks += row.Clicks
		total.Impr += row.Impr
		total.Cost += row.Cost
		total.Conv += row.Conv
		total.Value += row.Value
	}
	total.Date = ""
	return Daily(total)
}

// SearchTerm deriva as razões de um termo de pesquisa
func SearchTerm(row domain.SearchTermMetric) domain.CalculatedSearchTermMetric {
	return domain.CalculatedSearchTermMetric{
		SearchTermMetric: row,
		DerivedMetrics:   ratios(row.Impr, row.Clicks, row.Cost, row.Conv, row.Value),
	}
}

// AllSearchTerms deriva as razões de todos os termos de pesquisa
func AllSearchTerms(rows []domain.SearchTermMetric) []domain.CalculatedSearchTermMetric {
	out := make([]domain.CalculatedSearchTermMetric, len(rows))
	for i, row := range rows {
		out[i] = SearchTerm(row)
	}
	return out
}

// AdGroups recalcula as razões de cada grupo de anúncios a partir dos
// contadores, descartando os valores pré-calculados vindos da origem
func AdGroups(rows []domain.AdGroupMetric) []domain.AdGroupMetric {
	out := make([]domain.AdGroupMetric, len(rows))
	for i, row := range rows {
		r := ratios(row.Impr, row.Clicks, row.Cost, row.Conv, row.Value)
		row.CPC = r.CPC
		row.CTR = r.CTR
		row.ConvRate = r.CvR
		row.CPA = r.CPA
		row.ROAS = r.ROAS
		out[i] = row
	}
	return out
}

// AssetGroups recalcula as razões de cada grupo de recursos a partir dos contadores
func AssetGroups(rows []domain.AssetGroupMetric) []domain.AssetGroupMetric {
	out := make([]domain.AssetGroupMetric, len(rows))
	for i, row := range rows {
		r := ratios(row.Impr, row.Clicks, row.Cost, row.Conv, row.Value)
		row.CPC = r.CPC
		row.CTR = r.CTR
		row.ConvRate = r.CvR
		row.CPA = r.CPA
		row.ROAS = r.ROAS
		out[i] = row
	}
	return out
}

// LandingPages recalcula as razões de cada página de destino a partir dos contadores
func LandingPages(rows []domain.LandingPageMetric) []domain.LandingPageMetric {
	out := make([]domain.LandingPageMetric, len(rows))
	for i, row := range rows {
		r := ratios(row.Impressions, row.Clicks, row.Cost, row.Conversions, row.Value)
		row.CTR = r.CTR
		row.CvR = r.CvR
		row.CPA = r.CPA
		row.ROAS = r.ROAS
		out[i] = row
	}
	return out
}
