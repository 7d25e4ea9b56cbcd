package domain

// LandingPageMetric representa uma linha de página de destino exportada da
// planilha. Usa nomes de campo longos (impressions, conversions) diferentes
// das demais abas, seguindo o cabeçalho da origem.
type LandingPageMetric struct {
	URL         string  `json:"url"`
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
	Value       float64 `json:"value"`
	CTR         float64 `json:"ctr"`
	CvR         float64 `json:"cvr"`
	CPA         float64 `json:"cpa"`
	ROAS        float64 `json:"roas"`
}

func (m LandingPageMetric) Columns() []string {
	return []string{"url", "impressions", "clicks", "cost", "conversions", "value", "ctr", "cvr", "cpa", "roas"}
}

func (m LandingPageMetric) Get(key string) any {
	switch key {
	case "url":
		return m.URL
	case "impressions":
		return m.Impressions
	case "clicks":
		return m.Clicks
	case "cost":
		return m.Cost
	case "conversions":
		return m.Conversions
	case "value":
		return m.Value
	case "ctr":
		return m.CTR
	case "cvr":
		return m.CvR
	case "cpa":
		return m.CPA
	case "roas":
		return m.ROAS
	}
	return nil
}
