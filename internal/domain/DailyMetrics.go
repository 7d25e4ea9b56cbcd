package domain

// DerivedMetrics contém as razões derivadas dos contadores brutos. Os valores
// de CTR e CvR são frações (0 a 1); a conversão para percentual acontece
// apenas na formatação de exibição.
type DerivedMetrics struct {
	CTR  float64 `json:"CTR"`
	CvR  float64 `json:"CvR"`
	CPA  float64 `json:"CPA"`
	ROAS float64 `json:"ROAS"`
	CPC  float64 `json:"CPC"`
}

// DailyMetrics é uma linha diária enriquecida com as métricas derivadas
type DailyMetrics struct {
	AdMetric
	DerivedMetrics
}

func (m DailyMetrics) Columns() []string {
	return append(m.AdMetric.Columns(), "CTR", "CvR", "CPA", "ROAS", "CPC")
}

func (m DailyMetrics) Get(key string) any {
	switch key {
	case "CTR":
		return m.CTR
	case "CvR":
		return m.CvR
	case "CPA":
		return m.CPA
	case "ROAS":
		return m.ROAS
	case "CPC":
		return m.CPC
	}
	return m.AdMetric.Get(key)
}
