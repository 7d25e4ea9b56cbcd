package domain

// SearchTermMetric representa uma linha de termos de pesquisa exportada da planilha
type SearchTermMetric struct {
	SearchTerm  string  `json:"searchTerm"`
	Keyword     string  `json:"keyword"`
	KeywordText string  `json:"keywordText,omitempty"`
	Campaign    string  `json:"campaign"`
	AdGroup     string  `json:"adGroup"`
	Impr        float64 `json:"impr"`
	Clicks      float64 `json:"clicks"`
	Cost        float64 `json:"cost"`
	Conv        float64 `json:"conv"`
	Value       float64 `json:"value"`
}

func (m SearchTermMetric) Columns() []string {
	return []string{"searchTerm", "keyword", "keywordText", "campaign", "adGroup", "impr", "clicks", "cost", "conv", "value"}
}

// CalculatedSearchTermMetric é um termo de pesquisa enriquecido com as razões derivadas
type CalculatedSearchTermMetric struct {
	SearchTermMetric
	DerivedMetrics
}

func (m CalculatedSearchTermMetric) Columns() []string {
	return append(m.SearchTermMetric.Columns(), "CTR", "CvR", "CPA", "ROAS", "CPC")
}

func (m CalculatedSearchTermMetric) Get(key string) any {
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
	return m.SearchTermMetric.Get(key)
}

func (m SearchTermMetric) Get(key string) any {
	switch key {
	case "searchTerm":
		return m.SearchTerm
	case "keyword":
		return m.Keyword
	case "keywordText":
		return m.KeywordText
	case "campaign":
		return m.Campaign
	case "adGroup":
		return m.AdGroup
	case "impr":
		return m.Impr
	case "clicks":
		return m.Clicks
	case "cost":
		return m.Cost
	case "conv":
		return m.Conv
	case "value":
		return m.Value
	}
	return nil
}
