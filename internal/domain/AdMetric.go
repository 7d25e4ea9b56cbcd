package domain

// AdMetric representa uma linha diária de métricas de campanha exportada da planilha
type AdMetric struct {
	Campaign   string  `json:"campaign"`
	CampaignID string  `json:"campaignId"`
	Clicks     float64 `json:"clicks"`
	Value      float64 `json:"value"`
	Conv       float64 `json:"conv"`
	Cost       float64 `json:"cost"`
	Impr       float64 `json:"impr"`
	Date       string  `json:"date"`
}

func (m AdMetric) Columns() []string {
	return []string{"campaign", "campaignId", "clicks", "value", "conv", "cost", "impr", "date"}
}

func (m AdMetric) Get(key string) any {
	switch key {
	case "campaign":
		return m.Campaign
	case "campaignId":
		return m.CampaignID
	case "clicks":
		return m.Clicks
	case "value":
		return m.Value
	case "conv":
		return m.Conv
	case "cost":
		return m.Cost
	case "impr":
		return m.Impr
	case "date":
		return m.Date
	}
	return nil
}
