package domain

// AdGroupMetric representa uma linha de grupo de anúncios exportada da planilha.
// As razões (cpc, ctr, convRate, cpa, roas) chegam pré-calculadas da origem,
// mas são sempre recalculadas a partir dos contadores antes de servir.
type AdGroupMetric struct {
	Campaign   string  `json:"campaign"`
	CampaignID string  `json:"campaignId"`
	AdGroup    string  `json:"adGroup"`
	AdGroupID  string  `json:"adGroupId"`
	Impr       float64 `json:"impr"`
	Clicks     float64 `json:"clicks"`
	Value      float64 `json:"value"`
	Conv       float64 `json:"conv"`
	Cost       float64 `json:"cost"`
	Date       string  `json:"date"`
	CPC        float64 `json:"cpc"`
	CTR        float64 `json:"ctr"`
	ConvRate   float64 `json:"convRate"`
	CPA        float64 `json:"cpa"`
	ROAS       float64 `json:"roas"`
}

func (m AdGroupMetric) Columns() []string {
	return []string{
		"campaign", "campaignId", "adGroup", "adGroupId",
		"impr", "clicks", "value", "conv", "cost", "date",
		"cpc", "ctr", "convRate", "cpa", "roas",
	}
}

func (m AdGroupMetric) Get(key string) any {
	switch key {
	case "campaign":
		return m.Campaign
	case "campaignId":
		return m.CampaignID
	case "adGroup":
		return m.AdGroup
	case "adGroupId":
		return m.AdGroupID
	case "impr":
		return m.Impr
	case "clicks":
		return m.Clicks
	case "value":
		return m.Value
	case "conv":
		return m.Conv
	case "cost":
		return m.Cost
	case "date":
		return m.Date
	case "cpc":
		return m.CPC
	case "ctr":
		return m.CTR
	case "convRate":
		return m.ConvRate
	case "cpa":
		return m.CPA
	case "roas":
		return m.ROAS
	}
	return nil
}
