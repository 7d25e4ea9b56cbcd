package domain

// AssetGroupMetric representa uma linha de grupo de recursos (Performance Max)
// exportada da planilha. Assim como nos grupos de anúncios, as razões são
// recalculadas a partir dos contadores antes de servir.
type AssetGroupMetric struct {
	Campaign     string  `json:"campaign"`
	CampaignID   string  `json:"campaignId"`
	AssetGroup   string  `json:"assetGroup"`
	AssetGroupID string  `json:"assetGroupId"`
	Status       string  `json:"status"`
	Impr         float64 `json:"impr"`
	Clicks       float64 `json:"clicks"`
	Value        float64 `json:"value"`
	Conv         float64 `json:"conv"`
	Cost         float64 `json:"cost"`
	Date         string  `json:"date"`
	CPC          float64 `json:"cpc"`
	CTR          float64 `json:"ctr"`
	ConvRate     float64 `json:"convRate"`
	CPA          float64 `json:"cpa"`
	ROAS         float64 `json:"roas"`
}

func (m AssetGroupMetric) Columns() []string {
	return []string{
		"campaign", "campaignId", "assetGroup", "assetGroupId", "status",
		"impr", "clicks", "value", "conv", "cost", "date",
		"cpc", "ctr", "convRate", "cpa", "roas",
	}
}

func (m AssetGroupMetric) Get(key string) any {
	switch key {
	case "campaign":
		return m.Campaign
	case "campaignId":
		return m.CampaignID
	case "assetGroup":
		return m.AssetGroup
	case "assetGroupId":
		return m.AssetGroupID
	case "status":
		return m.Status
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
