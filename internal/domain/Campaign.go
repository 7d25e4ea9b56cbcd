package domain

// Campaign é o resumo de uma campanha para listas de seleção
type Campaign struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	TotalCost float64 `json:"totalCost"`
}

// EntitySummary é o resumo de uma entidade agrupada (campanha, grupo de
// anúncios ou grupo de recursos) ordenado por custo total
type EntitySummary struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Status string  `json:"status,omitempty"`
	Cost   float64 `json:"cost"`
}

// AllCampaignsName é o nome sentinela da série agregada de todas as campanhas
const AllCampaignsName = "All Campaigns"

// SeriesPoint é um ponto da série temporal agregada por data
type SeriesPoint struct {
	Date   string  `json:"date"`
	Impr   float64 `json:"impr"`
	Clicks float64 `json:"clicks"`
	Cost   float64 `json:"cost"`
	Conv   float64 `json:"conv"`
	Value  float64 `json:"value"`
}
