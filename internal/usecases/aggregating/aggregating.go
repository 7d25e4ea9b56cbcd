package aggregating

import (
	"sort"
	"strings"

	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/pkg/utils"
)

// Pacote de agrupamento de linhas planas em resumos por entidade. Linhas com
// id vazio após trim são excluídas dos agrupamentos; o primeiro nome e status
// observados vencem e apenas o custo é acumulado nas repetições.

type keyed struct {
	id     string
	name   string
	status string
	cost   float64
}

func buildSummaries(rows []keyed) []domain.EntitySummary {
	order := make([]string, 0)
	byID := make(map[string]*domain.EntitySummary)

	for _, row := range rows {
		id := strings.TrimSpace(row.id)
		if id == "" {
			continue
		}

		if existing, ok := byID[id]; ok {
			existing.Cost += row.cost
			continue
		}

		byID[id] = &domain.EntitySummary{
			ID:     id,
			Name:   row.name,
			Status: row.status,
			Cost:   row.cost,
		}
		order = append(order, id)
	}

	summaries := make([]domain.EntitySummary, 0, len(order))
	for _, id := range order {
		summaries = append(summaries, *byID[id])
	}

	// Ordenação estável por custo decrescente
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Cost > summaries[j].Cost
	})

	return summaries
}

// Campaigns agrupa as linhas diárias em campanhas ordenadas por custo total
func Campaigns(rows []domain.AdMetric) []domain.Campaign {
	keyedRows := make([]keyed, len(rows))
	for i, row := range rows {
		keyedRows[i] = keyed{id: row.CampaignID, name: row.Campaign, cost: row.Cost}
	}

	summaries := buildSummaries(keyedRows)

	campaigns := make([]domain.Campaign, len(summaries))
	for i, s := range summaries {
		campaigns[i] = domain.Campaign{ID: s.ID, Name: s.Name, TotalCost: s.Cost}
	}
	return campaigns
}

// AdGroups agrupa as linhas de grupos de anúncios em resumos ordenados por custo
func AdGroups(rows []domain.AdGroupMetric) []domain.EntitySummary {
	keyedRows := make([]keyed, len(rows))
	for i, row := range rows {
		keyedRows[i] = keyed{id: row.AdGroupID, name: row.AdGroup, cost: row.Cost}
	}
	return buildSummaries(keyedRows)
}

// AssetGroups agrupa as linhas de grupos de recursos em resumos ordenados por
// custo, preservando o primeiro status observado de cada grupo
func AssetGroups(rows []domain.AssetGroupMetric) []domain.EntitySummary {
	keyedRows := make([]keyed, len(rows))
	for i, row := range rows {
		keyedRows[i] = keyed{id: row.AssetGroupID, name: row.AssetGroup, status: row.Status, cost: row.Cost}
	}
	return buildSummaries(keyedRows)
}

// SeriesByDate agrega as linhas diárias por data exata, somando os cinco
// contadores, e devolve a série ordenada por data crescente (ordem de
// calendário, não ordem lexicográfica)
func SeriesByDate(rows []domain.AdMetric) []domain.SeriesPoint {
	order := make([]string, 0)
	byDate := make(map[string]*domain.SeriesPoint)

	for _, row := range rows {
		point, ok := byDate[row.Date]
		if !ok {
			point = &domain.SeriesPoint{Date: row.Date}
			byDate[row.Date] = point
			order = append(order, row.Date)
		}
		point.Impr += row.Impr
		point.Clicks += row.Clicks
		point.Cost += row.Cost
		point.Conv += row.Conv
		point.Value += row.Value
	}

	series := make([]domain.SeriesPoint, 0, len(order))
	for _, date := range order {
		series = append(series, *byDate[date])
	}

	sort.SliceStable(series, func(i, j int) bool {
		di, _ := utils.ParseRowDate(series[i].Date)
		dj, _ := utils.ParseRowDate(series[j].Date)
		return di.Before(dj)
	})

	return series
}

// AllCampaignsSeries produz a série sintética de todas as campanhas: uma linha
// diária por data com os contadores somados, nome sentinela e id vazio
func AllCampaignsSeries(rows []domain.AdMetric) []domain.AdMetric {
	series := SeriesByDate(rows)

	out := make([]domain.AdMetric, len(series))
	for i, point := range series {
		out[i] = domain.AdMetric{
			Campaign:   domain.AllCampaignsName,
			CampaignID: "",
			Date:       point.Date,
			Impr:       point.Impr,
			Clicks:     point.Clicks,
			Cost:       point.Cost,
			Conv:       point.Conv,
			Value:      point.Value,
		}
	}
	return out
}

// DefaultSelection mantém a seleção anterior quando a campanha ainda existe
// no intervalo; caso contrário cai na campanha de maior custo, ou vazio
// quando não há campanhas
func DefaultSelection(campaigns []domain.Campaign, previous string) string {
	if previous != "" {
		for _, campaign := range campaigns {
			if campaign.ID == previous {
				return previous
			}
		}
	}
	if len(campaigns) == 0 {
		return ""
	}
	return campaigns[0].ID
}
