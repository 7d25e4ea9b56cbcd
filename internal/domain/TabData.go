package domain

import "time"

// DatasetType identifica uma aba da planilha exportada
type DatasetType string

const (
	DatasetDaily                DatasetType = "daily"
	DatasetSearchTerms          DatasetType = "searchTerms"
	DatasetAdGroups             DatasetType = "adGroups"
	DatasetAssetGroups          DatasetType = "assetGroups"
	DatasetNegativeKeywordLists DatasetType = "negativeKeywordLists"
	DatasetCampaignNegatives    DatasetType = "campaignNegatives"
	DatasetAdGroupNegatives     DatasetType = "adGroupNegatives"
	DatasetCampaignStatus       DatasetType = "campaignStatus"
	DatasetSharedListKeywords   DatasetType = "sharedListKeywords"
	DatasetLandingPages         DatasetType = "landingPages"
)

// DatasetTypes lista as abas na ordem em que são buscadas e exibidas
var DatasetTypes = []DatasetType{
	DatasetDaily,
	DatasetSearchTerms,
	DatasetAdGroups,
	DatasetAssetGroups,
	DatasetNegativeKeywordLists,
	DatasetCampaignNegatives,
	DatasetAdGroupNegatives,
	DatasetCampaignStatus,
	DatasetSharedListKeywords,
	DatasetLandingPages,
}

func (d DatasetType) Valid() bool {
	for _, t := range DatasetTypes {
		if t == d {
			return true
		}
	}
	return false
}

// TabData agrupa todas as abas de um snapshot da planilha
type TabData struct {
	Daily                []AdMetric            `json:"daily"`
	SearchTerms          []SearchTermMetric    `json:"searchTerms"`
	AdGroups             []AdGroupMetric       `json:"adGroups"`
	AssetGroups          []AssetGroupMetric    `json:"assetGroups"`
	NegativeKeywordLists []NegativeKeywordList `json:"negativeKeywordLists"`
	CampaignNegatives    []CampaignNegative    `json:"campaignNegatives"`
	AdGroupNegatives     []AdGroupNegative     `json:"adGroupNegatives"`
	CampaignStatus       []CampaignStatus      `json:"campaignStatus"`
	SharedListKeywords   []SharedListKeyword   `json:"sharedListKeywords"`
	LandingPages         []LandingPageMetric   `json:"landingPages"`
	FetchedAt            time.Time             `json:"fetchedAt"`
}

// Records devolve as linhas de uma aba como registros genéricos
func (t *TabData) Records(dataset DatasetType) []Record {
	switch dataset {
	case DatasetDaily:
		records := make([]Record, len(t.Daily))
		for i, row := range t.Daily {
			records[i] = row
		}
		return records
	case DatasetSearchTerms:
		records := make([]Record, len(t.SearchTerms))
		for i, row := range t.SearchTerms {
			records[i] = row
		}
		return records
	case DatasetAdGroups:
		records := make([]Record, len(t.AdGroups))
		for i, row := range t.AdGroups {
			records[i] = row
		}
		return records
	case DatasetAssetGroups:
		records := make([]Record, len(t.AssetGroups))
		for i, row := range t.AssetGroups {
			records[i] = row
		}
		return records
	case DatasetNegativeKeywordLists:
		records := make([]Record, len(t.NegativeKeywordLists))
		for i, row := range t.NegativeKeywordLists {
			records[i] = row
		}
		return records
	case DatasetCampaignNegatives:
		records := make([]Record, len(t.CampaignNegatives))
		for i, row := range t.CampaignNegatives {
			records[i] = row
		}
		return records
	case DatasetAdGroupNegatives:
		records := make([]Record, len(t.AdGroupNegatives))
		for i, row := range t.AdGroupNegatives {
			records[i] = row
		}
		return records
	case DatasetCampaignStatus:
		records := make([]Record, len(t.CampaignStatus))
		for i, row := range t.CampaignStatus {
			records[i] = row
		}
		return records
	case DatasetSharedListKeywords:
		records := make([]Record, len(t.SharedListKeywords))
		for i, row := range t.SharedListKeywords {
			records[i] = row
		}
		return records
	case DatasetLandingPages:
		records := make([]Record, len(t.LandingPages))
		for i, row := range t.LandingPages {
			records[i] = row
		}
		return records
	}
	return nil
}

// RowCount devolve o número de linhas de uma aba
func (t *TabData) RowCount(dataset DatasetType) int {
	return len(t.Records(dataset))
}

// Colunas numéricas reconhecidas como métricas por aba. Colunas numéricas fora
// desta lista (IDs, por exemplo) são tratadas como dimensões.
var datasetMetricKeys = map[DatasetType][]string{
	DatasetDaily:        {"impr", "clicks", "cost", "conv", "value"},
	DatasetSearchTerms:  {"impr", "clicks", "cost", "conv", "value"},
	DatasetAdGroups:     {"impr", "clicks", "cost", "conv", "value", "cpc", "ctr", "convRate", "cpa", "roas"},
	DatasetAssetGroups:  {"impr", "clicks", "cost", "conv", "value", "cpc", "ctr", "convRate", "cpa", "roas"},
	DatasetLandingPages: {"impressions", "clicks", "cost", "conversions", "value", "ctr", "cvr", "cpa", "roas"},
}

// MetricKeys devolve as colunas de métrica de uma aba. Abas estruturais
// (negativas, status, listas) não têm métricas.
func MetricKeys(dataset DatasetType) []string {
	return datasetMetricKeys[dataset]
}

// IsMetricKey indica se a coluna é métrica na aba informada
func IsMetricKey(dataset DatasetType, key string) bool {
	for _, k := range datasetMetricKeys[dataset] {
		if k == key {
			return true
		}
	}
	return false
}
