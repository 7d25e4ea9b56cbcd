package sheets

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/pkg/utils"
)

// Integrator monta um snapshot completo da planilha a partir das abas brutas
type Integrator interface {
	FetchAll(ctx context.Context) (*domain.TabData, error)
}

type Service struct {
	client        Client
	maxConcurrent int
	requestDelay  time.Duration
}

func NewService(client Client, syncConfig config.SheetSync) *Service {
	maxConcurrent := syncConfig.MaxConcurrentJobs
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &Service{
		client:        client,
		maxConcurrent: maxConcurrent,
		requestDelay:  time.Duration(syncConfig.RequestDelayMs) * time.Millisecond,
	}
}

// FetchAll busca todas as abas e converte as linhas brutas nos tipos do
// domínio. As abas são buscadas em paralelo, limitadas pelo semáforo e com um
// intervalo entre disparos para não sobrecarregar o Apps Script. Falha em uma
// aba não derruba o snapshot: a aba fica vazia e as demais continuam.
func (s *Service) FetchAll(ctx context.Context) (*domain.TabData, error) {
	data := &domain.TabData{FetchedAt: time.Now()}

	semaphore := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup

	for i, tab := range domain.DatasetTypes {
		if i > 0 && s.requestDelay > 0 {
			time.Sleep(s.requestDelay)
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(tab domain.DatasetType) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			rows, err := s.client.FetchTab(ctx, tab)
			if err != nil {
				logrus.WithError(err).WithField("tab", tab).Warn("Aba indisponível, seguindo com as demais")
				return
			}

			// Cada goroutine escreve em um campo distinto do snapshot.
			switch tab {
			case domain.DatasetDaily:
				data.Daily = parseDaily(rows)
			case domain.DatasetSearchTerms:
				data.SearchTerms = parseSearchTerms(rows)
			case domain.DatasetAdGroups:
				data.AdGroups = parseAdGroups(rows)
			case domain.DatasetAssetGroups:
				data.AssetGroups = parseAssetGroups(rows)
			case domain.DatasetNegativeKeywordLists:
				data.NegativeKeywordLists = parseNegativeKeywordLists(rows)
			case domain.DatasetCampaignNegatives:
				data.CampaignNegatives = parseCampaignNegatives(rows)
			case domain.DatasetAdGroupNegatives:
				data.AdGroupNegatives = parseAdGroupNegatives(rows)
			case domain.DatasetCampaignStatus:
				data.CampaignStatus = parseCampaignStatus(rows)
			case domain.DatasetSharedListKeywords:
				data.SharedListKeywords = parseSharedListKeywords(rows)
			case domain.DatasetLandingPages:
				data.LandingPages = parseLandingPages(rows)
			}
		}(tab)
	}

	wg.Wait()

	return data, nil
}

// Conversão defensiva: campo numérico ilegível vira 0, campo de texto vira
// string vazia. Nenhuma linha derruba o lote.

func parseDaily(rows []map[string]any) []domain.AdMetric {
	out := make([]domain.AdMetric, len(rows))
	for i, row := range rows {
		out[i] = domain.AdMetric{
			Campaign:   utils.CoerceString(row["campaign"]),
			CampaignID: utils.CoerceString(row["campaignId"]),
			Clicks:     utils.CoerceFloat(row["clicks"]),
			Value:      utils.CoerceFloat(row["value"]),
			Conv:       utils.CoerceFloat(row["conv"]),
			Cost:       utils.CoerceFloat(row["cost"]),
			Impr:       utils.CoerceFloat(row["impr"]),
			Date:       utils.CoerceString(row["date"]),
		}
	}
	return out
}

func parseSearchTerms(rows []map[string]any) []domain.SearchTermMetric {
	out := make([]domain.SearchTermMetric, len(rows))
	for i, row := range rows {
		out[i] = domain.SearchTermMetric{
			SearchTerm:  utils.CoerceString(row["searchTerm"]),
			Keyword:     utils.CoerceString(row["keyword"]),
			KeywordText: utils.CoerceString(row["keywordText"]),
			Campaign:    utils.CoerceString(row["campaign"]),
			AdGroup:     utils.CoerceString(row["adGroup"]),
			Impr:        utils.CoerceFloat(row["impr"]),
			Clicks:      utils.CoerceFloat(row["clicks"]),
			Cost:        utils.CoerceFloat(row["cost"]),
			Conv:        utils.CoerceFloat(row["conv"]),
			Value:       utils.CoerceFloat(row["value"]),
		}
	}
	return out
}

func parseAdGroups(rows []map[string]any) []domain.AdGroupMetric {
	out := make([]domain.AdGroupMetric, len(rows))
	for i, row := range rows {
		out[i] = domain.AdGroupMetric{
			Campaign:   utils.CoerceString(row["campaign"]),
			CampaignID: utils.CoerceString(row["campaignId"]),
			AdGroup:    utils.CoerceString(row["adGroup"]),
			AdGroupID:  utils.CoerceString(row["adGroupId"]),
			Impr:       utils.CoerceFloat(row["impr"]),
			Clicks:     utils.CoerceFloat(row["clicks"]),
			Value:      utils.CoerceFloat(row["value"]),
			Conv:       utils.CoerceFloat(row["conv"]),
			Cost:       utils.CoerceFloat(row["cost"]),
			Date:       utils.CoerceString(row["date"]),
			CPC:        utils.CoerceFloat(row["cpc"]),
			CTR:        utils.CoerceFloat(row["ctr"]),
			ConvRate:   utils.CoerceFloat(row["convRate"]),
			CPA:        utils.CoerceFloat(row["cpa"]),
			ROAS:       utils.CoerceFloat(row["roas"]),
		}
	}
	return out
}

func parseAssetGroups(rows []map[string]any) []domain.AssetGroupMetric {
	out := make([]domain.AssetGroupMetric, len(rows))
	for i, row := range rows {
		out[i] = domain.AssetGroupMetric{
			Campaign:     utils.CoerceString(row["campaign"]),
			CampaignID:   utils.CoerceString(row["campaignId"]),
			AssetGroup:   utils.CoerceString(row["assetGroup"]),
			AssetGroupID: utils.CoerceString(row["assetGroupId"]),
			Status:       utils.CoerceString(row["status"]),
			Impr:         utils.CoerceFloat(row["impr"]),
			Clicks:       utils.CoerceFloat(row["clicks"]),
			Value:        utils.CoerceFloat(row["value"]),
			Conv:         utils.CoerceFloat(row["conv"]),
			Cost:         utils.CoerceFloat(row["cost"]),
			Date:         utils.CoerceString(row["date"]),
			CPC:          utils.CoerceFloat(row["cpc"]),
			CTR:          utils.CoerceFloat(row["ctr"]),
			ConvRate:     utils.CoerceFloat(row["convRate"]),
			CPA:          utils.CoerceFloat(row["cpa"]),
			ROAS:         utils.CoerceFloat(row["roas"]),
		}
	}
	return out
}

func parseNegativeKeywordLists(rows []map[string]any) []domain.NegativeKeywordList {
	out := make([]domain.NegativeKeywordList, len(rows))
	for i, row := range rows {
		out[i] = domain.NegativeKeywordList{
			ListName:              utils.CoerceString(row["listName"]),
			ListID:                utils.CoerceString(row["listId"]),
			ListType:              utils.CoerceString(row["listType"]),
			AppliedToCampaignName: utils.CoerceString(row["appliedToCampaignName"]),
			AppliedToCampaignID:   utils.CoerceString(row["appliedToCampaignId"]),
		}
	}
	return out
}

func parseCampaignNegatives(rows []map[string]any) []domain.CampaignNegative {
	out := make([]domain.CampaignNegative, len(rows))
	for i, row := range rows {
		out[i] = domain.CampaignNegative{
			CampaignName: utils.CoerceString(row["campaignName"]),
			CampaignID:   utils.CoerceString(row["campaignId"]),
			CriterionID:  utils.CoerceString(row["criterionId"]),
			KeywordText:  utils.CoerceString(row["keywordText"]),
			MatchType:    utils.CoerceString(row["matchType"]),
		}
	}
	return out
}

func parseAdGroupNegatives(rows []map[string]any) []domain.AdGroupNegative {
	out := make([]domain.AdGroupNegative, len(rows))
	for i, row := range rows {
		out[i] = domain.AdGroupNegative{
			CampaignName: utils.CoerceString(row["campaignName"]),
			CampaignID:   utils.CoerceString(row["campaignId"]),
			AdGroupName:  utils.CoerceString(row["adGroupName"]),
			AdGroupID:    utils.CoerceString(row["adGroupId"]),
			CriterionID:  utils.CoerceString(row["criterionId"]),
			KeywordText:  utils.CoerceString(row["keywordText"]),
			MatchType:    utils.CoerceString(row["matchType"]),
		}
	}
	return out
}

func parseCampaignStatus(rows []map[string]any) []domain.CampaignStatus {
	out := make([]domain.CampaignStatus, len(rows))
	for i, row := range rows {
		out[i] = domain.CampaignStatus{
			CampaignID:   utils.CoerceString(row["campaignId"]),
			CampaignName: utils.CoerceString(row["campaignName"]),
			Status:       utils.CoerceString(row["status"]),
			ChannelType:  utils.CoerceString(row["channelType"]),
		}
	}
	return out
}

func parseSharedListKeywords(rows []map[string]any) []domain.SharedListKeyword {
	out := make([]domain.SharedListKeyword, len(rows))
	for i, row := range rows {
		out[i] = domain.SharedListKeyword{
			ListID:      utils.CoerceString(row["listId"]),
			CriterionID: utils.CoerceString(row["criterionId"]),
			KeywordText: utils.CoerceString(row["keywordText"]),
			MatchType:   utils.CoerceString(row["matchType"]),
			Type:        utils.CoerceString(row["type"]),
		}
	}
	return out
}

func parseLandingPages(rows []map[string]any) []domain.LandingPageMetric {
	out := make([]domain.LandingPageMetric, len(rows))
	for i, row := range rows {
		out[i] = domain.LandingPageMetric{
			URL:         utils.CoerceString(row["url"]),
			Impressions: utils.CoerceFloat(row["impressions"]),
			Clicks:      utils.CoerceFloat(row["clicks"]),
			Cost:        utils.CoerceFloat(row["cost"]),
			Conversions: utils.CoerceFloat(row["conversions"]),
			Value:       utils.CoerceFloat(row["value"]),
			CTR:         utils.CoerceFloat(row["ctr"]),
			CvR:         utils.CoerceFloat(row["cvr"]),
			CPA:         utils.CoerceFloat(row["cpa"]),
			ROAS:        utils.CoerceFloat(row["roas"]),
		}
	}
	return out
}
