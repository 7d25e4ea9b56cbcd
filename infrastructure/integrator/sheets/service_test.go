package sheets_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gads-insights-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/gads-insights-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func emptyAllTabsExcept(client *mocks.MockClient, except ...domain.DatasetType) {
	skip := make(map[domain.DatasetType]bool)
	for _, tab := range except {
		skip[tab] = true
	}
	for _, tab := range domain.DatasetTypes {
		if !skip[tab] {
			client.EXPECT().FetchTab(gomock.Any(), tab).Return([]map[string]any{}, nil)
		}
	}
}

func TestFetchAll(t *testing.T) {
	t.Run("deve converter linhas brutas nos tipos do domínio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)

		client.EXPECT().FetchTab(gomock.Any(), domain.DatasetDaily).Return([]map[string]any{
			{
				"campaign":   "Brand",
				"campaignId": float64(12345),
				"clicks":     float64(10),
				"cost":       "25.5",
				"conv":       float64(2),
				"value":      float64(80),
				"impr":       float64(1000),
				"date":       "2025-08-01",
			},
		}, nil)
		emptyAllTabsExcept(client, domain.DatasetDaily)

		service := sheets.NewService(client, config.SheetSync{MaxConcurrentJobs: 1})

		data, err := service.FetchAll(context.Background())

		require.NoError(t, err)
		require.Len(t, data.Daily, 1)
		assert.Equal(t, domain.AdMetric{
			Campaign:   "Brand",
			CampaignID: "12345",
			Clicks:     10,
			Cost:       25.5,
			Conv:       2,
			Value:      80,
			Impr:       1000,
			Date:       "2025-08-01",
		}, data.Daily[0])
		assert.False(t, data.FetchedAt.IsZero())
	})

	t.Run("deve zerar campos ilegíveis sem derrubar o lote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)

		client.EXPECT().FetchTab(gomock.Any(), domain.DatasetDaily).Return([]map[string]any{
			{"campaign": "Valida", "cost": "abc", "clicks": nil},
			{"campaign": nil, "cost": float64(5)},
		}, nil)
		emptyAllTabsExcept(client, domain.DatasetDaily)

		service := sheets.NewService(client, config.SheetSync{MaxConcurrentJobs: 1})

		data, err := service.FetchAll(context.Background())

		require.NoError(t, err)
		require.Len(t, data.Daily, 2)
		assert.Equal(t, 0.0, data.Daily[0].Cost)
		assert.Equal(t, 0.0, data.Daily[0].Clicks)
		assert.Empty(t, data.Daily[1].Campaign)
		assert.Equal(t, 5.0, data.Daily[1].Cost)
	})

	t.Run("deve seguir com as demais abas quando uma falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)

		client.EXPECT().FetchTab(gomock.Any(), domain.DatasetDaily).Return(nil, errors.New("timeout"))
		client.EXPECT().FetchTab(gomock.Any(), domain.DatasetSearchTerms).Return([]map[string]any{
			{"searchTerm": "tenis corrida", "impr": float64(100)},
		}, nil)
		emptyAllTabsExcept(client, domain.DatasetDaily, domain.DatasetSearchTerms)

		service := sheets.NewService(client, config.SheetSync{MaxConcurrentJobs: 1})

		data, err := service.FetchAll(context.Background())

		require.NoError(t, err)
		assert.Empty(t, data.Daily)
		require.Len(t, data.SearchTerms, 1)
		assert.Equal(t, "tenis corrida", data.SearchTerms[0].SearchTerm)
	})

	t.Run("deve converter a aba de páginas de destino com os nomes longos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)

		client.EXPECT().FetchTab(gomock.Any(), domain.DatasetLandingPages).Return([]map[string]any{
			{
				"url":         "https://example.com",
				"impressions": float64(2000),
				"conversions": float64(10),
				"clicks":      float64(100),
			},
		}, nil)
		emptyAllTabsExcept(client, domain.DatasetLandingPages)

		service := sheets.NewService(client, config.SheetSync{MaxConcurrentJobs: 1})

		data, err := service.FetchAll(context.Background())

		require.NoError(t, err)
		require.Len(t, data.LandingPages, 1)
		assert.Equal(t, 2000.0, data.LandingPages[0].Impressions)
		assert.Equal(t, 10.0, data.LandingPages[0].Conversions)
	})
}
