package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/internal/store"
	"github.com/vfg2006/gads-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/gads-insights-api/internal/usecases/dateranging"
	"github.com/vfg2006/gads-insights-api/internal/usecases/deriving"
	"github.com/vfg2006/gads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/gads-insights-api/pkg/log"
	"github.com/vfg2006/gads-insights-api/pkg/utils"
)

type rangeInfo struct {
	Option domain.DateRangeOption `json:"option"`
	Label  string                 `json:"label"`
	Start  string                 `json:"start"`
	End    string                 `json:"end"`
}

// resolveRange interpreta os parâmetros de intervalo da query string. A opção
// "custom" aceita start/end em YYYY-MM-DD; datas ausentes caem na janela padrão.
func resolveRange(r *http.Request, w http.ResponseWriter) (domain.DateRange, rangeInfo, bool) {
	query := r.URL.Query()

	option := domain.DateRangeOption(query.Get("range"))
	if option == "" {
		option = domain.Last30Days
	}

	valid := false
	for _, candidate := range domain.DateRangeOptions {
		if candidate == option {
			valid = true
			break
		}
	}
	if !valid {
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Intervalo de datas inválido", map[string]any{"range": string(option)})
		return domain.DateRange{}, rangeInfo{}, false
	}

	now := time.Now()

	var resolved domain.DateRange
	if option == domain.CustomRange {
		var start, end *time.Time
		if raw := query.Get("start"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Datas do intervalo customizado inválidas", nil)
				return domain.DateRange{}, rangeInfo{}, false
			}
			start = parsed
		}
		if raw := query.Get("end"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Datas do intervalo customizado inválidas", nil)
				return domain.DateRange{}, rangeInfo{}, false
			}
			end = parsed
		}
		resolved = dateranging.ResolveCustom(start, end, now)
	} else {
		resolved = dateranging.Resolve(option, now)
	}

	info := rangeInfo{
		Option: option,
		Label:  dateranging.Label(option),
		Start:  resolved.Start.Format(time.DateOnly),
		End:    resolved.End.Format(time.DateOnly),
	}
	return resolved, info, true
}

type campaignListResponse struct {
	Range            rangeInfo         `json:"range"`
	Campaigns        []domain.Campaign `json:"campaigns"`
	DefaultSelection string            `json:"defaultSelection"`
}

// ListCampaigns agrega o custo por campanha dentro do intervalo pedido
func ListCampaigns(snapshots store.SnapshotStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		data, ok := snapshots.Get()
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoSnapshot, "Nenhum snapshot de dados carregado ainda", nil)
			return
		}

		dateRange, info, ok := resolveRange(r, w)
		if !ok {
			return
		}

		rows := dateranging.FilterDaily(data.Daily, dateRange)
		campaigns := aggregating.Campaigns(rows)
		selected := r.URL.Query().Get("selected")

		logger.WithFields(log.Fields{
			"range":     info.Option,
			"campaigns": len(campaigns),
		}).Info("rollups: campaign list served")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaignListResponse{
			Range:            info,
			Campaigns:        campaigns,
			DefaultSelection: aggregating.DefaultSelection(campaigns, selected),
		}); err != nil {
			logger.WithError(err).Error("rollups: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

type seriesResponse struct {
	Range      rangeInfo            `json:"range"`
	CampaignID string               `json:"campaignId"`
	Series     []domain.SeriesPoint `json:"series"`
	Totals     domain.DailyMetrics  `json:"totals"`
	Display    map[string]string    `json:"display"`
}

// displayTotals formata os totais para exibição direta no painel. As razões
// saem do motor como frações 0-1; a multiplicação por 100 acontece só aqui.
func displayTotals(totals domain.DailyMetrics, currency string) map[string]string {
	return map[string]string{
		"impr":   utils.FormatNumber(totals.Impr),
		"clicks": utils.FormatNumber(totals.Clicks),
		"conv":   utils.FormatNumber(totals.Conv),
		"cost":   utils.FormatCurrency(totals.Cost, currency),
		"value":  utils.FormatCurrency(totals.Value, currency),
		"ctr":    utils.FormatPercent(totals.CTR),
		"cvr":    utils.FormatPercent(totals.CvR),
		"cpa":    utils.FormatCurrency(totals.CPA, currency),
		"cpc":    utils.FormatCurrency(totals.CPC, currency),
		"roas":   strconv.FormatFloat(utils.RoundWithTwoDecimalPlace(totals.ROAS), 'f', -1, 64) + "x",
	}
}

// CampaignSeries devolve a série diária de uma campanha. O identificador
// "all" agrega todas as campanhas na série sentinela.
func CampaignSeries(snapshots store.SnapshotStore, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		data, ok := snapshots.Get()
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoSnapshot, "Nenhum snapshot de dados carregado ainda", nil)
			return
		}

		dateRange, info, ok := resolveRange(r, w)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		rows := dateranging.FilterDaily(data.Daily, dateRange)

		if id != "all" {
			selected := make([]domain.AdMetric, 0, len(rows))
			for _, row := range rows {
				if row.CampaignID == id {
					selected = append(selected, row)
				}
			}
			rows = selected
		}

		logger.WithFields(log.Fields{
			"campaign_id": id,
			"range":       info.Option,
			"rows":        len(rows),
		}).Info("rollups: campaign series served")

		w.Header().Set("Content-Type", "application/json")
		totals := deriving.Totals(rows)
		if err := json.NewEncoder(w).Encode(seriesResponse{
			Range:      info,
			CampaignID: id,
			Series:     aggregating.SeriesByDate(rows),
			Totals:     totals,
			Display:    displayTotals(totals, cfg.Sheets.Currency),
		}); err != nil {
			logger.WithError(err).Error("rollups: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

type entityListResponse struct {
	Range    rangeInfo              `json:"range"`
	Entities []domain.EntitySummary `json:"entities"`
}

func inRange(dateStr string, r domain.DateRange) bool {
	parsed, ok := utils.ParseRowDate(dateStr)
	if !ok {
		return false
	}
	return dateranging.InRange(parsed, r)
}

// ListAdGroups agrega o custo por grupo de anúncio dentro do intervalo pedido
func ListAdGroups(snapshots store.SnapshotStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		data, ok := snapshots.Get()
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoSnapshot, "Nenhum snapshot de dados carregado ainda", nil)
			return
		}

		dateRange, info, ok := resolveRange(r, w)
		if !ok {
			return
		}

		rows := make([]domain.AdGroupMetric, 0, len(data.AdGroups))
		for _, row := range data.AdGroups {
			if inRange(row.Date, dateRange) {
				rows = append(rows, row)
			}
		}

		entities := aggregating.AdGroups(deriving.AdGroups(rows))

		logger.WithFields(log.Fields{
			"range":     info.Option,
			"ad_groups": len(entities),
		}).Info("rollups: ad group list served")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entityListResponse{Range: info, Entities: entities}); err != nil {
			logger.WithError(err).Error("rollups: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListAssetGroups agrega o custo por grupo de recursos dentro do intervalo pedido
func ListAssetGroups(snapshots store.SnapshotStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		data, ok := snapshots.Get()
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoSnapshot, "Nenhum snapshot de dados carregado ainda", nil)
			return
		}

		dateRange, info, ok := resolveRange(r, w)
		if !ok {
			return
		}

		rows := make([]domain.AssetGroupMetric, 0, len(data.AssetGroups))
		for _, row := range data.AssetGroups {
			if inRange(row.Date, dateRange) {
				rows = append(rows, row)
			}
		}

		entities := aggregating.AssetGroups(deriving.AssetGroups(rows))

		logger.WithFields(log.Fields{
			"range":        info.Option,
			"asset_groups": len(entities),
		}).Info("rollups: asset group list served")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entityListResponse{Range: info, Entities: entities}); err != nil {
			logger.WithError(err).Error("rollups: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

type timeseriesResponse struct {
	Range   rangeInfo             `json:"range"`
	Series  []domain.SeriesPoint  `json:"series"`
	Rows    []domain.DailyMetrics `json:"rows"`
	Totals  domain.DailyMetrics   `json:"totals"`
	Display map[string]string     `json:"display"`
}

// Timeseries devolve a série "All Campaigns": uma linha sintética por data com
// os contadores somados e as razões derivadas recalculadas
func Timeseries(snapshots store.SnapshotStore, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		data, ok := snapshots.Get()
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoSnapshot, "Nenhum snapshot de dados carregado ainda", nil)
			return
		}

		dateRange, info, ok := resolveRange(r, w)
		if !ok {
			return
		}

		filtered := dateranging.FilterDaily(data.Daily, dateRange)
		aggregated := aggregating.AllCampaignsSeries(filtered)

		logger.WithFields(log.Fields{
			"range":  info.Option,
			"points": len(aggregated),
		}).Info("rollups: timeseries served")

		w.Header().Set("Content-Type", "application/json")
		totals := deriving.Totals(filtered)
		if err := json.NewEncoder(w).Encode(timeseriesResponse{
			Range:   info,
			Series:  aggregating.SeriesByDate(filtered),
			Rows:    deriving.AllDaily(aggregated),
			Totals:  totals,
			Display: displayTotals(totals, cfg.Sheets.Currency),
		}); err != nil {
			logger.WithError(err).Error("rollups: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
