package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/internal/store"
	"github.com/vfg2006/gads-insights-api/internal/usecases/querying"
	"github.com/vfg2006/gads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/gads-insights-api/pkg/log"
)

type datasetInfo struct {
	Dataset    domain.DatasetType `json:"dataset"`
	Rows       int                `json:"rows"`
	MetricKeys []string           `json:"metricKeys,omitempty"`
}

type datasetListResponse struct {
	Datasets  []datasetInfo `json:"datasets"`
	FetchedAt time.Time     `json:"fetchedAt"`
}

// ListDatasets lista as abas do snapshot com a contagem de linhas de cada uma
func ListDatasets(snapshots store.SnapshotStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		data, ok := snapshots.Get()
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNoSnapshot, "Nenhum snapshot de dados carregado ainda", nil)
			return
		}

		response := datasetListResponse{
			Datasets:  make([]datasetInfo, 0, len(domain.DatasetTypes)),
			FetchedAt: data.FetchedAt,
		}
		for _, dataset := range domain.DatasetTypes {
			response.Datasets = append(response.Datasets, datasetInfo{
				Dataset:    dataset,
				Rows:       data.RowCount(dataset),
				MetricKeys: domain.MetricKeys(dataset),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("datasets: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// queryRequest é o corpo aceito pelo endpoint de consulta de uma aba
type queryRequest struct {
	Filters []domain.FilterClause `json:"filters,omitempty"`
	Sort    *domain.SortSpec      `json:"sort,omitempty"`
	Limit   int                   `json:"limit,omitempty"`
	Summary bool                  `json:"summary,omitempty"`
}

type queryResponse struct {
	Dataset      domain.DatasetType        `json:"dataset"`
	Schema       []domain.ColumnDescriptor `json:"schema"`
	Rows         []domain.Record           `json:"rows"`
	TotalRows    int                       `json:"totalRows"`
	FilteredRows int                       `json:"filteredRows"`
	Filters      []string                  `json:"filters,omitempty"`
	Summary      *domain.DataSummary       `json:"summary,omitempty"`
}

func resolveDataset(r *http.Request, snapshots store.SnapshotStore, w http.ResponseWriter) (domain.DatasetType, *domain.TabData, bool) {
	tab := domain.DatasetType(httprouter.ParamsFromContext(r.Context()).ByName("tab"))
	if !tab.Valid() {
		apiErrors.WriteError(w, apiErrors.ErrUnknownDataset, "Aba de dados desconhecida", map[string]any{"tab": string(tab)})
		return "", nil, false
	}

	data, ok := snapshots.Get()
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrNoSnapshot, "Nenhum snapshot de dados carregado ainda", nil)
		return "", nil, false
	}

	return tab, data, true
}

func previewLimit(raw string, cfg *config.Config) int {
	if raw == "" {
		if cfg.Query.PreviewLimit > 0 {
			return cfg.Query.PreviewLimit
		}
		return querying.DefaultPreviewLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return querying.DefaultPreviewLimit
	}
	return limit
}

// PreviewDataset devolve as primeiras linhas de uma aba, com ordenação
// opcional via query string
func PreviewDataset(snapshots store.SnapshotStore, engine *querying.Engine, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tab, data, ok := resolveDataset(r, snapshots, w)
		if !ok {
			return
		}

		var spec *domain.SortSpec
		if column := r.URL.Query().Get("sort_column"); column != "" {
			direction := domain.SortDesc
			if r.URL.Query().Get("sort_direction") == string(domain.SortAsc) {
				direction = domain.SortAsc
			}
			spec = &domain.SortSpec{Column: column, Direction: direction}
		}

		limit := previewLimit(r.URL.Query().Get("limit"), cfg)
		result := engine.Run(tab, data.Records(tab), nil, spec, limit)

		logger.WithFields(log.Fields{
			"tab":   tab,
			"limit": limit,
			"rows":  len(result.Rows),
		}).Info("datasets: preview served")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(queryResponse{
			Dataset:      tab,
			Schema:       result.Schema,
			Rows:         result.Rows,
			TotalRows:    result.TotalRows,
			FilteredRows: result.Filtered,
		}); err != nil {
			logger.WithError(err).Error("datasets: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// QueryDataset aplica cláusulas de filtro e ordenação sobre uma aba
func QueryDataset(snapshots store.SnapshotStore, engine *querying.Engine, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tab, data, ok := resolveDataset(r, snapshots, w)
		if !ok {
			return
		}

		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if req.Limit <= 0 {
			req.Limit = previewLimit("", cfg)
		}

		result := engine.Run(tab, data.Records(tab), req.Filters, req.Sort, req.Limit)

		response := queryResponse{
			Dataset:      tab,
			Schema:       result.Schema,
			Rows:         result.Rows,
			TotalRows:    result.TotalRows,
			FilteredRows: result.Filtered,
			Filters:      engine.DescribeFilters(req.Filters, result.Schema),
		}
		if req.Summary {
			response.Summary = &result.Summary
		}

		logger.WithFields(log.Fields{
			"tab":      tab,
			"filters":  len(req.Filters),
			"total":    result.TotalRows,
			"filtered": result.Filtered,
		}).Info("datasets: query served")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("datasets: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
