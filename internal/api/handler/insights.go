package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/gads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/gads-insights-api/pkg/log"
)

func writeInsightError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, insighting.ErrEmptyPrompt):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, insighting.ErrUnknownDataset):
		apiErrors.WriteError(w, apiErrors.ErrUnknownDataset, err.Error(), nil)
	case errors.Is(err, insighting.ErrNoSnapshot):
		apiErrors.WriteError(w, apiErrors.ErrNoSnapshot, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
	}
}

// GenerateInsight executa uma análise do dataset pedido via modelo de linguagem
func GenerateInsight(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.InsightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"dataset": req.Dataset,
			"model":   req.Model,
			"filters": len(req.Filters),
		}).Info("insights: generating analysis")

		response, err := service.Generate(r.Context(), req)
		if err != nil {
			logger.WithError(err).WithField("dataset", req.Dataset).Error("insights: failed to generate analysis")
			writeInsightError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"dataset":       req.Dataset,
			"model":         response.Model,
			"analyzed_rows": response.AnalyzedRows,
		}).Info("insights: analysis generated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// EstimateInsight calcula o custo esperado da análise sem chamar o modelo
func EstimateInsight(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.InsightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		estimate, err := service.Estimate(req)
		if err != nil {
			logger.WithError(err).WithField("dataset", req.Dataset).Warn("insights: failed to estimate analysis cost")
			writeInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(estimate); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// InsightHistory lista as análises mais recentes persistidas
func InsightHistory(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		entries, err := service.History(limit)
		if err != nil {
			logger.WithError(err).Error("insights: failed to list history")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"entries": entries}); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
