package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/gads-insights-api/internal/usecases/auditing"
	"github.com/vfg2006/gads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/gads-insights-api/pkg/log"
)

type extractCopyRequest struct {
	URL string `json:"url"`
}

func writeAuditError(w http.ResponseWriter, err error) {
	if errors.Is(err, auditing.ErrEmptyURL) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
}

// ExtractLandingPageCopy extrai o conteúdo textual de uma página de destino
func ExtractLandingPageCopy(service auditing.Auditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req extractCopyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithField("url", req.URL).Info("audit: extracting landing page copy")

		pageCopy, err := service.ExtractCopy(r.Context(), req.URL)
		if err != nil {
			logger.WithError(err).WithField("url", req.URL).Error("audit: failed to extract landing page copy")
			writeAuditError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(pageCopy); err != nil {
			logger.WithError(err).Error("audit: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// AnalyzeLandingPage executa a auditoria completa de uma página de destino
func AnalyzeLandingPage(service auditing.Auditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req auditing.AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"url":        req.URL,
			"model":      req.Model,
			"screenshot": req.IncludeScreenshot,
		}).Info("audit: analyzing landing page")

		analysis, err := service.Analyze(r.Context(), req)
		if err != nil {
			logger.WithError(err).WithField("url", req.URL).Error("audit: failed to analyze landing page")
			writeAuditError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analysis); err != nil {
			logger.WithError(err).Error("audit: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// EstimateLandingPageAnalysis calcula o custo esperado da auditoria sem chamar
// o modelo
func EstimateLandingPageAnalysis(service auditing.Auditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req auditing.AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		estimate, err := service.EstimateAnalysis(r.Context(), req)
		if err != nil {
			logger.WithError(err).WithField("url", req.URL).Warn("audit: failed to estimate analysis cost")
			writeAuditError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(estimate); err != nil {
			logger.WithError(err).Error("audit: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
