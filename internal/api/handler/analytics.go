package handler

import (
	"encoding/json"
	"net/http"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/analytics"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/apiErrors"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/log"
)

// GetAnalytics atende GET /api/analytics com os agregados sobre os anúncios
func GetAnalytics(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		perspective := domain.ParsePerspective(query.Get("perspective"))

		filters, err := domain.ParseFilterState(query)
		if err != nil {
			logger.WithError(err).Warn("analytics: parâmetro de data inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.Analyze(perspective, filters)
		if err != nil {
			logger.WithError(err).Error("analytics: falha na agregação")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"perspective": perspective,
			"total_ads":   summary.TotalAds,
		}).Debug("analytics: agregação concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("analytics: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
