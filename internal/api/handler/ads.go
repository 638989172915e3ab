package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/ads"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/apiErrors"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/log"
)

// ListAds atende GET /api/ads com paginação e filtros por perspectiva
func ListAds(service ads.AdLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		perspective := domain.ParsePerspective(query.Get("perspective"))

		filters, err := domain.ParseFilterState(query)
		if err != nil {
			logger.WithError(err).Warn("ads: parâmetro de data inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		// page/limit inválidos caem nos defaults em vez de erro
		page := parseIntOrDefault(query.Get("page"), ads.DefaultPage)
		limit := parseIntOrDefault(query.Get("limit"), ads.DefaultLimit)

		logger.WithFields(log.Fields{
			"perspective": perspective,
			"page":        page,
			"limit":       limit,
		}).Debug("ads: listando anúncios")

		response, err := service.ListAds(perspective, filters, page, limit)
		if err != nil {
			logger.WithError(err).Error("ads: falha ao listar anúncios")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("ads: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListCompetitors atende GET /api/competitors
func ListCompetitors(service ads.AdLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		competitors, err := service.ListCompetitors()
		if err != nil {
			logger.WithError(err).Error("competitors: falha ao listar concorrentes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		response := map[string]any{
			"competitors": competitors,
			"total":       len(competitors),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("competitors: falha ao serializar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func parseIntOrDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}

	return value
}
