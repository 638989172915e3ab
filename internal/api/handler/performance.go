package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/performance"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/log"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/utils"
	"github.com/pkg/errors"
)

// performanceEnvelope segue o contrato {data, error, count} do dashboard
type performanceEnvelope struct {
	Data  any     `json:"data"`
	Error *string `json:"error"`
	Count int     `json:"count"`
}

func writePerformanceEnvelope(w http.ResponseWriter, status int, data any, errMsg string, count int) {
	envelope := performanceEnvelope{Data: data, Count: count}
	if errMsg != "" {
		envelope.Error = &errMsg
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope)
}

// GetPerformance atende GET /api/performance com as linhas cruas da base growth
func GetPerformance(service performance.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		perspective, filters, err := parsePerformanceParams(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("performance: parâmetros inválidos")
			writePerformanceEnvelope(w, http.StatusBadRequest, nil, err.Error(), 0)
			return
		}

		rows, err := service.GetPerformance(perspective, filters)
		if err != nil {
			logger.WithError(err).Error("performance: falha ao buscar linhas")
			writePerformanceEnvelope(w, http.StatusInternalServerError, nil, err.Error(), 0)
			return
		}

		writePerformanceEnvelope(w, http.StatusOK, rows, "", len(rows))
	})
}

// GetPerformanceKPIs atende GET /api/performance/kpis com o agregado por produto
func GetPerformanceKPIs(service performance.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		perspective, filters, err := parsePerformanceParams(query)
		if err != nil {
			logger.WithError(err).Warn("performance: parâmetros inválidos")
			writeKPIEnvelope(w, http.StatusBadRequest, nil, err.Error())
			return
		}

		product := query.Get("product")
		if product == "" && len(filters.Products) == 1 {
			product = filters.Products[0]
		}

		kpis, err := service.GetKPIs(perspective, filters, product)
		if err != nil {
			logger.WithError(err).Error("performance: falha ao calcular KPIs")
			writeKPIEnvelope(w, http.StatusInternalServerError, nil, err.Error())
			return
		}

		writeKPIEnvelope(w, http.StatusOK, kpis, "")
	})
}

type kpiEnvelope struct {
	Data  any     `json:"data"`
	Error *string `json:"error"`
}

func writeKPIEnvelope(w http.ResponseWriter, status int, data any, errMsg string) {
	envelope := kpiEnvelope{Data: data}
	if errMsg != "" {
		envelope.Error = &errMsg
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope)
}

// parsePerformanceParams valida perspective e resolve o range em datas
func parsePerformanceParams(query url.Values) (domain.Perspective, domain.FilterState, error) {
	var filters domain.FilterState

	rawPerspective := query.Get("perspective")
	if rawPerspective == "" {
		return "", filters, errPerspectiveRequired
	}
	perspective := domain.ParsePerspective(rawPerspective)

	filters, err := domain.ParseFilterState(query)
	if err != nil {
		return perspective, filters, err
	}

	// Os endpoints de performance usam from/to em vez de dateFrom/dateTo
	if from, err := utils.ParseDate(query.Get("from")); err != nil {
		return perspective, filters, err
	} else if from != nil {
		filters.DateFrom = from
	}

	if to, err := utils.ParseDate(query.Get("to")); err != nil {
		return perspective, filters, err
	} else if to != nil {
		filters.DateTo = to
	}

	if err := performance.ApplyRange(&filters, query.Get("range"), time.Now()); err != nil {
		return perspective, filters, err
	}

	return perspective, filters, nil
}

var errPerspectiveRequired = errors.New("perspective is required")
