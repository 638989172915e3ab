package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// fakeInsighter devolve respostas fixas e registra os argumentos recebidos
type fakeInsighter struct {
	rows []*domain.PerformanceRow
	kpis *domain.KPIs
	err  error

	gotPerspective domain.Perspective
	gotFilters     domain.FilterState
	gotProduct     string
}

func (f *fakeInsighter) GetPerformance(perspective domain.Perspective, filters domain.FilterState) ([]*domain.PerformanceRow, error) {
	f.gotPerspective = perspective
	f.gotFilters = filters
	return f.rows, f.err
}

func (f *fakeInsighter) GetKPIs(perspective domain.Perspective, filters domain.FilterState, product string) (*domain.KPIs, error) {
	f.gotPerspective = perspective
	f.gotFilters = filters
	f.gotProduct = product
	if f.err != nil {
		return nil, f.err
	}
	return f.kpis, nil
}

func TestGetPerformance(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		service    *fakeInsighter
		wantStatus int
		validate   func(t *testing.T, body map[string]any, service *fakeInsighter)
	}{
		{
			name: "Requisição válida - envelope {data, error, count}",
			url:  "/api/performance?perspective=jim&range=7d",
			service: &fakeInsighter{
				rows: []*domain.PerformanceRow{
					{Product: domain.ProductJim, Cost: 100},
					{Product: domain.ProductJim, Cost: 200},
				},
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any, service *fakeInsighter) {
				assert.Nil(t, body["error"])
				assert.Equal(t, float64(2), body["count"])
				assert.Len(t, body["data"], 2)
				assert.Equal(t, domain.PerspectiveJim, service.gotPerspective)
				assert.NotNil(t, service.gotFilters.DateFrom)
				assert.NotNil(t, service.gotFilters.DateTo)
			},
		},
		{
			name:       "Sem perspective - 400 com mensagem no envelope",
			url:        "/api/performance",
			service:    &fakeInsighter{},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any, service *fakeInsighter) {
				assert.Equal(t, "perspective is required", body["error"])
				assert.Nil(t, body["data"])
				assert.Equal(t, float64(0), body["count"])
			},
		},
		{
			name:       "Range custom sem datas - 400",
			url:        "/api/performance?perspective=default&range=custom",
			service:    &fakeInsighter{},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any, service *fakeInsighter) {
				assert.Equal(t, "Custom range requires both from and to dates", body["error"])
			},
		},
		{
			name:       "Range custom com from e to - 200",
			url:        "/api/performance?perspective=default&range=custom&from=2024-01-01&to=2024-02-01",
			service:    &fakeInsighter{rows: nil},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any, service *fakeInsighter) {
				assert.Equal(t, "2024-01-01", service.gotFilters.DateFrom.Format("2006-01-02"))
				assert.Equal(t, "2024-02-01", service.gotFilters.DateTo.Format("2006-01-02"))
			},
		},
		{
			name:       "Data inválida - 400",
			url:        "/api/performance?perspective=default&from=01/02/2024",
			service:    &fakeInsighter{},
			wantStatus: http.StatusBadRequest,
			validate:   func(t *testing.T, body map[string]any, service *fakeInsighter) {},
		},
		{
			name:       "Erro do serviço - 500 com envelope",
			url:        "/api/performance?perspective=default",
			service:    &fakeInsighter{err: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, body map[string]any, service *fakeInsighter) {
				assert.Equal(t, "connection refused", body["error"])
				assert.Nil(t, body["data"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, tt.url, nil)
			recorder := httptest.NewRecorder()

			GetPerformance(tt.service).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body map[string]any
			assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			tt.validate(t, body, tt.service)
		})
	}
}

func TestGetPerformanceKPIs(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		service     *fakeInsighter
		wantStatus  int
		wantProduct string
	}{
		{
			name:        "Produto explícito via product",
			url:         "/api/performance/kpis?perspective=infinitepay&product=pos",
			service:     &fakeInsighter{kpis: &domain.KPIs{Product: domain.ProductPOS}},
			wantStatus:  http.StatusOK,
			wantProduct: domain.ProductPOS,
		},
		{
			name:        "Sem product mas com um único produto no filtro - usa o filtro",
			url:         "/api/performance/kpis?perspective=infinitepay&products=tap",
			service:     &fakeInsighter{kpis: &domain.KPIs{Product: domain.ProductTap}},
			wantStatus:  http.StatusOK,
			wantProduct: domain.ProductTap,
		},
		{
			name:        "Sem product e múltiplos produtos no filtro - cálculo combinado",
			url:         "/api/performance/kpis?perspective=infinitepay&products=pos,tap",
			service:     &fakeInsighter{kpis: &domain.KPIs{Product: "combined"}},
			wantStatus:  http.StatusOK,
			wantProduct: "",
		},
		{
			name:       "Sem perspective - 400",
			url:        "/api/performance/kpis",
			service:    &fakeInsighter{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, tt.url, nil)
			recorder := httptest.NewRecorder()

			GetPerformanceKPIs(tt.service).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantProduct, tt.service.gotProduct)

				var body map[string]any
				assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Nil(t, body["error"])
				assert.NotNil(t, body["data"])
			}
		})
	}
}
