package performance

import (
	"testing"
	"time"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/infrastructure/repository/mocks"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestApplyRange(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		rangeParam string
		filters    domain.FilterState
		wantErr    string
		validate   func(t *testing.T, filters domain.FilterState)
	}{
		{
			name:       "Range vazio - não altera os filtros",
			rangeParam: "",
			validate: func(t *testing.T, filters domain.FilterState) {
				assert.Nil(t, filters.DateFrom)
				assert.Nil(t, filters.DateTo)
			},
		},
		{
			name:       "Range all - não altera os filtros",
			rangeParam: "all",
			validate: func(t *testing.T, filters domain.FilterState) {
				assert.Nil(t, filters.DateFrom)
				assert.Nil(t, filters.DateTo)
			},
		},
		{
			name:       "Range 7d - janela de 7 dias terminando agora",
			rangeParam: "7d",
			validate: func(t *testing.T, filters domain.FilterState) {
				assert.Equal(t, now.AddDate(0, 0, -7), *filters.DateFrom)
				assert.Equal(t, now, *filters.DateTo)
			},
		},
		{
			name:       "Range 30d - janela de 30 dias",
			rangeParam: "30d",
			validate: func(t *testing.T, filters domain.FilterState) {
				assert.Equal(t, now.AddDate(0, 0, -30), *filters.DateFrom)
			},
		},
		{
			name:       "Range 90d - janela de 90 dias",
			rangeParam: "90d",
			validate: func(t *testing.T, filters domain.FilterState) {
				assert.Equal(t, now.AddDate(0, 0, -90), *filters.DateFrom)
			},
		},
		{
			name:       "Range custom com as duas datas - preserva as datas do filtro",
			rangeParam: "custom",
			filters:    domain.FilterState{DateFrom: &from, DateTo: &to},
			validate: func(t *testing.T, filters domain.FilterState) {
				assert.Equal(t, from, *filters.DateFrom)
				assert.Equal(t, to, *filters.DateTo)
			},
		},
		{
			name:       "Range custom sem datas - retorna erro",
			rangeParam: "custom",
			wantErr:    "Custom range requires both from and to dates",
		},
		{
			name:       "Range custom só com from - retorna erro",
			rangeParam: "custom",
			filters:    domain.FilterState{DateFrom: &from},
			wantErr:    "Custom range requires both from and to dates",
		},
		{
			name:       "Range desconhecido - retorna erro",
			rangeParam: "15d",
			wantErr:    "range inválido: 15d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := tt.filters
			err := ApplyRange(&filters, tt.rangeParam, now)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, filters)
		})
	}
}

func TestService_GetPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPerformanceRepository(ctrl)
	service := NewService(mockRepo)

	rows := []*domain.PerformanceRow{{Product: domain.ProductPOS, Cost: 100}}

	tests := []struct {
		name         string
		perspective  domain.Perspective
		filters      domain.FilterState
		wantProducts []string
	}{
		{
			name:         "Perspectiva default - não restringe produtos",
			perspective:  domain.PerspectiveDefault,
			filters:      domain.FilterState{Products: []string{domain.ProductJim}},
			wantProducts: []string{domain.ProductJim},
		},
		{
			name:         "Perspectiva infinitepay sem filtro - aplica os produtos da perspectiva",
			perspective:  domain.PerspectiveInfinitePay,
			wantProducts: []string{domain.ProductPOS, domain.ProductTap, domain.ProductLink, domain.ProductBanking},
		},
		{
			name:         "Perspectiva infinitepay com filtro válido - intersecção com a allow-list",
			perspective:  domain.PerspectiveInfinitePay,
			filters:      domain.FilterState{Products: []string{domain.ProductPOS, domain.ProductJim}},
			wantProducts: []string{domain.ProductPOS},
		},
		{
			name:         "Filtro inteiro fora da perspectiva - volta para a allow-list",
			perspective:  domain.PerspectiveJim,
			filters:      domain.FilterState{Products: []string{domain.ProductPOS}},
			wantProducts: []string{domain.ProductJim},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				List(gomock.Cond(func(x any) bool {
					filters, ok := x.(domain.FilterState)
					if !ok {
						return false
					}
					return assert.ObjectsAreEqual(tt.wantProducts, filters.Products)
				})).
				Return(rows, nil)

			got, err := service.GetPerformance(tt.perspective, tt.filters)

			assert.NoError(t, err)
			assert.Equal(t, rows, got)
		})
	}
}

func TestService_GetKPIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPerformanceRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Agrega as linhas retornadas na fórmula do produto", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any()).
			Return([]*domain.PerformanceRow{
				{Product: domain.ProductJim, Cost: 100, Clicks: 200, Signups: 20},
			}, nil)

		kpis, err := service.GetKPIs(domain.PerspectiveJim, domain.FilterState{}, domain.ProductJim)

		assert.NoError(t, err)
		assert.Equal(t, domain.ProductJim, kpis.Product)
		assert.Equal(t, 5.0, kpis.CostPerSignup)
		assert.Equal(t, 10.0, kpis.SignupRate)
	})

	t.Run("Erro do repositório - deve ser propagado", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any()).
			Return(nil, errors.New("connection refused"))

		kpis, err := service.GetKPIs(domain.PerspectiveDefault, domain.FilterState{}, "")

		assert.Error(t, err)
		assert.Nil(t, kpis)
	})
}
