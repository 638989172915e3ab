package performance

import (
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/utils"
)

// CalculateKPIs despacha para a fórmula do produto selecionado. Sem produto
// único (vazio ou múltiplos), cai no cálculo combinado. Função pura sobre as
// linhas em memória.
func CalculateKPIs(rows []*domain.PerformanceRow, product string) *domain.KPIs {
	switch product {
	case domain.ProductPOS, domain.ProductTap, domain.ProductLink:
		return calculateAcquisitionKPIs(rows, product)
	case domain.ProductJim:
		return calculateJimKPIs(rows)
	case domain.ProductBanking:
		return calculateBankingKPIs(rows)
	default:
		return calculateCombinedKPIs(rows)
	}
}

type totals struct {
	cost        float64
	impressions int64
	clicks      int64
	signups     int64
	activations int64
}

func sumRows(rows []*domain.PerformanceRow, product string) totals {
	var t totals
	for _, row := range rows {
		if product != "" && row.Product != product {
			continue
		}
		t.cost += row.Cost
		t.impressions += row.Impressions
		t.clicks += row.Clicks
		t.signups += row.Signups
		t.activations += row.Activations
	}
	return t
}

// calculateAcquisitionKPIs cobre os produtos de adquirência (pos, tap, link),
// onde ativação é o evento que importa: CAC e taxa de ativação completos.
func calculateAcquisitionKPIs(rows []*domain.PerformanceRow, product string) *domain.KPIs {
	t := sumRows(rows, product)

	kpis := baseKPIs(t)
	kpis.Product = product
	kpis.CostPerSignup = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(t.cost, float64(t.signups)))
	kpis.CAC = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(t.cost, float64(t.activations)))
	kpis.ActivationRate = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(t.activations), float64(t.signups)) * 100)

	return kpis
}

// calculateJimKPIs trata signups como instalações do app; não há funil de
// ativação rastreado para o produto
func calculateJimKPIs(rows []*domain.PerformanceRow) *domain.KPIs {
	t := sumRows(rows, domain.ProductJim)

	kpis := baseKPIs(t)
	kpis.Product = domain.ProductJim
	kpis.CostPerSignup = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(t.cost, float64(t.signups)))
	kpis.SignupRate = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(t.signups), float64(t.clicks)) * 100)

	return kpis
}

// calculateBankingKPIs mede contas ativadas sobre signups de conta
func calculateBankingKPIs(rows []*domain.PerformanceRow) *domain.KPIs {
	t := sumRows(rows, domain.ProductBanking)

	kpis := baseKPIs(t)
	kpis.Product = domain.ProductBanking
	kpis.CAC = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(t.cost, float64(t.activations)))
	kpis.ActivationRate = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(t.activations), float64(t.signups)) * 100)
	kpis.SignupRate = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(t.signups), float64(t.clicks)) * 100)

	return kpis
}

// calculateCombinedKPIs agrega todos os produtos do conjunto
func calculateCombinedKPIs(rows []*domain.PerformanceRow) *domain.KPIs {
	t := sumRows(rows, "")

	kpis := baseKPIs(t)
	kpis.Product = "combined"
	kpis.CostPerSignup = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(t.cost, float64(t.signups)))
	kpis.CAC = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(t.cost, float64(t.activations)))
	kpis.ActivationRate = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(t.activations), float64(t.signups)) * 100)
	kpis.SignupRate = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(t.signups), float64(t.clicks)) * 100)

	return kpis
}

func baseKPIs(t totals) *domain.KPIs {
	return &domain.KPIs{
		Spend:       utils.RoundWithTwoDecimalPlace(t.cost),
		Impressions: t.impressions,
		Clicks:      t.clicks,
		Signups:     t.signups,
		Activations: t.activations,
		CTR:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(t.clicks), float64(t.impressions)) * 100),
		CPC:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(t.cost, float64(t.clicks))),
		CPM:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(t.cost*1000, float64(t.impressions))),
	}
}
