package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRates(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		validate func(t *testing.T, result RateExtraction)
	}{
		{
			name: "Percentual com vírgula e zero por extenso - deve classificar nos buckets corretos",
			text: "Maquininha com crédito 2,5% e débito zero",
			validate: func(t *testing.T, result RateExtraction) {
				assert.Equal(t, []float64{2.5}, result.Fees["credito"])
				assert.Equal(t, []float64{0}, result.Fees["debito"])
				assert.Empty(t, result.Offers)
			},
		},
		{
			name: "Percentual com ponto decimal - deve aceitar o formato",
			text: "taxa de 1.99% no crédito à vista",
			validate: func(t *testing.T, result RateExtraction) {
				assert.Equal(t, []float64{1.99}, result.Fees["credito"])
			},
		},
		{
			name: "Palavra com acento - deve cair no mesmo bucket da sem acento",
			text: "Débito 1,5% nas suas vendas",
			validate: func(t *testing.T, result RateExtraction) {
				assert.Equal(t, []float64{1.5}, result.Fees["debito"])
			},
		},
		{
			name: "Antecipação - deve cair no bucket antecipacao",
			text: "Taxa de antecipação de 3% no plano",
			validate: func(t *testing.T, result RateExtraction) {
				assert.Equal(t, []float64{3}, result.Fees["antecipacao"])
			},
		},
		{
			name: "Percentual acima de 30 perto de keyword de rendimento - vira oferta",
			text: "Seu dinheiro rende 120% do CDI todo dia",
			validate: func(t *testing.T, result RateExtraction) {
				assert.Empty(t, result.Fees)
				assert.Len(t, result.Offers, 1)
				assert.Equal(t, 120.0, result.Offers[0].Value)
				assert.Equal(t, "cdi", result.Offers[0].Keyword)
			},
		},
		{
			name: "Percentual acima de 200 - deve ser descartado mesmo com keyword",
			text: "ganhe 500% de cashback",
			validate: func(t *testing.T, result RateExtraction) {
				assert.Empty(t, result.Fees)
				assert.Empty(t, result.Offers)
			},
		},
		{
			name: "Percentual entre 30 e 200 sem keyword de rendimento - deve ser ignorado",
			text: "desconto de 50% na primeira compra",
			validate: func(t *testing.T, result RateExtraction) {
				assert.Empty(t, result.Fees)
				assert.Empty(t, result.Offers)
			},
		},
		{
			name: "Percentual baixo sem keyword de taxa por perto - deve ser ignorado",
			text: "apenas 5% dos lojistas conhecem esse recurso",
			validate: func(t *testing.T, result RateExtraction) {
				assert.Empty(t, result.Fees)
			},
		},
		{
			name: "Zero por extenso sem keyword de taxa - não deve contar",
			text: "comece do zero hoje mesmo",
			validate: func(t *testing.T, result RateExtraction) {
				assert.Empty(t, result.Fees)
			},
		},
		{
			name: "Keyword fora da janela de contexto - não deve associar",
			text: "crédito para o seu negócio crescer sem burocracia e sem complicação nenhuma, com atendimento humano e suporte completo, pagando só 2%",
			validate: func(t *testing.T, result RateExtraction) {
				assert.Empty(t, result.Fees["credito"])
			},
		},
		{
			name: "Texto vazio - retorna extração vazia",
			text: "",
			validate: func(t *testing.T, result RateExtraction) {
				assert.Empty(t, result.Fees)
				assert.Empty(t, result.Offers)
			},
		},
		{
			name: "Múltiplos percentuais no mesmo bucket - acumula todos",
			text: "crédito 2,5% à vista ou crédito 3,9% parcelado",
			validate: func(t *testing.T, result RateExtraction) {
				assert.Equal(t, []float64{2.5, 3.9}, result.Fees["credito"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ExtractRates(tt.text))
		})
	}
}

func TestRateExtraction_FeeSummary(t *testing.T) {
	tests := []struct {
		name     string
		fees     map[string][]float64
		validate func(t *testing.T, stats []FeeStats)
	}{
		{
			name: "Número ímpar de valores - mediana é o valor central",
			fees: map[string][]float64{
				"credito": {3.9, 2.5, 1.99},
			},
			validate: func(t *testing.T, stats []FeeStats) {
				assert.Len(t, stats, 1)
				assert.Equal(t, "credito", stats[0].Bucket)
				assert.Equal(t, 3, stats[0].Count)
				assert.Equal(t, 1.99, stats[0].Min)
				assert.Equal(t, 2.5, stats[0].Median)
				assert.Equal(t, 3.9, stats[0].Max)
			},
		},
		{
			name: "Número par de valores - mediana é a média dos centrais",
			fees: map[string][]float64{
				"pix": {1, 2, 3, 4},
			},
			validate: func(t *testing.T, stats []FeeStats) {
				assert.Len(t, stats, 1)
				assert.Equal(t, 2.5, stats[0].Median)
			},
		},
		{
			name: "Buckets seguem a ordem canônica independente da inserção",
			fees: map[string][]float64{
				"pix":     {0},
				"credito": {2.5},
				"debito":  {1.5},
			},
			validate: func(t *testing.T, stats []FeeStats) {
				assert.Len(t, stats, 3)
				assert.Equal(t, "credito", stats[0].Bucket)
				assert.Equal(t, "debito", stats[1].Bucket)
				assert.Equal(t, "pix", stats[2].Bucket)
			},
		},
		{
			name: "Bucket sem valores - é omitido do resumo",
			fees: map[string][]float64{},
			validate: func(t *testing.T, stats []FeeStats) {
				assert.Empty(t, stats)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extraction := RateExtraction{Fees: tt.fees}
			tt.validate(t, extraction.FeeSummary())
		})
	}
}
