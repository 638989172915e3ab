package domain

import "time"

// Plataformas de mídia presentes na tabela de métricas
const (
	PlatformMeta   = "META"
	PlatformGoogle = "GOOGLE"
	PlatformTikTok = "TIKTOK"
)

// Produtos rastreados na tabela de métricas de marketing
const (
	ProductPOS     = "pos"
	ProductTap     = "tap"
	ProductLink    = "link"
	ProductJim     = "jim"
	ProductBanking = "banking"
)

// PerformanceRow é uma linha desnormalizada da tabela de métricas de
// marketing do projeto growth
type PerformanceRow struct {
	Date        time.Time `json:"date"`
	Platform    string    `json:"platform"`
	Product     string    `json:"product"`
	Cost        float64   `json:"cost"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Signups     int64     `json:"signups"`
	Activations int64     `json:"activations"`
}

// KPIs agrega as métricas derivadas de um conjunto de linhas de performance.
// Campos sem sentido para um produto ficam zerados.
type KPIs struct {
	Product        string  `json:"product"`
	Spend          float64 `json:"spend"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Signups        int64   `json:"signups"`
	Activations    int64   `json:"activations"`
	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	CPM            float64 `json:"cpm"`
	CostPerSignup  float64 `json:"cost_per_signup"`
	CAC            float64 `json:"cac"`
	ActivationRate float64 `json:"activation_rate"`
	SignupRate     float64 `json:"signup_rate"`
}
