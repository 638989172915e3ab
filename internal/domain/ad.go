package domain

import (
	"encoding/json"
	"time"
)

// Tipos de criativo suportados
const (
	AssetTypeVideo = "video"
	AssetTypeImage = "image"
)

// Ad é um criativo de anúncio de concorrente, ingerido por um processo
// externo. Esta aplicação apenas lê.
type Ad struct {
	ID            string          `json:"id"`
	CompetitorID  string          `json:"competitor_id"`
	SourceURL     string          `json:"source_url"`
	AssetType     string          `json:"asset_type"`
	Product       string          `json:"product"`
	StartDate     *time.Time      `json:"start_date"`
	EndDate       *time.Time      `json:"end_date"`
	Tags          string          `json:"tags"`
	Description   string          `json:"description"`
	Transcription string          `json:"transcription"`
	Analysis      json.RawMessage `json:"analysis,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Competitor *Competitor `json:"competitor,omitempty"`
}

// Pagination descreve a página retornada pela listagem de anúncios
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// AdListResponse é o envelope da listagem de anúncios
type AdListResponse struct {
	Ads           []*Ad       `json:"ads"`
	Pagination    Pagination  `json:"pagination"`
	Perspective   Perspective `json:"perspective"`
	CompetitorIDs []string    `json:"competitorIds"`
}
