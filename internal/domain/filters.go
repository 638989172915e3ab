package domain

import (
	"net/url"
	"strings"
	"time"
)

// FilterState reúne os filtros compartilhados entre listagem de anúncios e
// analytics. Ele é serializável para query string e o parse da query string
// reconstrói um estado equivalente.
type FilterState struct {
	Search        string
	CompetitorIDs []string
	AssetTypes    []string
	Products      []string
	Platforms     []string
	Tags          []string
	DateFrom      *time.Time
	DateTo        *time.Time
}

const filterDateLayout = "2006-01-02"

// ParseFilterState reconstrói o FilterState a partir dos parâmetros de query
func ParseFilterState(query url.Values) (FilterState, error) {
	state := FilterState{
		Search:        strings.TrimSpace(query.Get("search")),
		CompetitorIDs: splitList(query.Get("competitors")),
		AssetTypes:    splitList(query.Get("assetTypes")),
		Products:      splitList(query.Get("products")),
		Platforms:     splitList(query.Get("platforms")),
		Tags:          splitList(query.Get("tags")),
	}

	if raw := query.Get("dateFrom"); raw != "" {
		from, err := time.Parse(filterDateLayout, raw)
		if err != nil {
			return state, err
		}
		state.DateFrom = &from
	}

	if raw := query.Get("dateTo"); raw != "" {
		to, err := time.Parse(filterDateLayout, raw)
		if err != nil {
			return state, err
		}
		state.DateTo = &to
	}

	return state, nil
}

// Encode serializa o FilterState para query string; campos vazios são omitidos
func (f FilterState) Encode() url.Values {
	query := url.Values{}

	if f.Search != "" {
		query.Set("search", f.Search)
	}
	setList(query, "competitors", f.CompetitorIDs)
	setList(query, "assetTypes", f.AssetTypes)
	setList(query, "products", f.Products)
	setList(query, "platforms", f.Platforms)
	setList(query, "tags", f.Tags)

	if f.DateFrom != nil {
		query.Set("dateFrom", f.DateFrom.Format(filterDateLayout))
	}
	if f.DateTo != nil {
		query.Set("dateTo", f.DateTo.Format(filterDateLayout))
	}

	return query
}

// IsEmpty indica se nenhum filtro foi aplicado
func (f FilterState) IsEmpty() bool {
	return f.Search == "" &&
		len(f.CompetitorIDs) == 0 &&
		len(f.AssetTypes) == 0 &&
		len(f.Products) == 0 &&
		len(f.Platforms) == 0 &&
		len(f.Tags) == 0 &&
		f.DateFrom == nil &&
		f.DateTo == nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	if len(values) == 0 {
		return nil
	}
	return values
}

func setList(query url.Values, key string, values []string) {
	if len(values) > 0 {
		query.Set(key, strings.Join(values, ","))
	}
}
