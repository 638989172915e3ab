package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/infrastructure/database/postgres"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
)

const (
	adsTable        = "ads a"
	adSelectColumns = `a.id, a.competitor_id, a.source_url, a.asset_type, a.product,
		a.start_date, a.end_date, a.tags, a.description, a.transcription,
		a.analysis, a.created_at, a.updated_at, c.id, c.name, c.home_url`
)

type AdRepository interface {
	List(filters domain.FilterState, competitorIDs []string, page, limit int) ([]*domain.Ad, error)
	Count(filters domain.FilterState, competitorIDs []string) (int, error)
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func (r *adRepository) List(filters domain.FilterState, competitorIDs []string, page, limit int) ([]*domain.Ad, error) {
	offset := uint64((page - 1) * limit)

	builder := squirrel.
		Select(adSelectColumns).
		From(adsTable).
		Join("competitors c ON c.id = a.competitor_id").
		OrderBy("a.start_date DESC NULLS LAST", "a.created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	builder = applyAdFilters(builder, filters, competitorIDs)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad := &domain.Ad{Competitor: &domain.Competitor{}}
		err := rows.Scan(
			&ad.ID,
			&ad.CompetitorID,
			&ad.SourceURL,
			&ad.AssetType,
			&ad.Product,
			&ad.StartDate,
			&ad.EndDate,
			&ad.Tags,
			&ad.Description,
			&ad.Transcription,
			&ad.Analysis,
			&ad.CreatedAt,
			&ad.UpdatedAt,
			&ad.Competitor.ID,
			&ad.Competitor.Name,
			&ad.Competitor.HomeURL,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

func (r *adRepository) Count(filters domain.FilterState, competitorIDs []string) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(adsTable).
		PlaceholderFormat(squirrel.Dollar)

	builder = applyAdFilters(builder, filters, competitorIDs)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar anúncios: %w", err)
	}

	return total, nil
}

// applyAdFilters aplica o predicado base da listagem e os filtros opcionais.
// Regras fixas: payload de análise não vazio, asset_type conhecido e ao menos
// um entre tags/descrição/transcrição preenchido.
func applyAdFilters(builder squirrel.SelectBuilder, filters domain.FilterState, competitorIDs []string) squirrel.SelectBuilder {
	builder = builder.
		Where("a.analysis IS NOT NULL AND a.analysis::text NOT IN ('', '{}', 'null')").
		Where(squirrel.Eq{"a.asset_type": []string{domain.AssetTypeVideo, domain.AssetTypeImage}}).
		Where("(COALESCE(a.tags, '') <> '' OR COALESCE(a.description, '') <> '' OR COALESCE(a.transcription, '') <> '')")

	if len(competitorIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"a.competitor_id": competitorIDs})
	}

	if len(filters.AssetTypes) > 0 {
		builder = builder.Where(squirrel.Eq{"a.asset_type": filters.AssetTypes})
	}

	if len(filters.Products) > 0 {
		builder = builder.Where(squirrel.Eq{"a.product": filters.Products})
	}

	if filters.Search != "" {
		pattern := fmt.Sprint("%", filters.Search, "%")
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"a.tags": pattern},
			squirrel.ILike{"a.description": pattern},
			squirrel.ILike{"a.transcription": pattern},
			squirrel.ILike{"a.product": pattern},
		})
	}

	if filters.DateFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"a.start_date": filters.DateFrom.Format("2006-01-02")})
	}

	if filters.DateTo != nil {
		builder = builder.Where(squirrel.LtOrEq{"a.start_date": filters.DateTo.Format("2006-01-02")})
	}

	return builder
}
