package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/infrastructure/database/postgres"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
)

const (
	performanceTable = "marketing_performance mp"

	// Teto de linhas trazidas para agregação em memória
	performanceRowCap = 2000
)

type PerformanceRepository interface {
	List(filters domain.FilterState) ([]*domain.PerformanceRow, error)
}

type performanceRepository struct {
	conn *postgres.Connection
}

// NewPerformanceRepository lê da base growth, separada da base principal
func NewPerformanceRepository(conn *postgres.Connection) PerformanceRepository {
	return &performanceRepository{
		conn: conn,
	}
}

func (r *performanceRepository) List(filters domain.FilterState) ([]*domain.PerformanceRow, error) {
	builder := squirrel.
		Select("mp.date, mp.platform, mp.product, mp.cost, mp.impressions, mp.clicks, mp.signups, mp.activations").
		From(performanceTable).
		OrderBy("mp.date DESC").
		Limit(performanceRowCap).
		PlaceholderFormat(squirrel.Dollar)

	if len(filters.Products) > 0 {
		builder = builder.Where(squirrel.Eq{"mp.product": filters.Products})
	}

	if len(filters.Platforms) > 0 {
		builder = builder.Where(squirrel.Eq{"mp.platform": filters.Platforms})
	}

	if filters.Search != "" {
		pattern := fmt.Sprint("%", filters.Search, "%")
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"mp.product": pattern},
			squirrel.ILike{"mp.platform": pattern},
		})
	}

	if filters.DateFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"mp.date": filters.DateFrom.Format("2006-01-02")})
	}

	if filters.DateTo != nil {
		builder = builder.Where(squirrel.LtOrEq{"mp.date": filters.DateTo.Format("2006-01-02")})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.PerformanceRow, 0)
	for rows.Next() {
		entry := &domain.PerformanceRow{}
		err := rows.Scan(
			&entry.Date,
			&entry.Platform,
			&entry.Product,
			&entry.Cost,
			&entry.Impressions,
			&entry.Clicks,
			&entry.Signups,
			&entry.Activations,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de performance: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
