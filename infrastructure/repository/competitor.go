package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/infrastructure/database/postgres"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
)

const competitorsTable = "competitors c"

type CompetitorRepository interface {
	List() ([]*domain.Competitor, error)
	IDsByNames(names []string) ([]string, error)
}

type competitorRepository struct {
	conn *postgres.Connection
}

func NewCompetitorRepository(conn *postgres.Connection) CompetitorRepository {
	return &competitorRepository{
		conn: conn,
	}
}

func (r *competitorRepository) List() ([]*domain.Competitor, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.home_url, c.created_at").
		From(competitorsTable).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	competitors := make([]*domain.Competitor, 0)
	for rows.Next() {
		competitor := &domain.Competitor{}
		err := rows.Scan(&competitor.ID, &competitor.Name, &competitor.HomeURL, &competitor.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear concorrente: %w", err)
		}
		competitors = append(competitors, competitor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return competitors, nil
}

// IDsByNames resolve nomes da allow-list de uma perspectiva para IDs
func (r *competitorRepository) IDsByNames(names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	query, args, err := squirrel.
		Select("c.id").
		From(competitorsTable).
		Where(squirrel.Eq{"c.name": names}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0, len(names))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear id de concorrente: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}
