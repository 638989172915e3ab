package ads

import (
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/infrastructure/repository"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/pkg/errors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 24
)

// AdLister expõe a listagem de anúncios e a resolução de perspectivas
type AdLister interface {
	// ListAds retorna uma página de anúncios respeitando a perspectiva e os filtros
	ListAds(perspective domain.Perspective, filters domain.FilterState, page, limit int) (*domain.AdListResponse, error)

	// ListCompetitors retorna todos os concorrentes cadastrados
	ListCompetitors() ([]*domain.Competitor, error)

	// ResolveCompetitorIDs resolve a allow-list da perspectiva para IDs.
	// Retorno nil significa "sem restrição".
	ResolveCompetitorIDs(perspective domain.Perspective) ([]string, error)
}

type Service struct {
	adRepo         repository.AdRepository
	competitorRepo repository.CompetitorRepository
}

func NewService(adRepo repository.AdRepository, competitorRepo repository.CompetitorRepository) AdLister {
	return &Service{
		adRepo:         adRepo,
		competitorRepo: competitorRepo,
	}
}

func (s *Service) ListAds(perspective domain.Perspective, filters domain.FilterState, page, limit int) (*domain.AdListResponse, error) {
	page, limit = normalizePagination(page, limit)

	perspectiveIDs, err := s.ResolveCompetitorIDs(perspective)
	if err != nil {
		return nil, err
	}

	competitorIDs := effectiveCompetitorIDs(perspectiveIDs, filters.CompetitorIDs)

	total, err := s.adRepo.Count(filters, competitorIDs)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar anúncios")
	}

	adsPage, err := s.adRepo.List(filters, competitorIDs, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar anúncios")
	}

	return &domain.AdListResponse{
		Ads: adsPage,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
		Perspective:   perspective,
		CompetitorIDs: perspectiveIDs,
	}, nil
}

func (s *Service) ListCompetitors() ([]*domain.Competitor, error) {
	competitors, err := s.competitorRepo.List()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar concorrentes")
	}

	return competitors, nil
}

func (s *Service) ResolveCompetitorIDs(perspective domain.Perspective) ([]string, error) {
	if perspective.Unrestricted() {
		return nil, nil
	}

	ids, err := s.competitorRepo.IDsByNames(perspective.CompetitorNames())
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao resolver concorrentes da perspectiva %s", perspective)
	}

	return ids, nil
}

// normalizePagination aplica os defaults quando page/limit são inválidos
func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// effectiveCompetitorIDs combina a restrição da perspectiva com o filtro
// explícito de concorrentes. Com perspectiva restrita, o filtro explícito é
// interseccionado com a allow-list para impedir vazamento entre lentes.
func effectiveCompetitorIDs(perspectiveIDs, filterIDs []string) []string {
	if perspectiveIDs == nil {
		return filterIDs
	}

	if len(filterIDs) == 0 {
		return perspectiveIDs
	}

	allowed := make(map[string]bool, len(perspectiveIDs))
	for _, id := range perspectiveIDs {
		allowed[id] = true
	}

	intersection := make([]string, 0, len(filterIDs))
	for _, id := range filterIDs {
		if allowed[id] {
			intersection = append(intersection, id)
		}
	}

	if len(intersection) == 0 {
		// Filtro fora da lente: mantém a restrição da perspectiva com um
		// conjunto impossível para retornar página vazia
		return []string{"00000000-0000-0000-0000-000000000000"}
	}

	return intersection
}
