package performance

import (
	"time"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/infrastructure/repository"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/pkg/errors"
)

// ErrCustomRangeBounds é retornado quando range=custom vem sem as duas datas
var ErrCustomRangeBounds = errors.New("Custom range requires both from and to dates")

// perspectiveProducts restringe os produtos visíveis por perspectiva na base
// growth. Lista vazia significa todos os produtos.
var perspectiveProducts = map[domain.Perspective][]string{
	domain.PerspectiveDefault:   {},
	domain.PerspectiveCloudWalk: {},
	domain.PerspectiveInfinitePay: {
		domain.ProductPOS,
		domain.ProductTap,
		domain.ProductLink,
		domain.ProductBanking,
	},
	domain.PerspectiveJim: {domain.ProductJim},
}

// Insighter expõe as leituras de performance de marketing
type Insighter interface {
	// GetPerformance retorna as linhas cruas filtradas (máximo de 2000)
	GetPerformance(perspective domain.Perspective, filters domain.FilterState) ([]*domain.PerformanceRow, error)

	// GetKPIs agrega as linhas filtradas na fórmula do produto selecionado
	GetKPIs(perspective domain.Perspective, filters domain.FilterState, product string) (*domain.KPIs, error)
}

type Service struct {
	performanceRepo repository.PerformanceRepository
}

func NewService(performanceRepo repository.PerformanceRepository) Insighter {
	return &Service{
		performanceRepo: performanceRepo,
	}
}

func (s *Service) GetPerformance(perspective domain.Perspective, filters domain.FilterState) ([]*domain.PerformanceRow, error) {
	filters.Products = effectiveProducts(perspective, filters.Products)

	rows, err := s.performanceRepo.List(filters)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar linhas de performance")
	}

	return rows, nil
}

func (s *Service) GetKPIs(perspective domain.Perspective, filters domain.FilterState, product string) (*domain.KPIs, error) {
	rows, err := s.GetPerformance(perspective, filters)
	if err != nil {
		return nil, err
	}

	return CalculateKPIs(rows, product), nil
}

// ApplyRange converte o parâmetro range em limites de data nos filtros.
// range=custom exige from e to já preenchidos.
func ApplyRange(filters *domain.FilterState, rangeParam string, now time.Time) error {
	var days int

	switch rangeParam {
	case "", "all":
		return nil
	case "custom":
		if filters.DateFrom == nil || filters.DateTo == nil {
			return ErrCustomRangeBounds
		}
		return nil
	case "7d":
		days = 7
	case "30d":
		days = 30
	case "90d":
		days = 90
	default:
		return errors.Errorf("range inválido: %s", rangeParam)
	}

	from := now.AddDate(0, 0, -days)
	filters.DateFrom = &from
	filters.DateTo = &now

	return nil
}

func effectiveProducts(perspective domain.Perspective, filterProducts []string) []string {
	allowed := perspectiveProducts[perspective]
	if len(allowed) == 0 {
		return filterProducts
	}

	if len(filterProducts) == 0 {
		return allowed
	}

	allowedSet := make(map[string]bool, len(allowed))
	for _, product := range allowed {
		allowedSet[product] = true
	}

	intersection := make([]string, 0, len(filterProducts))
	for _, product := range filterProducts {
		if allowedSet[product] {
			intersection = append(intersection, product)
		}
	}

	if len(intersection) == 0 {
		return allowed
	}

	return intersection
}
