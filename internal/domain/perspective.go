package domain

// Perspective é a lente de marca que restringe quais concorrentes aparecem
type Perspective string

const (
	PerspectiveDefault     Perspective = "default"
	PerspectiveCloudWalk   Perspective = "cloudwalk"
	PerspectiveInfinitePay Perspective = "infinitepay"
	PerspectiveJim         Perspective = "jim"
)

// PerspectiveCompetitors mapeia cada perspectiva para os nomes de
// concorrentes permitidos. Lista vazia significa "sem restrição".
var PerspectiveCompetitors = map[Perspective][]string{
	PerspectiveDefault:   {},
	PerspectiveCloudWalk: {},
	PerspectiveInfinitePay: {
		"PagBank",
		"Stone",
		"Ton",
		"Mercado Pago",
		"Cielo",
		"SumUp",
	},
	PerspectiveJim: {
		"Square",
		"PayPal",
		"Stripe",
		"Venmo",
		"SumUp",
	},
}

// ParsePerspective normaliza o parâmetro de query; valores desconhecidos
// caem na perspectiva default
func ParsePerspective(raw string) Perspective {
	p := Perspective(raw)
	if _, ok := PerspectiveCompetitors[p]; ok {
		return p
	}
	return PerspectiveDefault
}

// CompetitorNames retorna a allow-list de nomes da perspectiva
func (p Perspective) CompetitorNames() []string {
	return PerspectiveCompetitors[p]
}

// Unrestricted indica que a perspectiva não restringe concorrentes
func (p Perspective) Unrestricted() bool {
	return len(PerspectiveCompetitors[p]) == 0
}
