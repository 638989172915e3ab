package analytics

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Limiares ajustados empiricamente sobre amostras de anúncios; ver extractor_test.go
const (
	feeMaxPercent   = 30.0
	offerMaxPercent = 200.0
	contextWindow   = 40 // caracteres antes e depois do match
)

// percentPattern aceita decimais com vírgula ou ponto ("2,5%", "1.99 %")
var percentPattern = regexp.MustCompile(`(\d{1,3}(?:[.,]\d+)?)\s*%`)

// zeroPattern trata "zero" escrito por extenso como 0%
var zeroPattern = regexp.MustCompile(`(?i)\bzero\b`)

// feeBuckets mapeia o bucket de taxa para as variações (com e sem acento)
// encontradas nos textos dos anúncios
var feeBuckets = []struct {
	Name     string
	Keywords []string
}{
	{"credito", []string{"crédito", "credito"}},
	{"debito", []string{"débito", "debito"}},
	{"pix", []string{"pix"}},
	{"antecipacao", []string{"antecipação", "antecipacao", "antecipa"}},
	{"mensalidade", []string{"mensalidade", "mensal"}},
}

// yieldKeywords sinalizam ofertas de rendimento, não taxas
var yieldKeywords = []string{"cdi", "cashback", "rendimento", "rende", "yield"}

// FeeStats resume os percentuais de taxa encontrados em um bucket
type FeeStats struct {
	Bucket string    `json:"bucket"`
	Count  int       `json:"count"`
	Min    float64   `json:"min"`
	Median float64   `json:"median"`
	Max    float64   `json:"max"`
	Values []float64 `json:"values"`
}

// Offer é um percentual de rendimento/benefício anunciado (ex.: "120% do CDI")
type Offer struct {
	Value   float64 `json:"value"`
	Keyword string  `json:"keyword"`
}

// RateExtraction é o resultado da extração sobre um texto livre
type RateExtraction struct {
	Fees   map[string][]float64
	Offers []Offer
}

// ExtractRates varre o texto procurando percentuais e os classifica em taxas
// ou ofertas pelo contexto próximo. Heurística de melhor esforço: falsos
// positivos e negativos são aceitos.
func ExtractRates(text string) RateExtraction {
	result := RateExtraction{
		Fees: make(map[string][]float64),
	}

	if text == "" {
		return result
	}

	lower := strings.ToLower(text)

	for _, match := range percentPattern.FindAllStringSubmatchIndex(lower, -1) {
		raw := lower[match[2]:match[3]]
		value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			continue
		}

		window, offset := contextAround(lower, match[0], match[1])
		classifyPercent(&result, value, window, offset)
	}

	// "zero" por extenso só conta quando há palavra-chave de taxa por perto
	for _, match := range zeroPattern.FindAllStringIndex(lower, -1) {
		window, offset := contextAround(lower, match[0], match[1])
		if bucket, ok := feeBucketFor(window, offset); ok {
			result.Fees[bucket] = append(result.Fees[bucket], 0)
		}
	}

	return result
}

// FeeSummary consolida os valores por bucket em min/mediana/max
func (r RateExtraction) FeeSummary() []FeeStats {
	stats := make([]FeeStats, 0, len(r.Fees))

	for _, bucket := range feeBuckets {
		values := r.Fees[bucket.Name]
		if len(values) == 0 {
			continue
		}

		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)

		stats = append(stats, FeeStats{
			Bucket: bucket.Name,
			Count:  len(sorted),
			Min:    sorted[0],
			Median: median(sorted),
			Max:    sorted[len(sorted)-1],
			Values: sorted,
		})
	}

	return stats
}

func classifyPercent(result *RateExtraction, value float64, window string, offset int) {
	if value <= feeMaxPercent {
		if bucket, ok := feeBucketFor(window, offset); ok {
			result.Fees[bucket] = append(result.Fees[bucket], value)
		}
		return
	}

	if value > offerMaxPercent {
		return
	}

	for _, keyword := range yieldKeywords {
		if strings.Contains(window, keyword) {
			result.Offers = append(result.Offers, Offer{Value: value, Keyword: keyword})
			return
		}
	}
}

// feeBucketFor escolhe o bucket cuja keyword está mais próxima do match.
// Janelas com mais de uma keyword ("crédito 2,5% e débito zero") são
// desambiguadas pela distância, não pela ordem dos buckets.
func feeBucketFor(window string, offset int) (string, bool) {
	best := ""
	bestDistance := -1

	for _, bucket := range feeBuckets {
		for _, keyword := range bucket.Keywords {
			from := 0
			for {
				i := strings.Index(window[from:], keyword)
				if i < 0 {
					break
				}
				i += from

				distance := offset - (i + len(keyword))
				if distance < 0 {
					distance = i - offset
				}
				if distance < 0 {
					distance = 0
				}

				if bestDistance < 0 || distance < bestDistance {
					best = bucket.Name
					bestDistance = distance
				}

				from = i + len(keyword)
			}
		}
	}

	return best, bestDistance >= 0
}

// contextAround extrai a janela ao redor do match e a posição do match
// dentro dela
func contextAround(text string, start, end int) (string, int) {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}

	to := end + contextWindow
	if to > len(text) {
		to = len(text)
	}

	return text[from:to], start - from
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
