package analytics

import (
	"sort"
	"strings"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/infrastructure/repository"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/pkg/utils"
	"github.com/pkg/errors"
)

const (
	// Teto de anúncios agregados por requisição
	adSampleCap = 2000

	topTagsLimit = 10
)

// CompetitorResolver resolve a allow-list de uma perspectiva para IDs
type CompetitorResolver interface {
	ResolveCompetitorIDs(perspective domain.Perspective) ([]string, error)
}

// WeeklyBucket conta anúncios por semana ISO (chave = segunda-feira)
type WeeklyBucket struct {
	WeekStart string `json:"week_start"`
	Count     int    `json:"count"`
}

// TagCount é uma tag rankeada por frequência
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Summary é o payload agregado do endpoint de analytics
type Summary struct {
	TotalAds     int            `json:"total_ads"`
	ByCompetitor map[string]int `json:"by_competitor"`
	ByAssetType  map[string]int `json:"by_asset_type"`
	Weekly       []WeeklyBucket `json:"weekly"`
	TopTags      []TagCount     `json:"top_tags"`
	Fees         []FeeStats     `json:"fees"`
	Offers       []Offer        `json:"offers"`
}

// Analyzer computa os agregados de analytics sobre os anúncios filtrados
type Analyzer interface {
	Analyze(perspective domain.Perspective, filters domain.FilterState) (*Summary, error)
}

type Service struct {
	adRepo   repository.AdRepository
	resolver CompetitorResolver
}

func NewService(adRepo repository.AdRepository, resolver CompetitorResolver) Analyzer {
	return &Service{
		adRepo:   adRepo,
		resolver: resolver,
	}
}

func (s *Service) Analyze(perspective domain.Perspective, filters domain.FilterState) (*Summary, error) {
	competitorIDs, err := s.resolver.ResolveCompetitorIDs(perspective)
	if err != nil {
		return nil, err
	}

	adsSample, err := s.adRepo.List(filters, competitorIDs, 1, adSampleCap)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar anúncios para agregação")
	}

	return Aggregate(adsSample), nil
}

// Aggregate computa os agregados em memória sobre o conjunto de anúncios
func Aggregate(adsSample []*domain.Ad) *Summary {
	summary := &Summary{
		TotalAds:     len(adsSample),
		ByCompetitor: make(map[string]int),
		ByAssetType:  make(map[string]int),
	}

	weekly := make(map[string]int)
	tagCounts := make(map[string]int)
	extraction := RateExtraction{Fees: make(map[string][]float64)}

	for _, ad := range adsSample {
		if ad.Competitor != nil {
			summary.ByCompetitor[ad.Competitor.Name]++
		}
		summary.ByAssetType[ad.AssetType]++

		if ad.StartDate != nil {
			week := utils.StartOfISOWeek(*ad.StartDate).Format("2006-01-02")
			weekly[week]++
		}

		countTags(tagCounts, ad.Tags)

		adExtraction := ExtractRates(strings.Join([]string{ad.Tags, ad.Description, ad.Transcription}, " "))
		for bucket, values := range adExtraction.Fees {
			extraction.Fees[bucket] = append(extraction.Fees[bucket], values...)
		}
		extraction.Offers = append(extraction.Offers, adExtraction.Offers...)
	}

	summary.Weekly = sortWeekly(weekly)
	summary.TopTags = rankTags(tagCounts)
	summary.Fees = extraction.FeeSummary()
	summary.Offers = extraction.Offers

	return summary
}

// tagStopwords evita que nomes de concorrentes dominem o ranking de tags
var tagStopwords = buildTagStopwords()

func buildTagStopwords() map[string]bool {
	stopwords := map[string]bool{
		"cloudwalk":   true,
		"infinitepay": true,
		"jim":         true,
	}

	for _, names := range domain.PerspectiveCompetitors {
		for _, name := range names {
			stopwords[strings.ToLower(name)] = true
		}
	}

	return stopwords
}

func countTags(counts map[string]int, rawTags string) {
	for _, tag := range strings.Split(rawTags, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || tagStopwords[tag] {
			continue
		}
		counts[tag]++
	}
}

func sortWeekly(weekly map[string]int) []WeeklyBucket {
	buckets := make([]WeeklyBucket, 0, len(weekly))
	for week, count := range weekly {
		buckets = append(buckets, WeeklyBucket{WeekStart: week, Count: count})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].WeekStart < buckets[j].WeekStart
	})

	return buckets
}

func rankTags(counts map[string]int) []TagCount {
	tags := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		tags = append(tags, TagCount{Tag: tag, Count: count})
	}

	// Desempate alfabético para manter o ranking estável
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})

	if len(tags) > topTagsLimit {
		tags = tags[:topTagsLimit]
	}

	return tags
}
