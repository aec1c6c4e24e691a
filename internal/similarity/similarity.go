// Package similarity provides a deterministic stand-in for the customer
// similarity subsystem: a fixed-seed synthetic customer set whose aggregate
// success rates weight the engine's confidence. It is advisory only; the
// engine works identically with the neutral default advisor.
package similarity

import (
	"math"
	"math/rand"
	"sort"

	"suitsize/internal/sizing"

	"github.com/rs/zerolog/log"
)

const (
	seed       = 42
	recordSize = 3371
	neighbors  = 5

	// height/weight differences are normalized against a 50cm/50kg spread.
	differenceSpan = 50.0
)

type customer struct {
	heightCM    float64
	weightKG    float64
	fit         sizing.FitPreference
	size        string
	successRate float64
}

// Advisor implements sizing.SimilarityAdvisor over the synthetic customer
// set. Construction is deterministic: the same seed always yields the same
// records and therefore the same weights.
type Advisor struct {
	customers []customer
}

func NewAdvisor() *Advisor {
	r := rand.New(rand.NewSource(seed))
	customers := make([]customer, 0, recordSize)

	for i := 0; i < recordSize; i++ {
		height := clamp(178+r.NormFloat64()*7.5, 150, 210)
		weight := clamp((height-150)*0.8+60+r.NormFloat64()*12, 45, 150)

		heightM := height / 100
		bmi := weight / (heightM * heightM)
		ratio := weight / heightM

		fit := pickFit(r, sizing.ClassifyBodyType(bmi, ratio))

		base, suffix := sizing.CalculateBaseSize(ratio, fit)
		size := sizing.FormatSize(base, suffix, height)

		customers = append(customers, customer{
			heightCM:    height,
			weightKG:    weight,
			fit:         fit,
			size:        size,
			successRate: successRate(r, height, bmi),
		})
	}

	log.Info().Int("records", len(customers)).Msg("synthetic customer database generated")
	return &Advisor{customers: customers}
}

// Weight returns the confidence multiplier in [0.8, 1.5] from the
// inverse-similarity-weighted success rate of the nearest customers.
func (a *Advisor) Weight(heightCM, weightKG float64, fit sizing.FitPreference) float64 {
	nearest := a.nearest(heightCM, weightKG, fit, neighbors)
	if len(nearest) == 0 {
		return 1.0
	}

	var totalWeight, weightedSuccess float64
	for _, n := range nearest {
		w := 1 / (1 + n.score)
		totalWeight += w
		weightedSuccess += w * n.customer.successRate
	}
	if totalWeight == 0 {
		return 1.0
	}

	avgSuccess := weightedSuccess / totalWeight
	return clamp(1.0+(avgSuccess-0.85)*2, 0.8, 1.5)
}

// Records reports the synthetic database size.
func (a *Advisor) Records() int { return len(a.customers) }

type match struct {
	customer customer
	score    float64
}

// nearest ranks customers by a composite distance: 0.4 height + 0.4 weight
// (each normalized) + 0.2 fit mismatch. Lower is more similar.
func (a *Advisor) nearest(heightCM, weightKG float64, fit sizing.FitPreference, limit int) []match {
	matches := make([]match, 0, len(a.customers))
	for _, cust := range a.customers {
		fitPenalty := 1.0
		if cust.fit == fit {
			fitPenalty = 0
		}
		score := 0.4*math.Abs(cust.heightCM-heightCM)/differenceSpan +
			0.4*math.Abs(cust.weightKG-weightKG)/differenceSpan +
			0.2*fitPenalty
		matches = append(matches, match{customer: cust, score: score})
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].score < matches[j].score })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func pickFit(r *rand.Rand, bodyType sizing.BodyType) sizing.FitPreference {
	roll := r.Float64()
	switch bodyType {
	case sizing.BodySlim:
		if roll < 0.7 {
			return sizing.FitSlim
		}
		return sizing.FitRegular
	case sizing.BodyBroad:
		if roll < 0.6 {
			return sizing.FitRelaxed
		}
		return sizing.FitRegular
	case sizing.BodyAthletic:
		if roll < 0.5 {
			return sizing.FitSlim
		}
		return sizing.FitRegular
	case sizing.BodySlender:
		if roll < 0.6 {
			return sizing.FitSlim
		}
		return sizing.FitRegular
	default:
		if roll < 0.3 {
			return sizing.FitSlim
		}
		if roll < 0.8 {
			return sizing.FitRegular
		}
		return sizing.FitRelaxed
	}
}

func successRate(r *rand.Rand, heightCM, bmi float64) float64 {
	base := 0.85
	if bmi >= 22 && bmi <= 25 && heightCM >= 170 && heightCM <= 185 {
		base = 0.92
	} else if bmi < 18.5 || bmi > 30 || heightCM < 160 || heightCM > 200 {
		base = 0.65
	}
	return clamp(base+r.NormFloat64()*0.1, 0.3, 0.99)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
