package wedding

import (
	"fmt"
	"math"
	"sort"
	"time"

	"suitsize/internal/sizing"

	"github.com/rs/zerolog/log"
)

// CoordinationWeights defines how the component scores blend into the overall
// group consistency score.
type CoordinationWeights struct {
	SizeConsistency  float64 `json:"size_consistency"`
	VisualHarmony    float64 `json:"visual_harmony"`
	RoleHierarchy    float64 `json:"role_hierarchy"`
	PracticalFitting float64 `json:"practical_fitting"`
}

func DefaultCoordinationWeights() CoordinationWeights {
	return CoordinationWeights{
		SizeConsistency:  0.4,
		VisualHarmony:    0.3,
		RoleHierarchy:    0.2,
		PracticalFitting: 0.1,
	}
}

// BulkSizeGroup describes one identical-size cluster within the party.
type BulkSizeGroup struct {
	Count                int      `json:"count"`
	Members              []string `json:"members"`
	BulkDiscountEligible bool     `json:"bulk_discount_eligible"`
	EstimatedSavings     int      `json:"estimated_savings"`
}

// PriorityEntry is one row of the recommended ordering sequence.
type PriorityEntry struct {
	Member   string `json:"member"`
	Size     string `json:"size"`
	Priority int    `json:"priority"`
	Reason   string `json:"reason"`
}

type BulkOrderOptimization struct {
	SizeGroups    map[string]BulkSizeGroup `json:"size_groups"`
	PriorityOrder []PriorityEntry          `json:"priority_order"`
}

// GroupConsistencyResult is derived entirely from the party's member list at
// analysis time; it is recomputed statelessly, never incrementally maintained.
type GroupConsistencyResult struct {
	OverallScore                float64                 `json:"overall_score"`
	SizeDistribution            map[string]int          `json:"size_distribution"`
	VisualHarmonyScore          float64                 `json:"visual_harmony_score"`
	FittingChallenges           []string                `json:"fitting_challenges"`
	CoordinationRecommendations []string                `json:"coordination_recommendations"`
	BulkOrderOptimization       BulkOrderOptimization   `json:"bulk_order_optimization"`
	TimelineConsiderations      []string                `json:"timeline_considerations"`
	MemberRecommendations       []*MemberRecommendation `json:"member_recommendations"`
}

// bulkSavingsPerSuit is the estimated saving per additional suit in an
// identical-size group, in dollars.
const bulkSavingsPerSuit = 25

// bulkEligibleCount is the group size at which a bulk discount applies.
const bulkEligibleCount = 3

type memberResult struct {
	member   PartyMember
	rec      *MemberRecommendation
	baseSize int
}

// Analyzer aggregates individual recommendations into a party-level
// consistency analysis.
type Analyzer struct {
	service *Service
	weights CoordinationWeights
	now     func() time.Time
}

func NewAnalyzer(service *Service) *Analyzer {
	return &Analyzer{
		service: service,
		weights: DefaultCoordinationWeights(),
		now:     time.Now,
	}
}

// AnalyzeGroup scores the party's current member list. Pure given the member
// snapshot; member order is the party's insertion order.
func (a *Analyzer) AnalyzeGroup(party *Party) (*GroupConsistencyResult, error) {
	if party == nil || len(party.Members) == 0 {
		return nil, &sizing.ValidationError{Field: "members", Reason: "party has no members"}
	}

	start := a.now()

	results := make([]memberResult, 0, len(party.Members))
	for _, member := range party.Members {
		rec, err := a.service.RecommendForMember(member, party.Event)
		if err != nil {
			return nil, err
		}
		base, err := sizing.BaseSizeOf(rec.Size)
		if err != nil {
			return nil, err
		}
		results = append(results, memberResult{member: member, rec: rec, baseSize: base})
	}

	consistency := sizeConsistency(results)
	harmony := visualHarmony(results, party.Event.Style)
	hierarchy := roleHierarchy(results)
	practical := practicalFitting(results)

	overall := consistency*a.weights.SizeConsistency +
		harmony*a.weights.VisualHarmony +
		hierarchy*a.weights.RoleHierarchy +
		practical*a.weights.PracticalFitting

	recs := make([]*MemberRecommendation, len(results))
	for i, r := range results {
		recs[i] = r.rec
	}

	result := &GroupConsistencyResult{
		OverallScore:                round3(overall),
		SizeDistribution:            sizeDistribution(results),
		VisualHarmonyScore:          round3(harmony),
		FittingChallenges:           fittingChallenges(results),
		CoordinationRecommendations: coordinationRecommendations(results, party.Event, a.now()),
		BulkOrderOptimization:       bulkOrder(results),
		TimelineConsiderations:      timelineConsiderations(party.Event, a.now()),
		MemberRecommendations:       recs,
	}

	log.Info().
		Int("members", len(results)).
		Float64("overall_score", result.OverallScore).
		Dur("elapsed", time.Since(start)).
		Msg("group consistency analysis completed")

	return result, nil
}

// sizeConsistency converts the sample variance of numeric base sizes into a
// 0–1 score. The denominator 16 makes a 4-size spread score zero.
func sizeConsistency(results []memberResult) float64 {
	if len(results) < 2 {
		return 1.0
	}

	var sum float64
	for _, r := range results {
		sum += float64(r.baseSize)
	}
	mean := sum / float64(len(results))

	var squared float64
	for _, r := range results {
		d := float64(r.baseSize) - mean
		squared += d * d
	}
	variance := squared / float64(len(results)-1)

	return math.Max(0, 1-variance/16)
}

func visualHarmony(results []memberResult, style Style) float64 {
	harmony := 0.8

	fits := make(map[sizing.FitPreference]struct{})
	for _, r := range results {
		fits[r.member.Fit] = struct{}{}
	}
	switch len(fits) {
	case 1:
		harmony += 0.1
	case 2:
		harmony += 0.05
	}

	if groom := findRole(results, RoleGroom); groom != nil {
		for _, r := range results {
			if r.member.Role == RoleGroom {
				continue
			}
			diff := abs(r.baseSize - groom.baseSize)
			if r.member.Role == RoleBestMan {
				if diff <= 1 {
					harmony += 0.1
				} else if diff <= 2 {
					harmony += 0.05
				}
			} else if diff <= 2 {
				harmony += 0.05
			}
		}
	}

	if style == StyleFormal || style == StyleBlackTie {
		harmony *= 0.95
	}

	return math.Min(1.0, harmony)
}

func roleHierarchy(results []memberResult) float64 {
	hierarchy := 0.9

	groom := findRole(results, RoleGroom)
	bestMan := findRole(results, RoleBestMan)

	if groom != nil && groom.rec.Confidence >= 0.8 {
		hierarchy += 0.05
	}
	if groom != nil && bestMan != nil && abs(groom.baseSize-bestMan.baseSize) <= 1 {
		hierarchy += 0.05
	}

	return math.Min(1.0, hierarchy)
}

func practicalFitting(results []memberResult) float64 {
	practical := 0.85

	lo, hi := sizeRange(results)
	switch spread := hi - lo; {
	case spread > 6:
		practical -= 0.15
	case spread > 4:
		practical -= 0.1
	case spread > 2:
		practical -= 0.05
	}

	lowConfidence := 0
	for _, r := range results {
		if r.rec.Confidence < 0.7 {
			lowConfidence++
		}
	}
	if float64(lowConfidence) > float64(len(results))*0.3 {
		practical -= 0.1
	}

	return math.Max(0, practical)
}

func coordinationRecommendations(results []memberResult, event EventDetails, now time.Time) []string {
	recommendations := []string{}

	lo, hi := sizeRange(results)
	if hi-lo > 4 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Consider adjusting sizes to reduce range from %d-%d for better group coordination", lo, hi))
	}

	modalSize, modalCount := modalBaseSize(results)
	recommendations = append(recommendations, fmt.Sprintf(
		"Consider having %d members in size %d for optimal bulk ordering", modalCount, modalSize))

	if groom := findRole(results, RoleGroom); groom != nil && groom.rec.Confidence < 0.8 {
		recommendations = append(recommendations,
			"Groom sizing has low confidence - consider professional fitting consultation")
	}

	switch event.Style {
	case StyleFormal:
		recommendations = append(recommendations,
			"For formal wedding: Ensure all members have similar fit preferences for cohesion")
	case StyleBlackTie:
		recommendations = append(recommendations,
			"For black tie: Consider slim fit for all male members for elegant appearance")
	}

	days := daysUntil(event.Date, now)
	if days < 30 {
		recommendations = append(recommendations,
			"Wedding approaching soon - prioritize early ordering and fitting appointments")
	} else if days > 180 {
		recommendations = append(recommendations,
			"Plenty of time for multiple fittings - consider seasonal weight changes")
	}

	return recommendations
}

func fittingChallenges(results []memberResult) []string {
	challenges := []string{}

	for _, r := range results {
		m := r.rec.Measurements
		if m.HeightCM < 160 || m.HeightCM > 200 {
			challenges = append(challenges, fmt.Sprintf(
				"%s: Extreme height (%.0fcm) may require special alterations", r.member.Name, m.HeightCM))
		}
		if m.WeightKG < 55 || m.WeightKG > 120 {
			challenges = append(challenges, fmt.Sprintf(
				"%s: Extreme weight (%.0fkg) may affect standard sizing", r.member.Name, m.WeightKG))
		}
	}

	median := medianBaseSize(results)
	for _, r := range results {
		if math.Abs(float64(r.baseSize)-median) > 3 {
			challenges = append(challenges, fmt.Sprintf(
				"%s: Size %d is significantly different from group average", r.member.Name, r.baseSize))
		}
	}

	return challenges
}

func bulkOrder(results []memberResult) BulkOrderOptimization {
	groups := make(map[string]BulkSizeGroup)
	groupOrder := []string{}

	for _, r := range results {
		g, ok := groups[r.rec.Size]
		if !ok {
			groupOrder = append(groupOrder, r.rec.Size)
		}
		g.Count++
		g.Members = append(g.Members, r.member.Name)
		g.BulkDiscountEligible = g.Count >= bulkEligibleCount
		g.EstimatedSavings = (g.Count - 1) * bulkSavingsPerSuit
		groups[r.rec.Size] = g
	}

	// Groom first, then size groups largest first (size ascending on ties).
	priority := []PriorityEntry{}
	if groom := findRole(results, RoleGroom); groom != nil {
		priority = append(priority, PriorityEntry{
			Member:   groom.member.Name,
			Size:     groom.rec.Size,
			Priority: 1,
			Reason:   "Central focus of wedding",
		})
	}

	sort.SliceStable(groupOrder, func(i, j int) bool {
		gi, gj := groups[groupOrder[i]], groups[groupOrder[j]]
		if gi.Count != gj.Count {
			return gi.Count > gj.Count
		}
		return groupOrder[i] < groupOrder[j]
	})

	for _, size := range groupOrder {
		for _, r := range results {
			if r.rec.Size != size || r.member.Role == RoleGroom {
				continue
			}
			priority = append(priority, PriorityEntry{
				Member:   r.member.Name,
				Size:     size,
				Priority: 2,
				Reason:   fmt.Sprintf("Group size: %d", groups[size].Count),
			})
		}
	}

	return BulkOrderOptimization{SizeGroups: groups, PriorityOrder: priority}
}

func timelineConsiderations(event EventDetails, now time.Time) []string {
	considerations := []string{}

	switch days := daysUntil(event.Date, now); {
	case days > 365:
		considerations = append(considerations, "Over a year away - consider price trends and seasonal sales")
	case days > 180:
		considerations = append(considerations, "6+ months - ideal time for initial sizing and ordering")
	case days > 90:
		considerations = append(considerations, "3+ months - time for first fitting and adjustments")
	case days > 30:
		considerations = append(considerations, "1+ month - final fitting and delivery coordination needed")
	default:
		considerations = append(considerations, "Less than 1 month - expedite orders and fittings recommended")
	}

	switch event.Season {
	case "summer":
		considerations = append(considerations, "Summer wedding - consider breathable fabrics and lighter colors")
	case "winter":
		considerations = append(considerations, "Winter wedding - consider wool fabrics and seasonal colors")
	}

	switch event.Style {
	case StyleFormal:
		considerations = append(considerations, "Formal wedding - allow extra time for formal alterations")
	case StyleBlackTie:
		considerations = append(considerations, "Black tie event - ensure all accessories match perfectly")
	}

	return considerations
}

func sizeDistribution(results []memberResult) map[string]int {
	distribution := make(map[string]int)
	for _, r := range results {
		distribution[r.rec.Size]++
	}
	return distribution
}

func findRole(results []memberResult, role Role) *memberResult {
	for i := range results {
		if results[i].member.Role == role {
			return &results[i]
		}
	}
	return nil
}

func sizeRange(results []memberResult) (lo, hi int) {
	lo, hi = results[0].baseSize, results[0].baseSize
	for _, r := range results[1:] {
		if r.baseSize < lo {
			lo = r.baseSize
		}
		if r.baseSize > hi {
			hi = r.baseSize
		}
	}
	return lo, hi
}

// modalBaseSize returns the most common numeric base size; ties resolve to
// the size seen first in member order.
func modalBaseSize(results []memberResult) (size, count int) {
	counts := make(map[int]int)
	order := []int{}
	for _, r := range results {
		if _, ok := counts[r.baseSize]; !ok {
			order = append(order, r.baseSize)
		}
		counts[r.baseSize]++
	}
	for _, s := range order {
		if counts[s] > count {
			size, count = s, counts[s]
		}
	}
	return size, count
}

func medianBaseSize(results []memberResult) float64 {
	sizes := make([]int, len(results))
	for i, r := range results {
		sizes[i] = r.baseSize
	}
	sort.Ints(sizes)

	n := len(sizes)
	if n%2 == 1 {
		return float64(sizes[n/2])
	}
	return float64(sizes[n/2-1]+sizes[n/2]) / 2
}

func daysUntil(date time.Time, now time.Time) int {
	return int(date.Sub(now).Hours() / 24)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
