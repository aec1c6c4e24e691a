package wedding

import (
	"math"
	"strings"
	"testing"
	"time"

	"suitsize/internal/sizing"
)

// resultsFromSizes builds memberResult values directly so the scoring
// functions can be exercised against exact size lists.
func resultsFromSizes(sizes []string, confidences []float64) []memberResult {
	results := make([]memberResult, len(sizes))
	for i, s := range sizes {
		base, _ := sizing.BaseSizeOf(s)
		conf := 0.9
		if confidences != nil {
			conf = confidences[i]
		}
		results[i] = memberResult{
			member: PartyMember{Name: string(rune('A' + i)), Role: RoleGroomsman, Fit: sizing.FitRegular},
			rec: &MemberRecommendation{
				Recommendation: sizing.Recommendation{
					Size:         s,
					Confidence:   conf,
					Measurements: sizing.Measurements{HeightCM: 178, WeightKG: 75},
				},
			},
			baseSize: base,
		}
	}
	return results
}

func TestSizeConsistencySingleMember(t *testing.T) {
	results := resultsFromSizes([]string{"42R"}, nil)
	if got := sizeConsistency(results); got != 1.0 {
		t.Errorf("single member must score 1.0, got %.3f", got)
	}
}

func TestSizeConsistencyIdenticalSizes(t *testing.T) {
	results := resultsFromSizes([]string{"42R", "42R", "42R"}, nil)
	if got := sizeConsistency(results); got != 1.0 {
		t.Errorf("identical sizes must score 1.0, got %.3f", got)
	}
}

func TestSizeConsistencyUsesSampleVariance(t *testing.T) {
	// Sizes 42,42,44,46,50: mean 44.8, sample variance 11.2, score 0.3.
	results := resultsFromSizes([]string{"42R", "42R", "44R", "46R", "50R"}, nil)
	got := sizeConsistency(results)
	if math.Abs(got-0.3) > 1e-9 {
		t.Errorf("expected 0.3, got %.4f", got)
	}
}

func TestSizeConsistencyWideSpreadFloorsAtZero(t *testing.T) {
	results := resultsFromSizes([]string{"38S", "50R", "38S", "50R"}, nil)
	if got := sizeConsistency(results); got != 0 {
		t.Errorf("extreme spread should floor at 0, got %.3f", got)
	}
}

func TestVisualHarmonySingleMember(t *testing.T) {
	results := resultsFromSizes([]string{"42R"}, nil)
	got := visualHarmony(results, StyleModern)
	// One fit preference in the set earns the uniform bonus.
	if math.Abs(got-0.9) > 1e-9 {
		t.Errorf("expected 0.9, got %.3f", got)
	}
}

func TestVisualHarmonyFormalDampens(t *testing.T) {
	results := resultsFromSizes([]string{"42R", "42R"}, nil)
	plain := visualHarmony(results, StyleModern)
	formal := visualHarmony(results, StyleFormal)
	if formal >= plain {
		t.Errorf("formal styles dampen harmony: %.3f vs %.3f", formal, plain)
	}
}

func TestVisualHarmonyGroomProximityBonus(t *testing.T) {
	near := resultsFromSizes([]string{"44R", "44R"}, nil)
	near[0].member.Role = RoleGroom
	near[1].member.Role = RoleBestMan

	far := resultsFromSizes([]string{"38S", "50R"}, nil)
	far[0].member.Role = RoleGroom
	far[1].member.Role = RoleBestMan

	if visualHarmony(near, StyleModern) <= visualHarmony(far, StyleModern) {
		t.Errorf("best man close to the groom should score higher")
	}
}

func TestVisualHarmonyCapsAtOne(t *testing.T) {
	results := resultsFromSizes([]string{"44R", "44R", "44R", "44R", "44R"}, nil)
	results[0].member.Role = RoleGroom
	results[1].member.Role = RoleBestMan

	if got := visualHarmony(results, StyleModern); got > 1.0 {
		t.Errorf("harmony must cap at 1.0, got %.3f", got)
	}
}

func TestRoleHierarchyBonuses(t *testing.T) {
	results := resultsFromSizes([]string{"44R", "44R"}, []float64{0.9, 0.9})
	results[0].member.Role = RoleGroom
	results[1].member.Role = RoleBestMan

	// Confident groom and aligned best man earn both bonuses.
	if got := roleHierarchy(results); got != 1.0 {
		t.Errorf("expected 1.0, got %.3f", got)
	}

	noGroom := resultsFromSizes([]string{"44R", "44R"}, nil)
	if got := roleHierarchy(noGroom); math.Abs(got-0.9) > 1e-9 {
		t.Errorf("no groom should stay at the 0.9 base, got %.3f", got)
	}
}

func TestPracticalFittingSpreadPenalties(t *testing.T) {
	cases := []struct {
		name  string
		sizes []string
		want  float64
	}{
		{"tight group", []string{"42R", "44R"}, 0.85},
		{"moderate spread", []string{"42R", "46R"}, 0.80},
		{"wide spread", []string{"42R", "48R"}, 0.75},
		{"extreme spread", []string{"42R", "50R"}, 0.70},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := practicalFitting(resultsFromSizes(tc.sizes, nil))
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("got %.3f, want %.3f", got, tc.want)
			}
		})
	}
}

func TestPracticalFittingLowConfidencePenalty(t *testing.T) {
	confident := resultsFromSizes([]string{"42R", "42R", "42R"}, []float64{0.9, 0.9, 0.9})
	shaky := resultsFromSizes([]string{"42R", "42R", "42R"}, []float64{0.5, 0.5, 0.9})

	if practicalFitting(shaky) >= practicalFitting(confident) {
		t.Errorf("majority low confidence should be penalized")
	}
}

func TestSizeDistribution(t *testing.T) {
	results := resultsFromSizes([]string{"42R", "42R", "44R", "46R", "50R"}, nil)
	dist := sizeDistribution(results)

	want := map[string]int{"42R": 2, "44R": 1, "46R": 1, "50R": 1}
	if len(dist) != len(want) {
		t.Fatalf("got %v, want %v", dist, want)
	}
	for size, count := range want {
		if dist[size] != count {
			t.Errorf("size %s: got %d, want %d", size, dist[size], count)
		}
	}
}

func TestModalBaseSizeTieBreaksFirstSeen(t *testing.T) {
	results := resultsFromSizes([]string{"44R", "42R", "42R", "44R"}, nil)
	size, count := modalBaseSize(results)
	if size != 44 || count != 2 {
		t.Errorf("tie should resolve to first-seen size 44, got %d (count %d)", size, count)
	}
}

func TestMedianBaseSizeEvenCount(t *testing.T) {
	results := resultsFromSizes([]string{"42R", "44R", "46R", "50R"}, nil)
	if got := medianBaseSize(results); got != 45 {
		t.Errorf("expected 45, got %.1f", got)
	}
}

func TestBulkOrderGroupsAndPriority(t *testing.T) {
	results := resultsFromSizes([]string{"42R", "42R", "42R", "46R", "46R"}, nil)
	results[3].member.Role = RoleGroom
	results[3].member.Name = "Groom"

	opt := bulkOrder(results)

	g42 := opt.SizeGroups["42R"]
	if g42.Count != 3 || !g42.BulkDiscountEligible {
		t.Errorf("42R group of 3 should be bulk eligible: %+v", g42)
	}
	if g42.EstimatedSavings != 50 {
		t.Errorf("42R savings should be (3-1)*25 = 50, got %d", g42.EstimatedSavings)
	}

	g46 := opt.SizeGroups["46R"]
	if g46.Count != 2 || g46.BulkDiscountEligible {
		t.Errorf("46R group of 2 must not be bulk eligible: %+v", g46)
	}

	if len(opt.PriorityOrder) != 5 {
		t.Fatalf("expected 5 priority entries, got %d", len(opt.PriorityOrder))
	}
	first := opt.PriorityOrder[0]
	if first.Member != "Groom" || first.Priority != 1 || first.Reason != "Central focus of wedding" {
		t.Errorf("groom must lead the priority order: %+v", first)
	}
	// Largest group follows the groom.
	if opt.PriorityOrder[1].Size != "42R" {
		t.Errorf("largest size group should come next, got %s", opt.PriorityOrder[1].Size)
	}
}

func TestFittingChallenges(t *testing.T) {
	results := resultsFromSizes([]string{"42R", "42R", "50R"}, nil)
	results[2].member.Name = "Tall"
	results[2].rec.Measurements = sizing.Measurements{HeightCM: 205, WeightKG: 130}

	challenges := fittingChallenges(results)

	var height, weight, outlier bool
	for _, c := range challenges {
		if strings.Contains(c, "Extreme height (205cm)") {
			height = true
		}
		if strings.Contains(c, "Extreme weight (130kg)") {
			weight = true
		}
		if strings.Contains(c, "significantly different from group average") {
			outlier = true
		}
	}
	if !height || !weight || !outlier {
		t.Errorf("missing expected challenges in %v", challenges)
	}
}

func TestFittingChallengesEmptyForNominalGroup(t *testing.T) {
	results := resultsFromSizes([]string{"42R", "42R", "44R"}, nil)
	if got := fittingChallenges(results); len(got) != 0 {
		t.Errorf("nominal group should have no challenges, got %v", got)
	}
}

func TestCoordinationRecommendations(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	event := EventDetails{Style: StyleBlackTie, Date: now.AddDate(0, 0, 14)}

	results := resultsFromSizes([]string{"38S", "44R", "50R"}, []float64{0.5, 0.9, 0.9})
	results[0].member.Role = RoleGroom

	recs := coordinationRecommendations(results, event, now)

	joined := strings.Join(recs, "\n")
	for _, want := range []string{
		"Consider adjusting sizes to reduce range from 38-50",
		"for optimal bulk ordering",
		"Groom sizing has low confidence - consider professional fitting consultation",
		"For black tie: Consider slim fit for all male members for elegant appearance",
		"Wedding approaching soon - prioritize early ordering and fitting appointments",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing recommendation containing %q in %v", want, recs)
		}
	}
}

func TestTimelineConsiderations(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		date time.Time
		want string
	}{
		{"over a year", now.AddDate(0, 0, 400), "Over a year away - consider price trends and seasonal sales"},
		{"six months", now.AddDate(0, 0, 200), "6+ months - ideal time for initial sizing and ordering"},
		{"three months", now.AddDate(0, 0, 100), "3+ months - time for first fitting and adjustments"},
		{"one month", now.AddDate(0, 0, 45), "1+ month - final fitting and delivery coordination needed"},
		{"imminent", now.AddDate(0, 0, 10), "Less than 1 month - expedite orders and fittings recommended"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := timelineConsiderations(EventDetails{Date: tc.date}, now)
			if len(got) == 0 || got[0] != tc.want {
				t.Errorf("got %v, want first entry %q", got, tc.want)
			}
		})
	}

	summer := timelineConsiderations(EventDetails{Date: now.AddDate(0, 0, 100), Season: "summer", Style: StyleBlackTie}, now)
	joined := strings.Join(summer, "\n")
	if !strings.Contains(joined, "breathable fabrics") || !strings.Contains(joined, "accessories match perfectly") {
		t.Errorf("missing season/style considerations in %v", summer)
	}
}

func TestAnalyzeGroupEndToEnd(t *testing.T) {
	engine := sizing.NewEngine(nil, nil)
	analyzer := NewAnalyzer(NewService(engine, false))
	analyzer.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	party := NewParty(EventDetails{
		Style: StyleFormal,
		Date:  time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	})
	party.AddMember(PartyMember{Name: "Groom", Role: RoleGroom, Height: 180, Weight: 75, Fit: sizing.FitRegular, Unit: sizing.UnitMetric})
	party.AddMember(PartyMember{Name: "Best", Role: RoleBestMan, Height: 182, Weight: 80, Fit: sizing.FitRegular, Unit: sizing.UnitMetric})
	party.AddMember(PartyMember{Name: "Mate", Role: RoleGroomsman, Height: 175, Weight: 70, Fit: sizing.FitRegular, Unit: sizing.UnitMetric})

	result, err := analyzer.AnalyzeGroup(party)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OverallScore < 0 || result.OverallScore > 1 {
		t.Errorf("overall score out of range: %.3f", result.OverallScore)
	}
	if len(result.MemberRecommendations) != 3 {
		t.Errorf("expected 3 member recommendations, got %d", len(result.MemberRecommendations))
	}
	// Member order tracks party insertion order.
	if result.MemberRecommendations[0].MemberName != "Groom" {
		t.Errorf("first recommendation should be the groom, got %q", result.MemberRecommendations[0].MemberName)
	}
	if len(result.SizeDistribution) == 0 {
		t.Errorf("size distribution must not be empty")
	}
	if len(result.TimelineConsiderations) == 0 {
		t.Errorf("timeline considerations must not be empty")
	}
}

func TestAnalyzeGroupEmptyParty(t *testing.T) {
	engine := sizing.NewEngine(nil, nil)
	analyzer := NewAnalyzer(NewService(engine, false))

	if _, err := analyzer.AnalyzeGroup(nil); err == nil {
		t.Errorf("nil party should fail")
	}
	if _, err := analyzer.AnalyzeGroup(NewParty(EventDetails{Style: StyleFormal})); err == nil {
		t.Errorf("empty party should fail")
	}
}
