package sizing

import (
	"errors"
	"testing"
)

// Stub advisors for pipeline tests.
type stubSimilarity struct {
	weight  float64
	records int
}

func (s stubSimilarity) Weight(heightCM, weightKG float64, fit FitPreference) float64 {
	return s.weight
}
func (s stubSimilarity) Records() int { return s.records }

type stubModel struct{ confidence float64 }

func (s stubModel) Confidence(heightCM, weightKG float64, fit FitPreference) float64 {
	return s.confidence
}

func TestRecommendPipeline(t *testing.T) {
	engine := NewEngine(nil, nil)

	rec, err := engine.Recommend(Input{Height: 180, Weight: 75, Fit: FitRegular, Unit: UnitMetric})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Size != "50R" {
		t.Errorf("expected size 50R, got %q", rec.Size)
	}
	if rec.BodyType != BodyAthletic {
		t.Errorf("expected Athletic, got %s", rec.BodyType)
	}
	if rec.Confidence < 0 || rec.Confidence > 1 {
		t.Errorf("confidence out of range: %.3f", rec.Confidence)
	}
	if rec.ConfidenceLevel != LevelFor(rec.Confidence) {
		t.Errorf("level %q inconsistent with confidence %.3f", rec.ConfidenceLevel, rec.Confidence)
	}
	if rec.Measurements.HeightCM != 180 || rec.Measurements.WeightKG != 75 {
		t.Errorf("unexpected rounded measurements: %+v", rec.Measurements)
	}
	if rec.Measurements.BMI != 23.1 {
		t.Errorf("expected BMI rounded to 23.1, got %.2f", rec.Measurements.BMI)
	}
	if rec.FitPreference != FitRegular {
		t.Errorf("expected regular fit, got %s", rec.FitPreference)
	}
	if rec.Rationale == "" {
		t.Errorf("rationale must not be empty")
	}
}

func TestRecommendDefaultsApply(t *testing.T) {
	engine := NewEngine(nil, nil)

	rec, err := engine.Recommend(Input{Height: 180, Weight: 75})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.FitPreference != FitRegular {
		t.Errorf("empty fit should default to regular, got %s", rec.FitPreference)
	}
	if rec.Measurements.Unit != UnitMetric {
		t.Errorf("empty unit should default to metric, got %s", rec.Measurements.Unit)
	}
}

func TestRecommendImperialInput(t *testing.T) {
	engine := NewEngine(nil, nil)

	rec, err := engine.Recommend(Input{Height: 70, Weight: 160, Fit: FitRegular, Unit: UnitImperial})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Measurements.HeightCM != 177.8 {
		t.Errorf("expected 177.8cm, got %.1f", rec.Measurements.HeightCM)
	}
	if rec.Measurements.WeightKG != 72.6 {
		t.Errorf("expected 72.6kg, got %.1f", rec.Measurements.WeightKG)
	}
}

func TestRecommendValidationErrors(t *testing.T) {
	engine := NewEngine(nil, nil)

	cases := []Input{
		{Height: 0, Weight: 75},
		{Height: 180, Weight: 75, Fit: "baggy"},
		{Height: 180, Weight: 75, Unit: "furlongs"},
		{Height: 300, Weight: 75},
	}

	for _, in := range cases {
		_, err := engine.Recommend(in)
		if err == nil {
			t.Errorf("input %+v should fail validation", in)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("input %+v: expected *ValidationError, got %T", in, err)
		}
	}
}

func TestRecommendAdvisorsFeedConfidence(t *testing.T) {
	strong := NewEngine(stubSimilarity{weight: 1.0, records: 10}, stubModel{confidence: 1.0})
	weak := NewEngine(stubSimilarity{weight: 0.2, records: 10}, stubModel{confidence: 0.3})

	in := Input{Height: 180, Weight: 75, Fit: FitRegular, Unit: UnitMetric}

	strongRec, err := strong.Recommend(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	weakRec, err := weak.Recommend(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if weakRec.Confidence >= strongRec.Confidence {
		t.Errorf("weak advisors should lower confidence: %.3f vs %.3f", weakRec.Confidence, strongRec.Confidence)
	}
	// Sizing itself is advisory-independent.
	if weakRec.Size != strongRec.Size {
		t.Errorf("advisors must not change the size: %q vs %q", weakRec.Size, strongRec.Size)
	}
	if weakRec.SimilarityWeight != 0.2 {
		t.Errorf("expected similarity weight surfaced as 0.2, got %.3f", weakRec.SimilarityWeight)
	}
	if weakRec.ModelConfidence != 0.3 {
		t.Errorf("expected model confidence surfaced as 0.3, got %.3f", weakRec.ModelConfidence)
	}
}

func TestStats(t *testing.T) {
	engine := NewEngine(stubSimilarity{records: 1234}, nil)

	stats := engine.Stats()
	if stats.SimilarityRecords != 1234 {
		t.Errorf("expected 1234 records, got %d", stats.SimilarityRecords)
	}
	if stats.Version != "2.0" {
		t.Errorf("expected version 2.0, got %q", stats.Version)
	}
	if len(stats.SupportedSizes) == 0 || len(stats.SupportedFits) != 3 {
		t.Errorf("unexpected stats shape: %+v", stats)
	}
}
