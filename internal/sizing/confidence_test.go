package sizing

import (
	"math"
	"testing"
)

func TestLevelForBoundaries(t *testing.T) {
	cases := []struct {
		confidence float64
		want       string
	}{
		{0.95, "Very High"},
		{0.85, "Very High"},
		{0.8499, "High"},
		{0.75, "High"},
		{0.7499, "Medium"},
		{0.65, "Medium"},
		{0.6499, "Low"},
		{0.55, "Low"},
		{0.5499, "Very Low"},
		{0.0, "Very Low"},
	}

	for _, tc := range cases {
		if got := LevelFor(tc.confidence); got != tc.want {
			t.Errorf("LevelFor(%.4f) = %q, want %q", tc.confidence, got, tc.want)
		}
	}
}

func TestScoreStaysInRange(t *testing.T) {
	scorer := NewConfidenceScorer(DefaultConfidenceWeights())

	m, _ := NormalizeMeasurements(178, 75, UnitMetric)
	pct := CalculatePercentiles(m)

	for _, w := range []float64{0, 0.5, 1.0, 1.5, 10} {
		got := scorer.Score(m, BodyRegular, pct, w, 1.0)
		if got < 0 || got > 1 {
			t.Errorf("similarity weight %.1f produced out-of-range confidence %.3f", w, got)
		}
	}
}

func TestScoreMalformedAdvisoryInputsAreNeutral(t *testing.T) {
	scorer := NewConfidenceScorer(DefaultConfidenceWeights())

	m, _ := NormalizeMeasurements(178, 75, UnitMetric)
	pct := CalculatePercentiles(m)

	neutral := scorer.Score(m, BodyRegular, pct, 1.0, 1.0)

	if got := scorer.Score(m, BodyRegular, pct, math.NaN(), 1.0); got != neutral {
		t.Errorf("NaN similarity weight should degrade to neutral: %.3f vs %.3f", got, neutral)
	}
	if got := scorer.Score(m, BodyRegular, pct, -1, 1.0); got != neutral {
		t.Errorf("negative similarity weight should degrade to neutral: %.3f vs %.3f", got, neutral)
	}
	if got := scorer.Score(m, BodyRegular, pct, 1.0, 0); got != neutral {
		t.Errorf("zero model confidence should degrade to neutral: %.3f vs %.3f", got, neutral)
	}
	if got := scorer.Score(m, BodyRegular, pct, 1.0, math.NaN()); got != neutral {
		t.Errorf("NaN model confidence should degrade to neutral: %.3f vs %.3f", got, neutral)
	}
}

func TestScoreSimilarityAboveOneCapped(t *testing.T) {
	scorer := NewConfidenceScorer(DefaultConfidenceWeights())

	m, _ := NormalizeMeasurements(178, 75, UnitMetric)
	pct := CalculatePercentiles(m)

	atOne := scorer.Score(m, BodyRegular, pct, 1.0, 1.0)
	above := scorer.Score(m, BodyRegular, pct, 1.5, 1.0)
	if above != atOne {
		t.Errorf("similarity contribution must cap at 1.0: %.3f vs %.3f", above, atOne)
	}
}

func TestEdgeCaseConfidenceFloor(t *testing.T) {
	// Extreme stature plus extreme BMI plus a penalized body type stacks the
	// deductions past zero; the floor holds at 0.1.
	m := Measurements{HeightCM: 150, WeightKG: 42, BMI: 17.0}
	if got := edgeCaseConfidence(m, BodySlim); got != 0.1 {
		t.Errorf("expected floor 0.1, got %.2f", got)
	}
}

func TestEdgeCaseConfidenceBands(t *testing.T) {
	cases := []struct {
		name     string
		m        Measurements
		bodyType BodyType
		want     float64
	}{
		{"nominal", Measurements{HeightCM: 178, BMI: 23}, BodyRegular, 0.8},
		{"mildly short", Measurements{HeightCM: 162, BMI: 23}, BodyRegular, 0.7},
		{"very tall", Measurements{HeightCM: 205, BMI: 23}, BodyRegular, 0.6},
		{"borderline BMI", Measurements{HeightCM: 178, BMI: 29}, BodyRegular, 0.7},
		{"extreme BMI", Measurements{HeightCM: 178, BMI: 32}, BodyBroad, 0.4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := edgeCaseConfidence(tc.m, tc.bodyType)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("got %.2f, want %.2f", got, tc.want)
			}
		})
	}
}

func TestDefaultConfidenceWeightsSumToOne(t *testing.T) {
	w := DefaultConfidenceWeights()
	sum := w.Anthropometric + w.Similarity + w.Model + w.EdgeCase
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights sum to %.3f, want 1.0", sum)
	}
}
