package sizing

import "math"

// ConfidenceWeights defines the contribution of each sub-score to the final
// confidence. The weights must sum to 1.0.
type ConfidenceWeights struct {
	Anthropometric float64 `json:"anthropometric"`
	Similarity     float64 `json:"similarity"`
	Model          float64 `json:"model_prediction"`
	EdgeCase       float64 `json:"edge_case"`
}

// DefaultConfidenceWeights is the canonical weight set used everywhere a
// confidence is produced.
func DefaultConfidenceWeights() ConfidenceWeights {
	return ConfidenceWeights{
		Anthropometric: 0.3,
		Similarity:     0.25,
		Model:          0.25,
		EdgeCase:       0.2,
	}
}

type ConfidenceScorer struct {
	weights ConfidenceWeights
}

func NewConfidenceScorer(w ConfidenceWeights) *ConfidenceScorer {
	return &ConfidenceScorer{weights: w}
}

// Score combines the four weighted sub-scores into a confidence in [0,1].
// similarityWeight is advisory input in [0,1.5]; malformed values degrade to
// the neutral 1.0 rather than erroring.
func (s *ConfidenceScorer) Score(m Measurements, bodyType BodyType, pct Percentiles, similarityWeight, modelConfidence float64) float64 {
	anthropometric := anthropometricConfidence(m, pct)

	if math.IsNaN(similarityWeight) || similarityWeight < 0 {
		similarityWeight = 1.0
	}
	similarity := math.Min(1.0, similarityWeight)

	if math.IsNaN(modelConfidence) || modelConfidence <= 0 {
		modelConfidence = 1.0
	}
	model := math.Min(1.0, modelConfidence)

	edge := edgeCaseConfidence(m, bodyType)

	confidence := s.weights.Anthropometric*anthropometric +
		s.weights.Similarity*similarity +
		s.weights.Model*model +
		s.weights.EdgeCase*edge

	return clamp(confidence, 0, 1)
}

// anthropometricConfidence averages height-percentile closeness to the median
// with BMI normalcy.
func anthropometricConfidence(m Measurements, pct Percentiles) float64 {
	heightConfidence := 1.0 - math.Abs(pct.Height-50)/50

	var bmiConfidence float64
	switch {
	case m.BMI >= 18.5 && m.BMI <= 25:
		bmiConfidence = 1.0
	case m.BMI >= 16 && m.BMI <= 30:
		bmiConfidence = 0.8
	default:
		bmiConfidence = 0.5
	}

	return (heightConfidence + bmiConfidence) / 2
}

func edgeCaseConfidence(m Measurements, bodyType BodyType) float64 {
	confidence := 0.8

	if m.HeightCM < 160 || m.HeightCM > 200 {
		confidence -= 0.2
	} else if m.HeightCM < 165 || m.HeightCM > 195 {
		confidence -= 0.1
	}

	if m.BMI < 18.5 || m.BMI > 30 {
		confidence -= 0.3
	} else if m.BMI < 20 || m.BMI > 28 {
		confidence -= 0.1
	}

	if bodyType == BodySlim || bodyType == BodyBroad {
		confidence -= 0.1
	}

	return math.Max(0.1, confidence)
}

// LevelFor maps a confidence to its human-readable level. This is the single
// shared mapping; no caller derives its own thresholds.
func LevelFor(confidence float64) string {
	switch {
	case confidence >= 0.85:
		return "Very High"
	case confidence >= 0.75:
		return "High"
	case confidence >= 0.65:
		return "Medium"
	case confidence >= 0.55:
		return "Low"
	default:
		return "Very Low"
	}
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
