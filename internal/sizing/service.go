package sizing

import "math"

const engineVersion = "2.0"

// Engine is the deterministic size recommendation pipeline. It is a pure
// function of its inputs: no I/O, no shared mutable state, safe for
// concurrent use.
type Engine struct {
	scorer     *ConfidenceScorer
	similarity SimilarityAdvisor
	model      ModelAdvisor
}

// NewEngine wires the engine with its advisory seams. Pass nil for either
// advisor to use the neutral default.
func NewEngine(similarity SimilarityAdvisor, model ModelAdvisor) *Engine {
	if similarity == nil {
		similarity = NeutralSimilarityAdvisor()
	}
	if model == nil {
		model = NeutralModelAdvisor()
	}
	return &Engine{
		scorer:     NewConfidenceScorer(DefaultConfidenceWeights()),
		similarity: similarity,
		model:      model,
	}
}

// Recommend runs the full pipeline: normalize, classify, size, score,
// explain. Returns a ValidationError for bad input.
func (e *Engine) Recommend(in Input) (*Recommendation, error) {
	fit, err := ParseFitPreference(string(in.Fit))
	if err != nil {
		return nil, err
	}
	unit, err := ParseUnit(string(in.Unit))
	if err != nil {
		return nil, err
	}

	m, err := NormalizeMeasurements(in.Height, in.Weight, unit)
	if err != nil {
		return nil, err
	}

	bodyType := ClassifyBodyType(m.BMI, m.Ratio)
	base, suffix := CalculateBaseSize(m.Ratio, fit)
	size := FormatSize(base, suffix, m.HeightCM)
	pct := CalculatePercentiles(m)

	similarityWeight := e.similarity.Weight(m.HeightCM, m.WeightKG, fit)
	modelConfidence := e.model.Confidence(m.HeightCM, m.WeightKG, fit)

	confidence := e.scorer.Score(m, bodyType, pct, similarityWeight, modelConfidence)

	rounded := m
	rounded.HeightCM = round1(m.HeightCM)
	rounded.WeightKG = round1(m.WeightKG)
	rounded.BMI = round1(m.BMI)

	return &Recommendation{
		Size:             size,
		Confidence:       round3(confidence),
		ConfidenceLevel:  LevelFor(confidence),
		BodyType:         bodyType,
		Rationale:        BuildRationale(m, fit, size, bodyType, pct),
		Alterations:      BuildAlterations(m, fit, bodyType),
		Measurements:     rounded,
		Percentiles:      pct,
		ValidationNotes:  ValidationNotes(m, pct),
		SimilarityWeight: round3(similarityWeight),
		ModelConfidence:  round3(math.Min(1.0, modelConfidence)),
		FitPreference:    fit,
	}, nil
}

// Stats reports the engine configuration.
func (e *Engine) Stats() EngineStats {
	return EngineStats{
		SupportedSizes: []string{
			"38S", "40S", "42S", "44S", "46S",
			"38R", "40R", "42R", "44R", "46R", "48R", "50R",
		},
		SupportedFits:        []string{string(FitSlim), string(FitRegular), string(FitRelaxed)},
		ConfidenceComponents: []string{"anthropometric", "similarity", "model_prediction", "edge_case"},
		SimilarityRecords:    e.similarity.Records(),
		Version:              engineVersion,
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
