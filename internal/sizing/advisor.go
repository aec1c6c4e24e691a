package sizing

// SimilarityAdvisor supplies an advisory confidence multiplier in [0.8, 1.5]
// derived from customers with similar measurements. The engine produces a
// valid confidence without one; this is the seam a learned system could plug
// into later.
type SimilarityAdvisor interface {
	Weight(heightCM, weightKG float64, fit FitPreference) float64
	Records() int
}

// ModelAdvisor supplies the model-quality confidence component. The
// deterministic ladder calculator reports full confidence; a future learned
// predictor can report its own without changing the scoring formula.
type ModelAdvisor interface {
	Confidence(heightCM, weightKG float64, fit FitPreference) float64
}

type neutralSimilarity struct{}

func (neutralSimilarity) Weight(float64, float64, FitPreference) float64 { return 1.0 }
func (neutralSimilarity) Records() int                                   { return 0 }

type neutralModel struct{}

func (neutralModel) Confidence(float64, float64, FitPreference) float64 { return 1.0 }

// NeutralSimilarityAdvisor returns the default advisor: no similarity data,
// full confidence.
func NeutralSimilarityAdvisor() SimilarityAdvisor { return neutralSimilarity{} }

// NeutralModelAdvisor returns the default advisor for the deterministic
// calculator.
func NeutralModelAdvisor() ModelAdvisor { return neutralModel{} }
