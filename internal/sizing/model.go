package sizing

import "fmt"

// Unit is the measurement system the caller supplied values in.
type Unit string

const (
	UnitMetric   Unit = "metric"   // cm / kg
	UnitImperial Unit = "imperial" // inches / pounds
)

func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitMetric, UnitImperial:
		return Unit(s), nil
	case "":
		return UnitMetric, nil
	}
	return "", &ValidationError{Field: "unit", Reason: "must be one of: metric, imperial"}
}

// FitPreference is the user-chosen garment tightness.
type FitPreference string

const (
	FitSlim    FitPreference = "slim"
	FitRegular FitPreference = "regular"
	FitRelaxed FitPreference = "relaxed"
)

func ParseFitPreference(s string) (FitPreference, error) {
	switch FitPreference(s) {
	case FitSlim, FitRegular, FitRelaxed:
		return FitPreference(s), nil
	case "":
		return FitRegular, nil
	}
	return "", &ValidationError{Field: "fit", Reason: "must be one of: slim, regular, relaxed"}
}

// BodyType is a coarse somatotype classification derived from BMI and the
// height-weight ratio. It is always recomputed, never stored independently.
type BodyType string

const (
	BodySlim     BodyType = "Slim"
	BodySlender  BodyType = "Slender"
	BodyRegular  BodyType = "Regular"
	BodyAthletic BodyType = "Athletic"
	BodyBroad    BodyType = "Broad"
)

// ValidationError reports input that failed validation. It is always surfaced
// to the caller immediately; the engine performs no recovery.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Input is the raw request to the recommendation engine.
type Input struct {
	Height float64       `json:"height"`
	Weight float64       `json:"weight"`
	Fit    FitPreference `json:"fit"`
	Unit   Unit          `json:"unit"`
}

// Measurements holds the canonical metric representation of an Input.
// Ratio is kg per metre, the convention the threshold ladders are written
// against (see calculator.go).
type Measurements struct {
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`
	BMI      float64 `json:"bmi"`
	Unit     Unit    `json:"unit"`
	Ratio    float64 `json:"-"`
}

// Percentiles is the anthropometric position of the measurements against
// fixed male-population reference points.
type Percentiles struct {
	Height float64 `json:"height_percentile"`
	Weight float64 `json:"weight_percentile"`
	BMI    float64 `json:"bmi_percentile"`
}

// Recommendation is the engine output. It is created fresh per request and
// never mutated after construction; enrichment layers copy it.
type Recommendation struct {
	Size             string        `json:"size"`
	Confidence       float64       `json:"confidence"`
	ConfidenceLevel  string        `json:"confidenceLevel"`
	BodyType         BodyType      `json:"bodyType"`
	Rationale        string        `json:"rationale"`
	Alterations      []string      `json:"alterations"`
	Measurements     Measurements  `json:"measurements"`
	Percentiles      Percentiles   `json:"percentiles"`
	ValidationNotes  []string      `json:"validationNotes"`
	SimilarityWeight float64       `json:"similarityWeight"`
	ModelConfidence  float64       `json:"modelConfidence"`
	FitPreference    FitPreference `json:"fitPreference"`
}

// EngineStats describes the engine configuration for the stats endpoint.
type EngineStats struct {
	SupportedSizes       []string `json:"supportedSizes"`
	SupportedFits        []string `json:"supportedFits"`
	ConfidenceComponents []string `json:"confidenceComponents"`
	SimilarityRecords    int      `json:"similarityRecords"`
	Version              string   `json:"version"`
}
