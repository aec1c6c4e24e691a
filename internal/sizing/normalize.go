package sizing

import "math"

const (
	cmPerInch  = 2.54
	kgPerPound = 0.453592

	minHeightCM = 120
	maxHeightCM = 250
	minWeightKG = 40
	maxWeightKG = 200
)

// NormalizeMeasurements converts the supplied height/weight to canonical
// metric units and derives BMI and the kg-per-metre height-weight ratio.
// All decision logic downstream runs on the returned Measurements only.
func NormalizeMeasurements(height, weight float64, unit Unit) (Measurements, error) {
	if math.IsNaN(height) || math.IsInf(height, 0) || height <= 0 {
		return Measurements{}, &ValidationError{Field: "height", Reason: "must be a positive number"}
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return Measurements{}, &ValidationError{Field: "weight", Reason: "must be a positive number"}
	}

	heightCM := height
	weightKG := weight
	if unit == UnitImperial {
		heightCM = height * cmPerInch
		weightKG = weight * kgPerPound
	}

	if heightCM < minHeightCM || heightCM > maxHeightCM {
		return Measurements{}, &ValidationError{Field: "height", Reason: "must be between 120cm and 250cm"}
	}
	if weightKG < minWeightKG || weightKG > maxWeightKG {
		return Measurements{}, &ValidationError{Field: "weight", Reason: "must be between 40kg and 200kg"}
	}

	heightM := heightCM / 100
	return Measurements{
		HeightCM: heightCM,
		WeightKG: weightKG,
		BMI:      weightKG / (heightM * heightM),
		Unit:     unit,
		Ratio:    weightKG / heightM,
	}, nil
}

// ToImperial converts canonical metric measurements back to inches/pounds.
func ToImperial(m Measurements) (heightIn, weightLb float64) {
	return m.HeightCM / cmPerInch, m.WeightKG / kgPerPound
}
