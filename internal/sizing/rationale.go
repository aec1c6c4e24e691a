package sizing

import (
	"fmt"
	"strings"
)

// BuildRationale assembles the explanation text from fixed templates plus
// conditional clauses for stature and body-type extremes.
func BuildRationale(m Measurements, fit FitPreference, size string, bodyType BodyType, pct Percentiles) string {
	parts := []string{
		fmt.Sprintf("Based on your measurements (%.0fcm, %.0fkg), a %s size with %s fit is recommended.",
			m.HeightCM, m.WeightKG, size, fit),
		fmt.Sprintf("Your body type is classified as %s.", bodyType),
	}

	if m.HeightCM > longLengthHeightCM {
		parts = append(parts, "Extended length sizing is applied for your height.")
	}

	switch bodyType {
	case BodyAthletic:
		parts = append(parts, "Extra shoulder room is factored in for an athletic build.")
	case BodyBroad:
		parts = append(parts, "A relaxed cut is favored for comfort through the chest and waist.")
	}

	if pct.Height < 10 {
		parts = append(parts, "Your height is below the 10th percentile.")
	} else if pct.Height > 90 {
		parts = append(parts, "Your height is above the 90th percentile.")
	}

	if m.BMI < 18.5 {
		parts = append(parts, "BMI indicates underweight classification.")
	} else if m.BMI > 30 {
		parts = append(parts, "BMI indicates overweight classification.")
	}

	return strings.Join(parts, " ")
}

// BuildAlterations builds the ordered alteration tag list: body-type rules,
// then height rules, then the fit/BMI interaction rule. Tags repeated across
// rules are preserved in generation order; an empty list is a valid result.
func BuildAlterations(m Measurements, fit FitPreference, bodyType BodyType) []string {
	alterations := []string{}

	switch bodyType {
	case BodyAthletic:
		alterations = append(alterations,
			"Shoulder_width_adjustment",
			"Chest_let_out",
			"Armhole_modification",
		)
	case BodyBroad:
		alterations = append(alterations,
			"Waist_let_out",
			"Trouser_widening",
			"Shoulder_width_adjustment",
		)
	case BodySlim:
		alterations = append(alterations,
			"Waist_take_in",
			"Sleeve_shortening",
			"Chest_take_in",
		)
	case BodySlender:
		alterations = append(alterations,
			"Waist_take_in",
			"Sleeve_shortening",
		)
	}

	if m.HeightCM > longLengthHeightCM {
		alterations = append(alterations, "Sleeve_lengthening", "Trouser_lengthening")
	} else if m.HeightCM < 160 {
		alterations = append(alterations, "Sleeve_shortening", "Trouser_shortening")
	}

	if fit == FitSlim && m.BMI > 25 {
		alterations = append(alterations, "Fit_relaxation_recommended")
	} else if fit == FitRelaxed && m.BMI < 22 {
		alterations = append(alterations, "Fit_tightening_possible")
	}

	return alterations
}

// ValidationNotes flags measurement characteristics worth surfacing alongside
// the recommendation. Not errors; the request already passed validation.
func ValidationNotes(m Measurements, pct Percentiles) []string {
	notes := []string{}

	if m.BMI < 18.5 {
		notes = append(notes, "BMI indicates underweight - slim fit recommended")
	} else if m.BMI > 30 {
		notes = append(notes, "BMI indicates overweight - relaxed fit recommended")
	} else if m.BMI > 28 {
		notes = append(notes, "BMI slightly high - consider relaxed fit for comfort")
	}

	if m.HeightCM > 195 {
		notes = append(notes, "Height is tall - consider long lengths")
	} else if m.HeightCM < 160 {
		notes = append(notes, "Height is shorter - consider sleeve shortening")
	}

	if pct.Height < 10 {
		notes = append(notes, "Height is below 10th percentile")
	} else if pct.Height > 90 {
		notes = append(notes, "Height is above 90th percentile")
	}

	return notes
}
