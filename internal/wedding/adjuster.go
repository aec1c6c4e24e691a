package wedding

import "suitsize/internal/sizing"

// roleAdjustment perturbs a member's inputs before the sizing engine runs.
// The multiplier is a cosmetic resize, not a unit change. Flexibility at or
// above 1.0 means the member's fit preference is never shifted by the event
// style.
type roleAdjustment struct {
	BaseMultiplier   float64
	ConfidenceBoost  float64
	StyleFlexibility float64
}

var roleAdjustments = map[Role]roleAdjustment{
	RoleGroom:         {BaseMultiplier: 1.0, ConfidenceBoost: 0.1, StyleFlexibility: 0.9},
	RoleBestMan:       {BaseMultiplier: 1.0, ConfidenceBoost: 0.05, StyleFlexibility: 0.95},
	RoleGroomsman:     {BaseMultiplier: 0.98, ConfidenceBoost: 0, StyleFlexibility: 1.0},
	RoleFatherOfBride: {BaseMultiplier: 1.02, ConfidenceBoost: 0.05, StyleFlexibility: 1.1},
	RoleFatherOfGroom: {BaseMultiplier: 1.02, ConfidenceBoost: 0.05, StyleFlexibility: 1.1},
	RoleUsher:         {BaseMultiplier: 0.99, ConfidenceBoost: 0, StyleFlexibility: 1.0},
	RoleRingBearer:    {BaseMultiplier: 1.0, ConfidenceBoost: 0, StyleFlexibility: 1.0},
	RoleGuest:         {BaseMultiplier: 1.0, ConfidenceBoost: 0, StyleFlexibility: 1.0},
}

// styleImpact biases the fit preference and boosts confidence per event
// style. Styles absent from the table have no impact.
type styleImpact struct {
	FitBias         sizing.FitPreference
	ConfidenceBoost float64
}

var styleImpacts = map[Style]styleImpact{
	StyleFormal:   {FitBias: sizing.FitRegular, ConfidenceBoost: 0.05},
	StyleBlackTie: {FitBias: sizing.FitSlim, ConfidenceBoost: 0.1},
	StyleCasual:   {FitBias: sizing.FitRelaxed, ConfidenceBoost: 0},
	StyleBeach:    {FitBias: sizing.FitRelaxed, ConfidenceBoost: 0.05},
	StyleOutdoor:  {FitBias: sizing.FitRelaxed, ConfidenceBoost: 0},
}

// biasedFit derives the style-biased fit preference deterministically: the
// bias takes hold only when the role's flexibility leaves room for it
// (strength = 1 − flexibility > 0). The original preference is untouched and
// stays available for rationale text; callers decide via configuration
// whether the biased preference is actually applied.
func biasedFit(original sizing.FitPreference, role roleAdjustment, impact styleImpact) sizing.FitPreference {
	if impact.FitBias == "" || impact.FitBias == original {
		return original
	}
	if 1-role.StyleFlexibility <= 0 {
		return original
	}
	return impact.FitBias
}

var roleAlterations = map[Role][]string{
	RoleGroom: {
		"Wedding_photo_optimization",
		"Comfortable_movement_for_dancing",
		"Vesting_compatibility",
	},
	RoleBestMan: {
		"Speech_comfort_adjustment",
		"Photo_coordination_with_groom",
	},
	RoleFatherOfBride: {
		"Extended_comfort_for_long_ceremony",
		"Easy_sitting_adjustment",
	},
	RoleFatherOfGroom: {
		"Extended_comfort_for_long_ceremony",
		"Easy_sitting_adjustment",
	},
}

var styleAlterations = map[Style][]string{
	StyleFormal: {"Formal_occasion_enhancements"},
	StyleBlackTie: {
		"Black_tie_appropriate_fitting",
		"Bow_tie_compatibility",
	},
	StyleBeach: {"Breathable_fabric_adjustments"},
}
