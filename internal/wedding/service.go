package wedding

import (
	"fmt"
	"math"

	"suitsize/internal/sizing"
)

// MemberRecommendation layers wedding context on top of a base
// recommendation. The base fields are a copy; the underlying sizing result is
// never mutated.
type MemberRecommendation struct {
	sizing.Recommendation
	MemberID         string               `json:"member_id"`
	MemberName       string               `json:"member_name"`
	Role             Role                 `json:"wedding_role"`
	Style            Style                `json:"wedding_style"`
	RoleAdjustment   float64              `json:"role_based_adjustment"`
	OriginalFit      sizing.FitPreference `json:"original_fit"`
	StyleBiasedFit   sizing.FitPreference `json:"style_biased_fit"`
	AppliedFit       sizing.FitPreference `json:"applied_fit"`
	WeddingRationale string               `json:"wedding_rationale"`
}

// Service runs the role/style adjustment pipeline in front of the sizing
// engine. When applyStyleBias is false the style-biased fit is still computed
// and reported, but the member's own preference drives the recommendation.
type Service struct {
	engine         *sizing.Engine
	applyStyleBias bool
}

func NewService(engine *sizing.Engine, applyStyleBias bool) *Service {
	return &Service{engine: engine, applyStyleBias: applyStyleBias}
}

// RecommendForMember adjusts the member's inputs per role and event style,
// delegates to the sizing engine, then layers boosts, wedding alterations,
// and role-flavored rationale on a copy of the result.
func (s *Service) RecommendForMember(member PartyMember, event EventDetails) (*MemberRecommendation, error) {
	role, err := ParseRole(string(member.Role))
	if err != nil {
		return nil, err
	}
	style, err := ParseStyle(string(event.Style))
	if err != nil {
		return nil, err
	}

	originalFit, err := sizing.ParseFitPreference(string(member.Fit))
	if err != nil {
		return nil, err
	}

	adjustment := roleAdjustments[role]
	impact := styleImpacts[style]

	biased := biasedFit(originalFit, adjustment, impact)
	applied := originalFit
	if s.applyStyleBias {
		applied = biased
	}

	base, err := s.engine.Recommend(sizing.Input{
		Height: member.Height * adjustment.BaseMultiplier,
		Weight: member.Weight * adjustment.BaseMultiplier,
		Fit:    applied,
		Unit:   member.Unit,
	})
	if err != nil {
		return nil, err
	}

	rec := &MemberRecommendation{
		Recommendation: *base,
		MemberID:       member.ID,
		MemberName:     member.Name,
		Role:           role,
		Style:          style,
		RoleAdjustment: adjustment.BaseMultiplier,
		OriginalFit:    originalFit,
		StyleBiasedFit: biased,
		AppliedFit:     applied,
	}

	boost := adjustment.ConfidenceBoost + impact.ConfidenceBoost
	rec.Confidence = math.Min(1.0, rec.Confidence+boost)
	rec.ConfidenceLevel = sizing.LevelFor(rec.Confidence)

	alterations := make([]string, 0, len(base.Alterations))
	alterations = append(alterations, base.Alterations...)
	alterations = append(alterations, roleAlterations[role]...)
	alterations = append(alterations, styleAlterations[style]...)
	rec.Alterations = alterations

	rec.WeddingRationale = weddingRationale(member, role, style, rec.Size, originalFit)

	return rec, nil
}

func weddingRationale(member PartyMember, role Role, style Style, size string, fit sizing.FitPreference) string {
	var lead string
	switch role {
	case RoleGroom:
		lead = fmt.Sprintf("As the groom, you're the center of attention. The %s size ensures you'll look polished and confident on your special day.", size)
	case RoleBestMan:
		lead = fmt.Sprintf("As best man, your %s size complements the groom while maintaining your distinguished presence.", size)
	case RoleGroomsman:
		lead = fmt.Sprintf("As a groomsman, the %s size ensures you look coordinated with the wedding party while staying comfortable.", size)
	case RoleFatherOfBride:
		lead = fmt.Sprintf("As father of the bride, the %s size provides the perfect balance of formality and comfort for this special occasion.", size)
	case RoleFatherOfGroom:
		lead = fmt.Sprintf("As father of the groom, the %s size ensures you look distinguished and comfortable throughout the celebration.", size)
	case RoleUsher:
		lead = fmt.Sprintf("As an usher, the %s size helps you look professional while assisting guests.", size)
	default:
		lead = fmt.Sprintf("The %s size is recommended for your role and wedding style.", size)
	}
	return fmt.Sprintf("%s The %s wedding style calls for a %s fit.", lead, style, fit)
}
