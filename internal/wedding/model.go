package wedding

import (
	"time"

	"suitsize/internal/sizing"

	"github.com/google/uuid"
)

// Role is a wedding party role with specific sizing considerations.
type Role string

const (
	RoleGroom         Role = "groom"
	RoleBestMan       Role = "best_man"
	RoleGroomsman     Role = "groomsman"
	RoleFatherOfBride Role = "father_of_bride"
	RoleFatherOfGroom Role = "father_of_groom"
	RoleUsher         Role = "usher"
	RoleRingBearer    Role = "ring_bearer"
	RoleGuest         Role = "guests"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGroom, RoleBestMan, RoleGroomsman, RoleFatherOfBride,
		RoleFatherOfGroom, RoleUsher, RoleRingBearer, RoleGuest:
		return Role(s), nil
	}
	return "", &sizing.ValidationError{Field: "role", Reason: "unknown wedding role: " + s}
}

// Style is the wedding style affecting fit bias and coordination.
type Style string

const (
	StyleFormal     Style = "formal"
	StyleSemiFormal Style = "semi_formal"
	StyleCasual     Style = "casual"
	StyleBlackTie   Style = "black_tie"
	StyleBeach      Style = "beach"
	StyleOutdoor    Style = "outdoor"
	StyleVintage    Style = "vintage"
	StyleModern     Style = "modern"
)

func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleFormal, StyleSemiFormal, StyleCasual, StyleBlackTie,
		StyleBeach, StyleOutdoor, StyleVintage, StyleModern:
		return Style(s), nil
	}
	return "", &sizing.ValidationError{Field: "style", Reason: "unknown wedding style: " + s}
}

// EventDetails describes the wedding event. Immutable once attached to a
// Party for a given analysis run.
type EventDetails struct {
	Date           time.Time `json:"date"`
	Style          Style     `json:"style"`
	Season         string    `json:"season"`
	VenueType      string    `json:"venue_type"`
	FormalityLevel string    `json:"formality_level"`
}

// PartyMember is one individual in a wedding party.
type PartyMember struct {
	ID     string               `json:"id"`
	Name   string               `json:"name"`
	Role   Role                 `json:"role"`
	Height float64              `json:"height"`
	Weight float64              `json:"weight"`
	Fit    sizing.FitPreference `json:"fit_preference"`
	Unit   sizing.Unit          `json:"unit"`
}

// Party is an ordered wedding group. Member order is insertion order; the
// coordinator is the first Groom or Best Man added and is never reassigned.
type Party struct {
	ID          string       `json:"id"`
	Event       EventDetails `json:"event"`
	Members     []PartyMember `json:"members"`
	Coordinator *PartyMember `json:"coordinator,omitempty"`
}

func NewParty(event EventDetails) *Party {
	return &Party{
		ID:    uuid.NewString(),
		Event: event,
	}
}

// AddMember appends a member, assigning an ID when absent, and applies the
// coordinator rule.
func (p *Party) AddMember(m PartyMember) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	p.Members = append(p.Members, m)
	if p.Coordinator == nil && (m.Role == RoleGroom || m.Role == RoleBestMan) {
		coordinator := m
		p.Coordinator = &coordinator
	}
}

// Roles counts members per role.
func (p *Party) Roles() map[string]int {
	roles := make(map[string]int)
	for _, m := range p.Members {
		roles[string(m.Role)]++
	}
	return roles
}
