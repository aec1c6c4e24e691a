package wedding

import (
	"errors"
	"net/http"
	"time"

	"suitsize/internal/sizing"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	analyzer *Analyzer
}

func NewHandler(service *Service, analyzer *Analyzer) *Handler {
	return &Handler{service: service, analyzer: analyzer}
}

type eventRequest struct {
	Date           string `json:"date"`
	Style          string `json:"style"`
	Season         string `json:"season"`
	VenueType      string `json:"venue_type"`
	FormalityLevel string `json:"formality_level"`
}

type memberRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	FitPreference string   `json:"fit_preference"`
	Unit          string   `json:"unit"`
}

type recommendMemberRequest struct {
	memberRequest
	Event eventRequest `json:"event"`
}

type analyzeRequest struct {
	Event   eventRequest    `json:"event"`
	Members []memberRequest `json:"members"`
}

// --------------------------------------------------
// POST /api/wedding/recommend
// --------------------------------------------------
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendMemberRequest
	if err := c.BindJSON(&req); err != nil {
		validationError(c, "request body must be valid JSON")
		return
	}

	member, err := req.memberRequest.toMember()
	if err != nil {
		validationError(c, err.Error())
		return
	}
	event, err := req.Event.toEvent()
	if err != nil {
		validationError(c, err.Error())
		return
	}

	rec, err := h.service.RecommendForMember(member, event)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendation": rec,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}

// --------------------------------------------------
// POST /api/wedding/analyze
// --------------------------------------------------
func (h *Handler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.BindJSON(&req); err != nil {
		validationError(c, "request body must be valid JSON")
		return
	}
	if len(req.Members) == 0 {
		validationError(c, "members is required")
		return
	}

	event, err := req.Event.toEvent()
	if err != nil {
		validationError(c, err.Error())
		return
	}

	// Insertion order drives coordinator assignment; members are added in
	// request order.
	party := NewParty(event)
	for _, m := range req.Members {
		member, err := m.toMember()
		if err != nil {
			validationError(c, err.Error())
			return
		}
		party.AddMember(member)
	}

	result, err := h.analyzer.AnalyzeGroup(party)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"party_id":  party.ID,
		"roles":     party.Roles(),
		"analysis":  result,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (r memberRequest) toMember() (PartyMember, error) {
	if r.Height == nil {
		return PartyMember{}, &sizing.ValidationError{Field: "height", Reason: "is required"}
	}
	if r.Weight == nil {
		return PartyMember{}, &sizing.ValidationError{Field: "weight", Reason: "is required"}
	}

	role, err := ParseRole(r.Role)
	if err != nil {
		return PartyMember{}, err
	}
	fit, err := sizing.ParseFitPreference(r.FitPreference)
	if err != nil {
		return PartyMember{}, err
	}
	unit, err := sizing.ParseUnit(r.Unit)
	if err != nil {
		return PartyMember{}, err
	}

	return PartyMember{
		ID:     r.ID,
		Name:   r.Name,
		Role:   role,
		Height: *r.Height,
		Weight: *r.Weight,
		Fit:    fit,
		Unit:   unit,
	}, nil
}

func (r eventRequest) toEvent() (EventDetails, error) {
	style, err := ParseStyle(r.Style)
	if err != nil {
		return EventDetails{}, err
	}

	date, err := parseEventDate(r.Date)
	if err != nil {
		return EventDetails{}, err
	}

	return EventDetails{
		Date:           date,
		Style:          style,
		Season:         r.Season,
		VenueType:      r.VenueType,
		FormalityLevel: r.FormalityLevel,
	}, nil
}

func parseEventDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, &sizing.ValidationError{Field: "date", Reason: "is required"}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, &sizing.ValidationError{Field: "date", Reason: "must be RFC3339 or YYYY-MM-DD"}
}

func respondError(c *gin.Context, err error) {
	var verr *sizing.ValidationError
	if errors.As(err, &verr) {
		validationError(c, verr.Error())
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":     "internal processing error",
		"code":      "INTERNAL_ERROR",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func validationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":     message,
		"code":      "VALIDATION_ERROR",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
