package sizing

import (
	"errors"
	"net/http"
	"time"

	"suitsize/internal/cache"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	engine          *Engine
	cache           *cache.Cache
	rateLimitPerMin int
	startedAt       time.Time
}

func NewHandler(engine *Engine, c *cache.Cache, rateLimitPerMin int) *Handler {
	return &Handler{
		engine:          engine,
		cache:           c,
		rateLimitPerMin: rateLimitPerMin,
		startedAt:       time.Now(),
	}
}

type recommendRequest struct {
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`
	Fit    string   `json:"fit"`
	// fitPreference is the field name the storefront sends; fit wins when
	// both are present.
	FitPreference string `json:"fitPreference"`
	Unit          string `json:"unit"`
}

type recommendResponse struct {
	*Recommendation
	Cached           bool    `json:"cached"`
	Timestamp        string  `json:"timestamp"`
	ProcessingTimeMS float64 `json:"processing_time_ms"`
	EngineVersion    string  `json:"engine_version"`
	Warning          string  `json:"warning,omitempty"`
	Notice           string  `json:"notice,omitempty"`
}

// --------------------------------------------------
// POST /api/recommend
// --------------------------------------------------
func (h *Handler) Recommend(c *gin.Context) {
	start := time.Now()

	var req recommendRequest
	if err := c.BindJSON(&req); err != nil {
		validationError(c, "request body must be valid JSON")
		return
	}
	if req.Height == nil {
		validationError(c, "height is required")
		return
	}
	if req.Weight == nil {
		validationError(c, "weight is required")
		return
	}

	fit := req.Fit
	if fit == "" {
		fit = req.FitPreference
	}

	in := Input{
		Height: *req.Height,
		Weight: *req.Weight,
		Fit:    FitPreference(fit),
		Unit:   Unit(req.Unit),
	}

	key := cache.Key(in)
	if cached, ok := h.cache.Get(key); ok {
		if rec, ok := cached.(*Recommendation); ok {
			c.JSON(http.StatusOK, h.respond(rec, true, start))
			return
		}
	}

	rec, err := h.engine.Recommend(in)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			validationError(c, verr.Error())
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "internal processing error",
			"code":      "INTERNAL_ERROR",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	h.cache.Set(key, rec)

	log.Info().
		Str("size", rec.Size).
		Float64("confidence", rec.Confidence).
		Dur("elapsed", time.Since(start)).
		Msg("recommendation served")

	c.JSON(http.StatusOK, h.respond(rec, false, start))
}

func (h *Handler) respond(rec *Recommendation, cached bool, start time.Time) recommendResponse {
	resp := recommendResponse{
		Recommendation:   rec,
		Cached:           cached,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		ProcessingTimeMS: round1(float64(time.Since(start).Microseconds()) / 1000),
		EngineVersion:    engineVersion,
	}
	if rec.Confidence < 0.6 {
		resp.Warning = "Low confidence recommendation - consider manual fitting"
	} else if rec.Confidence < 0.75 {
		resp.Notice = "Medium confidence recommendation - alterations may be needed"
	}
	return resp
}

// --------------------------------------------------
// GET /api/health
// --------------------------------------------------
func (h *Handler) Health(c *gin.Context) {
	test, err := h.engine.Recommend(Input{Height: 175, Weight: 75, Fit: FitRegular, Unit: UnitMetric})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"engine_version": engineVersion,
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
		"test_prediction": gin.H{
			"size":       test.Size,
			"confidence": test.Confidence,
		},
		"cache_size":        h.cache.Len(),
		"rate_limit_active": h.rateLimitPerMin > 0,
	})
}

// --------------------------------------------------
// GET /api/stats
// --------------------------------------------------
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"engine_stats": h.engine.Stats(),
		"cache_info":   h.cache.Stats(),
		"rate_limiting": gin.H{
			"requests_per_minute": h.rateLimitPerMin,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// --------------------------------------------------
// POST /api/cache/clear
// --------------------------------------------------
func (h *Handler) ClearCache(c *gin.Context) {
	removed := h.cache.Clear()
	log.Info().Int("entries_removed", removed).Msg("recommendation cache cleared")

	c.JSON(http.StatusOK, gin.H{
		"message":         "cache cleared successfully",
		"entries_removed": removed,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}

func validationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":     message,
		"code":      "VALIDATION_ERROR",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
