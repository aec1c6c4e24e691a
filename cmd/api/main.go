package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"suitsize/internal/cache"
	"suitsize/internal/middleware"
	"suitsize/internal/router"
	"suitsize/internal/similarity"
	"suitsize/internal/sizing"
	"suitsize/internal/wedding"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	port := envOr("PORT", "8080")
	cacheTTL := envIntOr("CACHE_TTL_SECONDS", 300)
	rateLimit := envIntOr("RATE_LIMIT_PER_MIN", 10)
	applyStyleBias := envBoolOr("APPLY_STYLE_BIAS", false)

	var corsOrigins []string
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				corsOrigins = append(corsOrigins, o)
			}
		}
	}

	// ───────────────────────── LOGGING ─────────────────────────
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("APP_ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	// ───────────────────────── ENGINE ─────────────────────────
	advisor := similarity.NewAdvisor()
	engine := sizing.NewEngine(advisor, sizing.NeutralModelAdvisor())

	// ───────────────────────── CACHE ─────────────────────────
	recCache := cache.New(time.Duration(cacheTTL) * time.Second)

	// ───────────────────────── HANDLERS ─────────────────────────
	sizingHandler := sizing.NewHandler(engine, recCache, rateLimit)

	weddingService := wedding.NewService(engine, applyStyleBias)
	weddingAnalyzer := wedding.NewAnalyzer(weddingService)
	weddingHandler := wedding.NewHandler(weddingService, weddingAnalyzer)

	// ───────────────────────── ROUTER ─────────────────────────
	limiter := middleware.NewRateLimiter(rateLimit)
	r := router.New(sizingHandler, weddingHandler, limiter, corsOrigins)

	// ───────────────────────── START ─────────────────────────
	log.Info().
		Str("port", port).
		Int("cache_ttl_seconds", cacheTTL).
		Int("rate_limit_per_min", rateLimit).
		Bool("apply_style_bias", applyStyleBias).
		Msg("🚀 SuitSize API starting")

	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// --------------------------------------------------
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatal().Str("key", key).Str("value", v).Msg("invalid integer env var")
	}
	return n
}

func envBoolOr(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatal().Str("key", key).Str("value", v).Msg("invalid boolean env var")
	}
	return b
}
