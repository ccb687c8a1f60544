package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vahis-pet-care-hub/internal/platform/logger"
	"vahis-pet-care-hub/internal/platform/metrics"
	"vahis-pet-care-hub/internal/ports/oracle"
)

const (
	DefaultOracleTimeout = 20 * time.Second

	// Respuestas del quiz son opciones cortas; algo más largo no vino del front.
	maxAnswerLen = 200
)

type Config struct {
	// OracleTimeout acota la única llamada al oráculo por intento.
	OracleTimeout time.Duration
}

// Engine orquesta un intento de match: catálogo, filtro duro, prompt,
// una sola llamada al oráculo y validación de la respuesta.
// No guarda estado entre intentos.
type Engine struct {
	catalog Catalog
	oracle  oracle.Oracle
	cfg     Config
	log     logger.Logger
	now     func() time.Time
}

func NewEngine(catalog Catalog, o oracle.Oracle, cfg Config, log logger.Logger) *Engine {
	if cfg.OracleTimeout <= 0 {
		cfg.OracleTimeout = DefaultOracleTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{
		catalog: catalog,
		oracle:  o,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// Match ejecuta un intento completo. Errores posibles (comparar con errors.Is):
// ErrInvalidRequest, ErrNoCandidates, ErrCatalogUnavailable, ErrRateLimited,
// ErrOracleUnavailable, ErrOracleResponseMalformed.
func (e *Engine) Match(ctx context.Context, prefs *Preferences) (Result, error) {
	start := e.now()
	res, err := e.match(ctx, prefs)
	outcome := Outcome(err)
	metrics.RecordMatch(outcome, e.now().Sub(start))

	fields := map[string]any{
		"outcome":     outcome,
		"duration_ms": e.now().Sub(start).Milliseconds(),
	}
	if prefs != nil {
		fields["pet_type"] = prefs.PetType
	}
	switch {
	case err == nil:
		fields["pet_id"] = res.PetID
		fields["candidates"] = res.CandidatesFound
		e.log.Info("match completed", fields)
	case errors.Is(err, ErrNoCandidates), errors.Is(err, ErrInvalidRequest):
		e.log.Info("match rejected", fields)
	case errors.Is(err, ErrRateLimited):
		fields["error"] = err
		e.log.Warn("match rate limited", fields)
	default:
		fields["error"] = err
		e.log.Error("match failed", fields)
	}
	return res, err
}

func (e *Engine) match(ctx context.Context, prefs *Preferences) (Result, error) {
	if prefs == nil {
		return Result{}, fmt.Errorf("%w: preferences are required", ErrInvalidRequest)
	}
	if err := validatePreferences(*prefs); err != nil {
		return Result{}, err
	}

	all, err := e.catalog.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	candidates, err := FilterCandidates(all, *prefs)
	if err != nil {
		return Result{}, err
	}

	prompt, err := BuildPrompt(*prefs, candidates)
	if err != nil {
		return Result{}, err
	}

	if e.oracle == nil {
		return Result{}, fmt.Errorf("%w: %w", ErrOracleUnavailable, oracle.ErrNotConfigured)
	}

	octx, cancel := context.WithTimeout(ctx, e.cfg.OracleTimeout)
	defer cancel()

	raw, err := e.oracle.Generate(octx, prompt)
	if err != nil {
		return Result{}, classifyOracleError(err)
	}

	return ParseRecommendation(raw, candidates)
}

func validatePreferences(p Preferences) error {
	answers := map[string]string{
		"petType":     p.PetType,
		"budget":      p.Budget,
		"housing":     p.Housing,
		"exercise":    p.Exercise,
		"temperament": p.Temperament,
		"kids":        p.Kids,
		"experience":  p.Experience,
	}
	for k, v := range answers {
		if len(v) > maxAnswerLen {
			return fmt.Errorf("%w: %s is too long", ErrInvalidRequest, k)
		}
	}
	return nil
}

// classifyOracleError separa cuota agotada del resto de fallas del proveedor.
// Algunos SDKs solo exponen el 429 en el texto del error.
func classifyOracleError(err error) error {
	if errors.Is(err, oracle.ErrRateLimited) || looksRateLimited(err.Error()) {
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}
	return fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
}

func looksRateLimited(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(msg, "429") ||
		strings.Contains(lower, "quota") ||
		strings.Contains(lower, "resource_exhausted")
}

// Outcome es el nombre corto de un resultado, para métricas y logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "matched"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrNoCandidates):
		return "no_candidates"
	case errors.Is(err, ErrCatalogUnavailable):
		return "catalog_unavailable"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrOracleResponseMalformed):
		return "malformed_response"
	case errors.Is(err, ErrOracleUnavailable):
		return "oracle_unavailable"
	default:
		return "internal"
	}
}
