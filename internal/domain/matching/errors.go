package matching

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRequest          = errors.New("invalid match request")
	ErrNoCandidates            = errors.New("no candidates")
	ErrOracleUnavailable       = errors.New("recommendation service unavailable")
	ErrRateLimited             = errors.New("recommendation service rate limited")
	ErrOracleResponseMalformed = errors.New("recommendation response malformed")
	ErrCatalogUnavailable      = errors.New("pet catalog unavailable")
)

// NoCandidatesError es un resultado de negocio (no una falla del sistema):
// lleva el tipo pedido para que el front pueda explicarlo.
type NoCandidatesError struct {
	PetType string
}

func (e *NoCandidatesError) Error() string {
	what := strings.TrimSpace(e.PetType)
	if what == "" {
		what = "pets"
	}
	return fmt.Sprintf("No available %s found matching your criteria.", what)
}

func (e *NoCandidatesError) Is(target error) bool {
	return target == ErrNoCandidates
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOracleResponseMalformed, fmt.Sprintf(format, args...))
}
