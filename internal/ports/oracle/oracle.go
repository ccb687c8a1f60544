package oracle

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured: falta API key / cliente.
	ErrNotConfigured = errors.New("oracle not configured")
	// ErrRateLimited: el proveedor avisó cuota agotada (429 / RESOURCE_EXHAUSTED).
	ErrRateLimited = errors.New("oracle rate limited")
	// ErrUnavailable: red, timeout o error del proveedor.
	ErrUnavailable = errors.New("oracle unavailable")
)

// Oracle genera texto (se espera JSON) a partir de un prompt.
// No hay garantía de esquema: quien lo llame debe validar la respuesta.
type Oracle interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
