package matching

import (
	"context"

	"vahis-pet-care-hub/internal/domain/pets"
)

// Preferences son las respuestas del quiz para un intento de match.
// Todas son opcionales para el motor; que estén completas es cosa del front.
type Preferences struct {
	PetType     string `json:"petType,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Housing     string `json:"housing,omitempty"`
	Exercise    string `json:"exercise,omitempty"`
	Temperament string `json:"temperament,omitempty"`
	Kids        string `json:"kids,omitempty"`
	Experience  string `json:"experience,omitempty"`
}

// Result es la recomendación ya validada y enriquecida.
type Result struct {
	PetID       int64
	MatchReason string
	CareTips    []string

	// Registro completo del candidato elegido (para no pedir de nuevo al catálogo).
	Pet pets.Pet

	CandidatesFound int
}

// Catalog es la única dependencia de lectura del inventario.
// pets.Service la cumple.
type Catalog interface {
	List(ctx context.Context) ([]pets.Pet, error)
}
