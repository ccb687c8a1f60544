package matching

import (
	"strings"

	"vahis-pet-care-hub/internal/domain/pets"
)

// FilterCandidates aplica las reglas duras antes de cualquier llamada al oráculo:
//  1. solo mascotas Available (si no queda ninguna, NoCandidates sin seguir);
//  2. si petType es Dog o Cat (sin importar mayúsculas ni espacios), solo esa especie.
//
// Cualquier otro petType (p.ej. "Other") no filtra por especie; el front no debería
// mandarlo nunca.
//
// No modifica all.
func FilterCandidates(all []pets.Pet, prefs Preferences) ([]pets.Pet, error) {
	available := make([]pets.Pet, 0, len(all))
	for _, p := range all {
		if p.IsAvailable() {
			available = append(available, p)
		}
	}
	if len(available) == 0 {
		return nil, &NoCandidatesError{PetType: prefs.PetType}
	}

	petType := strings.TrimSpace(prefs.PetType)
	if !isSupportedSpecies(petType) {
		return available, nil
	}

	out := make([]pets.Pet, 0, len(available))
	for _, p := range available {
		if strings.EqualFold(string(p.Type), petType) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, &NoCandidatesError{PetType: prefs.PetType}
	}
	return out, nil
}

// isSupportedSpecies: especies que el matcher sabe filtrar.
func isSupportedSpecies(petType string) bool {
	return strings.EqualFold(petType, string(pets.TypeDog)) ||
		strings.EqualFold(petType, string(pets.TypeCat))
}

// IsSupportedSpecies lo usa el quiz para cortar el flujo si la primera respuesta
// no es perro ni gato.
func IsSupportedSpecies(petType string) bool {
	return isSupportedSpecies(strings.TrimSpace(petType))
}
