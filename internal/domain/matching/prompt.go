package matching

import (
	"encoding/json"
	"fmt"
	"strings"

	"vahis-pet-care-hub/internal/domain/pets"
)

// promptPet es lo que ve el oráculo de cada candidato. Sin status ni imagen:
// la disponibilidad ya se resolvió en código.
type promptPet struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Type        string `json:"type"`
	AgeWeeks    int    `json:"ageWeeks"`
	Gender      string `json:"gender"`
	PriceMin    int    `json:"priceMin"`
	PriceMax    int    `json:"priceMax"`
	Description string `json:"description"`
}

const promptTemplate = `You are a Senior Pet Matchmaker at 'PawPrint Boutique'.

YOUR GOAL: Analyze the "Available Pets" and find the ONE absolute best match for the "Customer Profile".
Every pet listed is already available and of the requested species. Choose ONLY from this list.

RULES (in priority order, each one is mandatory):
1. Temperament Match: temperament compatibility overrides every other preference. If the customer wants "Calm", DO NOT pick a high-energy or playful pet.
2. Activity Level: compare the customer's daily exercise time with the pet's exercise needs.
3. Living Situation: housing suitability is a rule, not a suggestion. Large or high-energy pets are NOT suitable for constrained housing such as apartments.
4. Kid Friendly: if there are kids at home, the pet MUST be good with children. This is not optional.

Customer Profile:
- Pet Preference: %s
- Budget: %s
- Housing: %s
- Exercise time: %s
- Temperament: %s
- Kids at home: %s
- Experience: %s

Available Pets (JSON):
%s

TASK:
1. Discard candidates that break any rule above.
2. Compare the remaining candidates (budget against priceMin/priceMax is a tie-breaker).
3. Select exactly ONE winner.

Output Format: JSON ONLY, no markdown, no extra text, exactly this shape:
{
  "petId": <numeric id of the selected pet, copied from the list>,
  "matchReason": "<why this pet beat the others, citing the rules above>",
  "careTips": ["<tip 1>", "<tip 2>", "<tip 3>"]
}
careTips must contain between 2 and 4 short tips.`

// BuildPrompt arma la instrucción para el oráculo. Es pura: no llama a nada.
// candidates no puede venir vacío (lo garantiza FilterCandidates).
func BuildPrompt(prefs Preferences, candidates []pets.Pet) (string, error) {
	if len(candidates) == 0 {
		return "", &NoCandidatesError{PetType: prefs.PetType}
	}

	list := make([]promptPet, 0, len(candidates))
	for _, p := range candidates {
		list = append(list, promptPet{
			ID:          p.ID,
			Name:        p.Name,
			Breed:       p.Breed,
			Type:        string(p.Type),
			AgeWeeks:    p.AgeWeeks,
			Gender:      string(p.Gender),
			PriceMin:    p.PriceMin,
			PriceMax:    p.PriceMax,
			Description: p.Description,
		})
	}

	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal candidates: %w", err)
	}

	return fmt.Sprintf(promptTemplate,
		orUnspecified(prefs.PetType),
		orUnspecified(prefs.Budget),
		orUnspecified(prefs.Housing),
		orUnspecified(prefs.Exercise),
		orUnspecified(prefs.Temperament),
		orUnspecified(prefs.Kids),
		orUnspecified(prefs.Experience),
		string(b),
	), nil
}

func orUnspecified(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Not specified"
	}
	return s
}
