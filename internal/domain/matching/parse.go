package matching

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"vahis-pet-care-hub/internal/domain/pets"
)

const (
	minCareTips = 2
	maxCareTips = 4
)

type oracleReply struct {
	PetID       json.RawMessage `json:"petId"`
	MatchReason string          `json:"matchReason"`
	CareTips    []string        `json:"careTips"`
}

// ParseRecommendation trata la salida del oráculo como input no confiable:
// valida forma y que el petId elegido esté entre los candidatos enviados.
// Cualquier falla es ErrOracleResponseMalformed; nunca se arma un resultado de reemplazo.
func ParseRecommendation(raw string, candidates []pets.Pet) (Result, error) {
	body := stripCodeFence(raw)
	if body == "" {
		return Result{}, malformed("empty response")
	}

	var reply oracleReply
	dec := json.NewDecoder(strings.NewReader(body))
	if err := dec.Decode(&reply); err != nil {
		return Result{}, malformed("invalid json: %v", err)
	}
	// Nada más después del objeto (incluye un "}" o "]" suelto).
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Result{}, malformed("trailing data after json object")
	}

	petID, err := parsePetID(reply.PetID)
	if err != nil {
		return Result{}, err
	}

	reason := strings.TrimSpace(reply.MatchReason)
	if reason == "" {
		return Result{}, malformed("missing matchReason")
	}

	if len(reply.CareTips) < minCareTips || len(reply.CareTips) > maxCareTips {
		return Result{}, malformed("careTips must have %d-%d entries, got %d", minCareTips, maxCareTips, len(reply.CareTips))
	}
	tips := make([]string, 0, len(reply.CareTips))
	for i, t := range reply.CareTips {
		t = strings.TrimSpace(t)
		if t == "" {
			return Result{}, malformed("careTips[%d] is empty", i)
		}
		tips = append(tips, t)
	}

	// Integridad referencial: el id tiene que ser uno de los candidatos del prompt.
	var (
		selected pets.Pet
		found    bool
	)
	for _, c := range candidates {
		if c.ID == petID {
			selected = c
			found = true
			break
		}
	}
	if !found {
		return Result{}, malformed("petId %d is not among the %d candidates", petID, len(candidates))
	}

	return Result{
		PetID:           petID,
		MatchReason:     reason,
		CareTips:        tips,
		Pet:             selected,
		CandidatesFound: len(candidates),
	}, nil
}

// parsePetID acepta número entero o string numérico ("3"); nada más.
func parsePetID(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, malformed("missing petId")
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return v, nil
		}
	}
	return 0, malformed("petId must be an integer, got %s", string(raw))
}

// stripCodeFence quita un bloque ```json ... ``` si el modelo lo agregó.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimPrefix(s, "JSON")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
