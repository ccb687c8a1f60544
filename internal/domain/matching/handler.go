package matching

import (
	"encoding/json"
	"errors"
	"net/http"

	"vahis-pet-care-hub/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

const (
	msgInvalidRequest = "Missing or invalid preferences."
	msgRateLimited    = "Daily AI limit reached. Please try again tomorrow!"
	msgMalformed      = "AI response parsing failed"
	msgUnavailable    = "Failed to generate match. Please try again later."
)

// RegisterRoutes monta el endpoint del matcher. limit puede ser nil.
func RegisterRoutes(r chi.Router, engine *Engine, limit func(http.Handler) http.Handler) {
	rr := r
	if limit != nil {
		rr = r.With(limit)
	}
	rr.Post("/api/match-pet", matchHandler(engine))
	// alias histórico
	rr.Post("/match", matchHandler(engine))
}

type matchRequest struct {
	Preferences *Preferences `json:"preferences"`
}

type matchResponse struct {
	PetID           int64         `json:"petId"`
	MatchReason     string        `json:"matchReason"`
	CareTips        []string      `json:"careTips"`
	Pet             pets.Response `json:"pet"`
	CandidatesFound int           `json:"candidatesFound"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// matchHandler godoc
// @Summary Recomendar una mascota
// @Description Filtra el catálogo (solo disponibles, especie pedida) y pide al oráculo el mejor candidato.
// @Description Sin candidatos responde 200 con {"error": "..."}.
// @Tags matching
// @Accept json
// @Produce json
// @Param request body matchRequest true "respuestas del quiz"
// @Success 200 {object} matchResponse
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/match-pet [post]
func matchHandler(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidRequest})
			return
		}
		// Cualquier lista de mascotas que mande el cliente se ignora: el catálogo manda.

		res, err := engine.Match(r.Context(), req.Preferences)
		if err != nil {
			writeMatchError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, matchResponse{
			PetID:           res.PetID,
			MatchReason:     res.MatchReason,
			CareTips:        res.CareTips,
			Pet:             pets.ToResponse(res.Pet),
			CandidatesFound: res.CandidatesFound,
		})
	}
}

func writeMatchError(w http.ResponseWriter, err error) {
	var nc *NoCandidatesError
	switch {
	case errors.As(err, &nc):
		// Resultado de negocio, no falla: el front muestra el mensaje.
		writeJSON(w, http.StatusOK, errorResponse{Error: nc.Error()})
	case errors.Is(err, ErrInvalidRequest):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidRequest})
	case errors.Is(err, ErrRateLimited):
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: msgRateLimited})
	case errors.Is(err, ErrOracleResponseMalformed):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgMalformed})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgUnavailable})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
