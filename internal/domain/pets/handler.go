package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vahis-pet-care-hub/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/pets", func(pr chi.Router) {
		// Catálogo público
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))

		// Back-office (admin)
		pr.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireAuth)
			ar.Post("/", createPetHandler(svc))
			ar.Patch("/{petID}", updatePetHandler(svc))
			ar.Delete("/{petID}", deletePetHandler(svc))
		})
	})
}

type createPetRequest struct {
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Type        string `json:"type"`
	AgeWeeks    int    `json:"ageWeeks"`
	Gender      string `json:"gender"`
	PriceMin    int    `json:"priceMin"`
	PriceMax    int    `json:"priceMax"`
	Status      string `json:"status"`
	ImageURL    string `json:"imageUrl"`
	Featured    bool   `json:"featured"`
	Description string `json:"description"`
}

type updatePetRequest struct {
	Name        *string `json:"name"`
	Breed       *string `json:"breed"`
	Type        *string `json:"type"`
	AgeWeeks    *int    `json:"ageWeeks"`
	Gender      *string `json:"gender"`
	PriceMin    *int    `json:"priceMin"`
	PriceMax    *int    `json:"priceMax"`
	Status      *string `json:"status"`
	ImageURL    *string `json:"imageUrl"`
	Featured    *bool   `json:"featured"`
	Description *string `json:"description"`
}

// Response es la forma pública de una mascota (camelCase, igual que consume el front).
// La exporta el matcher para enriquecer la recomendación.
type Response struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Type        Type   `json:"type"`
	AgeWeeks    int    `json:"ageWeeks"`
	Gender      Gender `json:"gender"`
	PriceMin    int    `json:"priceMin"`
	PriceMax    int    `json:"priceMax"`
	Status      Status `json:"status"`
	ImageURL    string `json:"imageUrl"`
	Featured    bool   `json:"featured"`
	Description string `json:"description"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve el catálogo completo ordenado por id (incluye vendidas y reservadas).
// @Tags pets
// @Produce json
// @Success 200 {array} Response
// @Failure 500 {string} string "internal error"
// @Router /api/pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]Response, 0, len(items))
		for _, p := range items {
			out = append(out, ToResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(p))
	}
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Breed:       req.Breed,
			Type:        req.Type,
			AgeWeeks:    req.AgeWeeks,
			Gender:      req.Gender,
			PriceMin:    req.PriceMin,
			PriceMax:    req.PriceMax,
			Status:      req.Status,
			ImageURL:    req.ImageURL,
			Featured:    req.Featured,
			Description: req.Description,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, ToResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updatePetRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			Name:        req.Name,
			Breed:       req.Breed,
			Type:        req.Type,
			AgeWeeks:    req.AgeWeeks,
			Gender:      req.Gender,
			PriceMin:    req.PriceMin,
			PriceMax:    req.PriceMax,
			Status:      req.Status,
			ImageURL:    req.ImageURL,
			Featured:    req.Featured,
			Description: req.Description,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ToResponse(p Pet) Response {
	return Response{
		ID:          p.ID,
		Name:        p.Name,
		Breed:       p.Breed,
		Type:        p.Type,
		AgeWeeks:    p.AgeWeeks,
		Gender:      p.Gender,
		PriceMin:    p.PriceMin,
		PriceMax:    p.PriceMax,
		Status:      p.Status,
		ImageURL:    p.ImageURL,
		Featured:    p.Featured,
		Description: p.Description,
	}
}

func petIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid pet id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON se repite en cada módulo a propósito (pets/products/bookings...).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
