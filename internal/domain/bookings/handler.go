package bookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vahis-pet-care-hub/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/bookings", func(br chi.Router) {
		// Visitas / grooming / consultas: cualquiera puede reservar
		br.Post("/", createBookingHandler(svc))

		br.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireAuth)
			ar.Get("/", listBookingsHandler(svc))
			ar.Patch("/{bookingID}", updateBookingHandler(svc))
			ar.Delete("/{bookingID}", deleteBookingHandler(svc))
		})
	})
}

type createBookingRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Type   string `json:"type"`
	Detail string `json:"detail"`
	Time   string `json:"time"`
}

type updateBookingRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Type   *string `json:"type"`
	Detail *string `json:"detail"`
	Time   *string `json:"time"`
	Status *string `json:"status"`
}

type bookingResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
	Type   Type   `json:"type"`
	Detail string `json:"detail"`
	Time   string `json:"time"`
	Status Status `json:"status"`
}

// createBookingHandler godoc
// @Summary Crear reserva
// @Description Registra una visita, turno de grooming o consulta de productos. Siempre queda en estado Pending.
// @Tags bookings
// @Accept json
// @Produce json
// @Param payload body createBookingRequest true "Datos de la reserva"
// @Success 201 {object} bookingResponse
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Router /api/bookings [post]
func createBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			Name:   req.Name,
			Phone:  req.Phone,
			Type:   req.Type,
			Detail: req.Detail,
			Time:   req.Time,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toBookingResponse(b))
	}
}

func listBookingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]bookingResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBookingResponse(b))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func updateBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := bookingIDParam(w, r)
		if !ok {
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateBookingRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Update(r.Context(), id, UpdateInput{
			Name:   req.Name,
			Phone:  req.Phone,
			Type:   req.Type,
			Detail: req.Detail,
			Time:   req.Time,
			Status: req.Status,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toBookingResponse(b))
	}
}

func deleteBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := bookingIDParam(w, r)
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

func toBookingResponse(b Booking) bookingResponse {
	return bookingResponse{
		ID:     b.ID,
		Name:   b.Name,
		Phone:  b.Phone,
		Type:   b.Type,
		Detail: b.Detail,
		Time:   b.Time,
		Status: b.Status,
	}
}

func bookingIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "bookingID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid booking id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "booking not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
