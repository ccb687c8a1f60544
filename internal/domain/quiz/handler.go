package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, questions []Question) {
	r.Get("/api/quiz", getQuizHandler(questions))
}

type quizResponse struct {
	Questions []Question `json:"questions"`
}

// getQuizHandler godoc
// @Summary Preguntas del quiz
// @Description Devuelve las preguntas en orden. La primera (petType) decide si el quiz sigue.
// @Tags quiz
// @Produce json
// @Success 200 {object} quizResponse
// @Router /api/quiz [get]
func getQuizHandler(questions []Question) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, quizResponse{Questions: questions})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
