package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func TestInstrumentHandler_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/api/pets/{petID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", Handler())

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/pets/42", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rr.Code)
	}

	mr := httptest.NewRecorder()
	r.ServeHTTP(mr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(mr.Body)
	out := string(body)

	if !strings.Contains(out, `route="/api/pets/{petID}"`) {
		t.Fatalf("expected route pattern label in metrics output")
	}
	if strings.Contains(out, `route="/api/pets/42"`) {
		t.Fatalf("raw path must not be used as label")
	}
	if !strings.Contains(out, `status="418"`) {
		t.Fatalf("expected status label 418")
	}
}

func TestRecordMatch(t *testing.T) {
	// No debe hacer panic con valores vacíos.
	RecordMatch("", 0)
	RecordMatch("matched", 150*time.Millisecond)
	RecordRateLimited("")

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	out := rr.Body.String()

	for _, want := range []string{
		`pawprint_match_attempts_total{outcome="matched"}`,
		`pawprint_match_attempts_total{outcome="unknown"}`,
		`pawprint_http_rate_limited_total{route="unknown"}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}
