package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"vahis-pet-care-hub/internal/router"
)

// stubOracle recomienda siempre el primer id que aparece en el prompt.
type stubOracle struct {
	mu    sync.Mutex
	calls int
	reply string
}

func (o *stubOracle) Generate(ctx context.Context, prompt string) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	return o.reply, nil
}

func (o *stubOracle) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}

func newServer(t *testing.T, o *stubOracle, perMinute int) *httptest.Server {
	t.Helper()
	h, err := router.NewRouter(router.Options{
		Oracle: o,
		Match: router.MatchOptions{
			OracleTimeout: 2 * time.Second,
			RatePerMinute: perMinute,
			RateBurst:     perMinute,
		},
		Auth: router.AuthOptions{
			SessionTTL:    time.Hour,
			AdminUsername: "admin",
			AdminPassword: "secret123",
		},
		SeedCatalog: true,
	})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_PublicEndpoints(t *testing.T) {
	ts := newServer(t, &stubOracle{}, 0)

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("health: %d %q", st, body)
	}

	st, body = doReq(t, ts.URL, "GET", "/api/pets", "", nil)
	if st != http.StatusOK {
		t.Fatalf("list pets: %d body=%s", st, body)
	}
	var list []map[string]any
	mustJSON(t, body, &list)
	if len(list) != 6 {
		t.Fatalf("expected 6 seeded pets, got %d", len(list))
	}

	st, body = doReq(t, ts.URL, "GET", "/api/products", "", nil)
	if st != http.StatusOK {
		t.Fatalf("list products: %d body=%s", st, body)
	}

	st, body = doReq(t, ts.URL, "GET", "/api/quiz", "", nil)
	if st != http.StatusOK {
		t.Fatalf("quiz: %d body=%s", st, body)
	}
	var quiz struct {
		Questions []struct {
			Key string `json:"key"`
		} `json:"questions"`
	}
	mustJSON(t, body, &quiz)
	if len(quiz.Questions) == 0 || quiz.Questions[0].Key != "petType" {
		t.Fatalf("unexpected quiz: %+v", quiz)
	}

	st, body = doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "pawprint_http_requests_total") {
		t.Fatalf("metrics: %d", st)
	}
}

func TestHTTP_AdminFlow(t *testing.T) {
	ts := newServer(t, &stubOracle{}, 0)

	// Sin sesión no se puede escribir
	st, _ := doReq(t, ts.URL, "POST", "/api/pets", "", newPet())
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "GET", "/api/bookings", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 listing bookings, got %d", st)
	}

	// Reserva pública
	st, body := doReq(t, ts.URL, "POST", "/api/bookings", "", map[string]any{
		"name":   "Rahul",
		"phone":  "+91 98765 43210",
		"type":   "Visit",
		"detail": "Barney",
		"time":   "Saturday 11am",
	})
	if st != http.StatusCreated {
		t.Fatalf("create booking: %d body=%s", st, body)
	}

	// Login inválido
	st, _ = doReq(t, ts.URL, "POST", "/api/login", "", map[string]any{"username": "admin", "password": "nope"})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 bad password, got %d", st)
	}

	token := login(t, ts.URL, "admin", "secret123")

	st, body = doReq(t, ts.URL, "GET", "/api/user", token, nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"username":"admin"`) {
		t.Fatalf("current user: %d body=%s", st, body)
	}

	st, body = doReq(t, ts.URL, "POST", "/api/pets", token, newPet())
	if st != http.StatusCreated {
		t.Fatalf("create pet: %d body=%s", st, body)
	}
	var created struct {
		ID int64 `json:"id"`
	}
	mustJSON(t, body, &created)
	if created.ID != 7 {
		t.Fatalf("expected id 7 after seed, got %d", created.ID)
	}

	st, body = doReq(t, ts.URL, "GET", "/api/bookings", token, nil)
	if st != http.StatusOK {
		t.Fatalf("list bookings: %d body=%s", st, body)
	}
	var bookings []map[string]any
	mustJSON(t, body, &bookings)
	if len(bookings) != 1 || bookings[0]["status"] != "Pending" {
		t.Fatalf("unexpected bookings: %v", bookings)
	}

	// Logout invalida el token
	st, _ = doReq(t, ts.URL, "POST", "/api/logout", token, nil)
	if st != http.StatusOK {
		t.Fatalf("logout: %d", st)
	}
	st, _ = doReq(t, ts.URL, "GET", "/api/user", token, nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", st)
	}
}

func TestHTTP_MatchPet(t *testing.T) {
	o := &stubOracle{reply: "```json\n{\"petId\": 1, \"matchReason\": \"Barney loves kids.\", \"careTips\": [\"Daily walks\", \"Regular grooming\"]}\n```"}
	ts := newServer(t, o, 0)

	prefs := map[string]any{"preferences": map[string]any{
		"petType":     "Dog",
		"housing":     "House with yard",
		"temperament": "Playful",
		"kids":        "Yes",
	}}

	st, body := doReq(t, ts.URL, "POST", "/api/match-pet", "", prefs)
	if st != http.StatusOK {
		t.Fatalf("match: %d body=%s", st, body)
	}
	var res struct {
		PetID           int64    `json:"petId"`
		CareTips        []string `json:"careTips"`
		CandidatesFound int      `json:"candidatesFound"`
		Pet             struct {
			Name string `json:"name"`
		} `json:"pet"`
	}
	mustJSON(t, body, &res)
	// 5 perros en el seed, uno reservado
	if res.PetID != 1 || res.Pet.Name != "Barney" || res.CandidatesFound != 4 || len(res.CareTips) != 2 {
		t.Fatalf("unexpected match: %+v", res)
	}

	// El único gato se vende: sin candidatos y sin llamar al oráculo
	token := login(t, ts.URL, "admin", "secret123")
	st, body = doReq(t, ts.URL, "PATCH", "/api/pets/2", token, map[string]any{"status": "Sold"})
	if st != http.StatusOK {
		t.Fatalf("mark sold: %d body=%s", st, body)
	}

	before := o.count()
	st, body = doReq(t, ts.URL, "POST", "/match", "", map[string]any{"preferences": map[string]any{"petType": "Cat"}})
	if st != http.StatusOK {
		t.Fatalf("no candidates: %d body=%s", st, body)
	}
	var nc struct {
		Error string `json:"error"`
	}
	mustJSON(t, body, &nc)
	if nc.Error == "" {
		t.Fatalf("expected error message, got %s", body)
	}
	if o.count() != before {
		t.Fatalf("oracle must not be called without candidates")
	}

	st, _ = doReq(t, ts.URL, "POST", "/api/match-pet", "", map[string]any{})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without preferences, got %d", st)
	}
}

func TestHTTP_MatchPetRateLimited(t *testing.T) {
	o := &stubOracle{reply: `{"petId": 2, "matchReason": "Calm.", "careTips": ["Brush", "Play"]}`}
	ts := newServer(t, o, 2)

	prefs := map[string]any{"preferences": map[string]any{"petType": "Cat"}}
	for i := 0; i < 2; i++ {
		if st, body := doReq(t, ts.URL, "POST", "/api/match-pet", "", prefs); st != http.StatusOK {
			t.Fatalf("request %d: %d body=%s", i, st, body)
		}
	}

	st, _ := doReq(t, ts.URL, "POST", "/api/match-pet", "", prefs)
	if st != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", st)
	}
	if o.count() != 2 {
		t.Fatalf("expected 2 oracle calls, got %d", o.count())
	}
}

func newPet() map[string]any {
	return map[string]any{
		"name":     "Bruno",
		"breed":    "Labrador",
		"type":     "Dog",
		"ageWeeks": 9,
		"gender":   "Male",
		"priceMin": 20000,
		"priceMax": 25000,
		"status":   "Available",
		"imageUrl": "https://img/bruno.jpg",
	}
}

func login(t *testing.T, baseURL, username, password string) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/api/login", "", map[string]any{
		"username": username,
		"password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("login: %d body=%s", st, body)
	}
	var out struct {
		Token string `json:"token"`
	}
	mustJSON(t, body, &out)
	if out.Token == "" {
		t.Fatalf("empty token")
	}
	return out.Token
}

func doReq(t *testing.T, baseURL, method, path, token string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}

func mustJSON(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal %s: %v", string(b), err)
	}
}
