package httpclient

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vahis-pet-care-hub/internal/platform/logger"
)

func TestClient_LogsWithoutQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf})
	c := New(0, log)

	if c.Timeout != DefaultTimeout {
		t.Fatalf("expected default timeout, got %s", c.Timeout)
	}

	for _, path := range []string{"/ok?key=secret", "/fail?key=secret"} {
		res, err := c.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		res.Body.Close()
	}

	out := buf.String()
	if strings.Contains(out, "secret") {
		t.Fatalf("query leaked into logs: %s", out)
	}
	if !strings.Contains(out, `"outbound request"`) || !strings.Contains(out, `"outbound request non-2xx"`) {
		t.Fatalf("expected debug and warn entries, got %s", out)
	}
	if !strings.Contains(out, `"status":429`) {
		t.Fatalf("expected status field, got %s", out)
	}
}
