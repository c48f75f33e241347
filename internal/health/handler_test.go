// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

var (
	healthy = CheckerFunc(func(context.Context) error { return nil })
	failing = CheckerFunc(func(context.Context) error { return errors.New("down") })
)

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		deps       []Dependency
		wantCode   int
		wantStatus string
	}{
		{
			name:       "all healthy",
			deps:       []Dependency{{Name: "sessions", Checker: healthy}},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
		{
			name:       "required failing",
			deps:       []Dependency{{Name: "sessions", Checker: failing}},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded",
		},
		{
			name: "optional failing",
			deps: []Dependency{
				{Name: "sessions", Checker: healthy},
				{Name: "redis", Checker: failing, Optional: true},
			},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
		{
			name:       "nil checker",
			deps:       []Dependency{{Name: "sessions"}},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(tt.deps...), "/readyz")

			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", rec.Code, tt.wantCode)
			}

			var resp ReadinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if len(resp.Checks) != len(tt.deps) {
				t.Errorf("got %d checks, want %d", len(resp.Checks), len(tt.deps))
			}
		})
	}
}

func TestShutdown(t *testing.T) {
	h := NewHandler(Dependency{Name: "sessions", Checker: healthy})
	h.SetShutdown(true)

	for _, path := range []string{"/healthz", "/livez", "/readyz"} {
		if rec := serve(h, path); rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s code = %d, want 503", path, rec.Code)
		}
	}
}

func TestNotReady(t *testing.T) {
	h := NewHandler()
	h.SetReady(false)

	if rec := serve(h, "/readyz"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("code = %d, want 503", rec.Code)
	}
	if rec := serve(h, "/livez"); rec.Code != http.StatusOK {
		t.Errorf("liveness code = %d, want 200", rec.Code)
	}
}
