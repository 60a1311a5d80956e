package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stellarlinkco/interview-coach/internal/config"
	"github.com/stellarlinkco/interview-coach/internal/question"
	"github.com/stellarlinkco/interview-coach/internal/store"
)

func TestNewServerRequiresAuthConfiguration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("INTERVIEW_API_KEY", "")
	t.Setenv("INTERVIEW_DISABLE_AUTH", "")

	st, err := store.Open(&config.Config{})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if _, err := NewServer(&config.Config{}, st, question.DefaultBank(nil), nil); err == nil {
		t.Fatalf("expected auth configuration error")
	}
}

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("INTERVIEW_API_KEY", "sekrit")
	t.Setenv("INTERVIEW_DISABLE_AUTH", "")

	st, err := store.Open(&config.Config{})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	s, err := NewServer(&config.Config{}, st, question.DefaultBank(nil), nil)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("without key: got %d want %d", rec.Code, http.StatusUnauthorized)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-API-Key", "sekrit")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("with key: got %d want %d", rec.Code, http.StatusOK)
	}
}

func TestRunNilServer(t *testing.T) {
	t.Parallel()

	var s *Server
	if err := s.Run(":0"); err == nil {
		t.Fatalf("expected error for nil server")
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("INTERVIEW_API_KEY", "")
	t.Setenv("INTERVIEW_DISABLE_AUTH", "true")
	t.Setenv("INTERVIEW_CORS_ORIGINS", "https://coach.example.com")

	st, err := store.Open(&config.Config{})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	s, err := NewServer(&config.Config{}, st, question.DefaultBank(nil), nil)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sessions", nil)
	req.Header.Set("Origin", "https://coach.example.com")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status: got %d want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://coach.example.com" {
		t.Fatalf("allow-origin: got %q", got)
	}
}
