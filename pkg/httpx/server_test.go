package httpx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func passthrough(next http.Handler) http.Handler { return next }

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"*", []string{"*"}},
		{"https://a.example.com,https://b.example.com", []string{"https://a.example.com", "https://b.example.com"}},
		{" https://a.example.com , ", []string{"https://a.example.com"}},
		{"", []string{"*"}},
	}
	for _, tt := range tests {
		if got := parseOrigins(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseOrigins(%q)=%v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewRouter_ServesHandlers(t *testing.T) {
	r := NewRouter(
		ServerConfig{ServiceName: "test", IsDevelopment: true, CORSAllowedOrigins: "*"},
		passthrough, passthrough, passthrough, passthrough,
	)
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequestBodyLimit_RejectsOversizedBody(t *testing.T) {
	limited := RequestBodyLimit(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	limited.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("well over four bytes")))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	limited.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ok")))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for small body, got %d", w.Code)
	}
}

func TestNewServer_Timeouts(t *testing.T) {
	srv := NewServer(":0", http.NewServeMux())
	if srv.ReadTimeout == 0 || srv.WriteTimeout == 0 || srv.IdleTimeout == 0 {
		t.Fatal("expected non-zero server timeouts")
	}
	if srv.MaxHeaderBytes != 1<<20 {
		t.Fatalf("expected 1 MB header cap, got %d", srv.MaxHeaderBytes)
	}
}
