package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/observability"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := log.New(io.Discard)
	return New(pipeline.NewRunner(logger), logger, Config{
		Addr:     ":0",
		Defaults: pipeline.Options{Rows: 8, Columns: 8},
	})
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || body.Version == "" {
		t.Errorf("body = %+v", body)
	}
}

func TestMazeJSON(t *testing.T) {
	rec := get(t, newTestServer(t), "/v1/maze?rows=5&columns=6&seed=42&format=json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := rec.Header().Get(HeaderSeed); got != "42" {
		t.Errorf("%s = %q, want 42", HeaderSeed, got)
	}
	if rec.Header().Get(HeaderRun) == "" {
		t.Errorf("%s header missing", HeaderRun)
	}

	var body struct {
		ID      string `json:"id"`
		Rows    int    `json:"rows"`
		Columns int    `json:"columns"`
		Path    []struct {
			Row int `json:"row"`
			Col int `json:"col"`
		} `json:"path"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Rows != 5 || body.Columns != 6 {
		t.Errorf("dimensions = %dx%d, want 5x6", body.Rows, body.Columns)
	}
	if body.ID != rec.Header().Get(HeaderRun) {
		t.Errorf("id %q does not match run header", body.ID)
	}
	if n := len(body.Path); n < 5+6-1 {
		t.Fatalf("path length %d shorter than Manhattan distance", n)
	}
	last := body.Path[len(body.Path)-1]
	if body.Path[0].Row != 0 || body.Path[0].Col != 0 || last.Row != 4 || last.Col != 5 {
		t.Errorf("path runs %v to %v", body.Path[0], last)
	}
}

func TestMazeDefaultsToSVG(t *testing.T) {
	rec := get(t, newTestServer(t), "/v1/maze")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Errorf("body does not start with <svg: %.40q", rec.Body.String())
	}
	if rec.Header().Get(HeaderSeed) == "0" {
		t.Error("random seed should be reported, got 0")
	}
}

func TestMazeSeedIsReproducible(t *testing.T) {
	s := newTestServer(t)
	a := get(t, s, "/v1/maze?seed=7&format=txt")
	b := get(t, s, "/v1/maze?seed=7&format=txt")
	if a.Code != http.StatusOK || b.Code != http.StatusOK {
		t.Fatalf("status = %d, %d", a.Code, b.Code)
	}
	if a.Body.String() != b.Body.String() {
		t.Error("same seed produced different mazes")
	}
	if a.Header().Get(HeaderRun) == b.Header().Get(HeaderRun) {
		t.Error("run IDs should differ between requests")
	}
}

func TestMazeErrors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		status int
		code   errors.Code
	}{
		{"zero rows", "rows=0", http.StatusBadRequest, errors.ErrCodeInvalidDimensions},
		{"negative columns", "columns=-3", http.StatusBadRequest, errors.ErrCodeInvalidDimensions},
		{"too large", "rows=501", http.StatusBadRequest, errors.ErrCodeInvalidDimensions},
		{"non-numeric rows", "rows=abc", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"negative seed", "seed=-1", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad visualize", "visualize=maybe", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"unknown mode", "mode=astar", http.StatusBadRequest, errors.ErrCodeInvalidMode},
		{"unknown format", "format=gif", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, "/v1/maze?"+tt.query)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			var body errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code != string(tt.code) {
				t.Errorf("code = %q, want %q", body.Code, tt.code)
			}
			if body.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}

func TestCompare(t *testing.T) {
	rec := get(t, newTestServer(t), "/v1/maze/compare?rows=10&columns=12&seed=99")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var body compareResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Seed != 99 || body.Rows != 10 || body.Columns != 12 {
		t.Errorf("body = %+v", body)
	}
	if body.PathLength < 10+12-1 {
		t.Errorf("path length %d too short", body.PathLength)
	}
	if body.BFS.Visited < body.PathLength || body.DFS.Visited < body.PathLength {
		t.Errorf("visited fewer cells than the path: %+v", body)
	}
	if body.BFS.Visited > 10*12 || body.DFS.Visited > 10*12 {
		t.Errorf("visited more cells than exist: %+v", body)
	}
}

func TestNotFound(t *testing.T) {
	rec := get(t, newTestServer(t), "/v2/nothing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	requests  []string
	responses []int
}

func (h *recordingHTTPHooks) OnRequest(_ context.Context, method, path string) {
	h.requests = append(h.requests, method+" "+path)
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.responses = append(h.responses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	s := newTestServer(t)
	get(t, s, "/healthz")
	get(t, s, "/v1/maze?rows=0")

	want := []string{"GET /healthz", "GET /v1/maze"}
	if len(hooks.requests) != len(want) {
		t.Fatalf("requests = %v, want %v", hooks.requests, want)
	}
	for i := range want {
		if hooks.requests[i] != want[i] {
			t.Errorf("request %d = %q, want %q", i, hooks.requests[i], want[i])
		}
	}
	if len(hooks.responses) != 2 || hooks.responses[0] != 200 || hooks.responses[1] != 400 {
		t.Errorf("responses = %v, want [200 400]", hooks.responses)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodeInvalidMode, "x"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeNoPathFound, "x"), http.StatusUnprocessableEntity},
		{errors.New(errors.ErrCodeDisconnectedPath, "x"), http.StatusUnprocessableEntity},
		{errors.New(errors.ErrCodeUnsupported, "x"), http.StatusNotImplemented},
		{errors.New(errors.ErrCodeInternal, "x"), http.StatusInternalServerError},
		{context.Canceled, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s := newTestServer(t)
	s.addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("ListenAndServe() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestMazeCache(t *testing.T) {
	logger := log.New(io.Discard)
	store := cache.NewMemoryCache(8)
	s := New(pipeline.NewRunner(logger), logger, Config{
		Defaults: pipeline.Options{Rows: 6, Columns: 6},
		Cache:    store,
	})

	first := get(t, s, "/v1/maze?seed=5&format=txt")
	second := get(t, s, "/v1/maze?seed=5&format=txt")
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("status = %d, %d", first.Code, second.Code)
	}
	if got := first.Header().Get(HeaderCache); got != "miss" {
		t.Errorf("first request cache = %q, want miss", got)
	}
	if got := second.Header().Get(HeaderCache); got != "hit" {
		t.Errorf("second request cache = %q, want hit", got)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached body differs")
	}
	if first.Header().Get(HeaderRun) != second.Header().Get(HeaderRun) {
		t.Error("cached response should report the original run")
	}
	if first.Header().Get("ETag") == "" || first.Header().Get("ETag") != second.Header().Get("ETag") {
		t.Errorf("ETags %q and %q", first.Header().Get("ETag"), second.Header().Get("ETag"))
	}

	// Unseeded requests are random and never cached.
	for _, target := range []string{"/v1/maze?format=txt", "/v1/maze?format=txt&seed=0", "/v1/maze?format=txt&seed=00"} {
		for range 2 {
			rec := get(t, s, target)
			if got := rec.Header().Get(HeaderCache); got != "miss" {
				t.Errorf("%s: cache = %q, want miss", target, got)
			}
		}
	}
	if store.Len() != 2 {
		t.Errorf("cache holds %d entries, want body and run ID", store.Len())
	}
}

func TestSeeded(t *testing.T) {
	tests := []struct {
		name        string
		defaultSeed uint64
		query       string
		want        bool
	}{
		{"no seed", 0, "", false},
		{"explicit seed", 0, "seed=7", true},
		{"zero seed", 0, "seed=0", false},
		{"default seed", 3, "", true},
		{"zero overrides default", 3, "seed=0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Server{defaults: pipeline.Options{Seed: tt.defaultSeed}}
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			if got := s.seeded(q); got != tt.want {
				t.Errorf("seeded(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMazeNotModified(t *testing.T) {
	s := newTestServer(t)
	first := get(t, s, "/v1/maze?seed=8&format=txt")

	req := httptest.NewRequest(http.MethodGet, "/v1/maze?seed=8&format=txt", nil)
	req.Header.Set("If-None-Match", first.Header().Get("ETag"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("304 response has a body of %d bytes", rec.Body.Len())
	}
}
