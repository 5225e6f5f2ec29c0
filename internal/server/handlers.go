package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/matzehuels/mazewalk/pkg/buildinfo"
	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
	"github.com/matzehuels/mazewalk/pkg/render"
)

// Response headers identifying the run behind a maze.
const (
	HeaderRun   = "X-Mazewalk-Run"
	HeaderSeed  = "X-Mazewalk-Seed"
	HeaderCache = "X-Mazewalk-Cache"
)

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

// maze generates, solves and renders one maze in a single format.
func (s *Server) maze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, err := s.options(q)
	if err != nil {
		s.writeError(w, err)
		return
	}

	format := opts.Formats[0]
	var key string
	if s.seeded(q) {
		key = cache.ArtifactKey(cache.ArtifactKeyOpts{
			Rows:      opts.Rows,
			Columns:   opts.Columns,
			Seed:      opts.Seed,
			Mode:      opts.Mode,
			Format:    format,
			Size:      opts.Size,
			Visualize: opts.Visualize,
		})
	}

	body, runID, hit := s.cached(r, key)
	if !hit {
		result, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			s.writeError(w, err)
			return
		}
		body, runID = result.Artifacts[format], result.ID
		s.store(r, key, body, runID)
	}

	etag := `"` + cache.Hash(body) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set(HeaderRun, runID)
	w.Header().Set(HeaderSeed, strconv.FormatUint(opts.Seed, 10))
	if hit {
		w.Header().Set(HeaderCache, "hit")
	} else {
		w.Header().Set(HeaderCache, "miss")
	}
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", render.ContentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// seeded reports whether the request pins a seed. Seed 0 asks for a random
// maze, which is never requested again and so is not worth caching.
func (s *Server) seeded(q url.Values) bool {
	v := q.Get("seed")
	if v == "" {
		return s.defaults.Seed != 0
	}
	seed, err := strconv.ParseUint(v, 10, 64)
	return err == nil && seed != 0
}

// cached looks up a rendering and the run that produced it. Cache errors are
// treated as misses.
func (s *Server) cached(r *http.Request, key string) ([]byte, string, bool) {
	if key == "" {
		return nil, "", false
	}
	body, ok, err := s.cache.Get(r.Context(), key)
	if err != nil || !ok {
		return nil, "", false
	}
	run, ok, err := s.cache.Get(r.Context(), key+":run")
	if err != nil || !ok {
		return nil, "", false
	}
	return body, string(run), true
}

func (s *Server) store(r *http.Request, key string, body []byte, runID string) {
	if key == "" {
		return
	}
	if err := s.cache.Set(r.Context(), key, body, s.cacheTTL); err != nil {
		s.logger.Warn("cache write failed", "error", err)
		return
	}
	if err := s.cache.Set(r.Context(), key+":run", []byte(runID), s.cacheTTL); err != nil {
		s.logger.Warn("cache write failed", "error", err)
	}
}

// compare solves one maze with both modes.
func (s *Server) compare(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}

	cmp, err := s.runner.Compare(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set(HeaderRun, cmp.ID)
	w.Header().Set(HeaderSeed, strconv.FormatUint(cmp.Seed, 10))
	writeJSON(w, http.StatusOK, compareResponse{
		ID:         cmp.ID,
		Seed:       cmp.Seed,
		Rows:       cmp.Grid.Rows(),
		Columns:    cmp.Grid.Columns(),
		PathLength: cmp.BFS.Path.Len(),
		BFS:        modeResult{Visited: cmp.BFS.Visited()},
		DFS:        modeResult{Visited: cmp.DFS.Visited()},
	})
}

// options overlays query parameters on the server defaults and validates the
// result. Exactly one format is rendered per request.
func (s *Server) options(q url.Values) (pipeline.Options, error) {
	opts := s.defaults
	opts.Formats = nil
	opts.OnVisit = nil

	ints := []struct {
		name string
		dst  *int
		code errors.Code
	}{
		{"rows", &opts.Rows, errors.ErrCodeInvalidDimensions},
		{"columns", &opts.Columns, errors.ErrCodeInvalidDimensions},
		{"size", &opts.Size, errors.ErrCodeInvalidInput},
	}
	for _, p := range ints {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s must be an integer, got %q", p.name, v)
		}
		// Zero would silently select the default.
		if n < 1 {
			return opts, errors.New(p.code, "%s must be at least 1, got %d", p.name, n)
		}
		*p.dst = n
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "seed must be an unsigned integer, got %q", v)
		}
		opts.Seed = seed
	}
	if v := q.Get("visualize"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "visualize must be a boolean, got %q", v)
		}
		opts.Visualize = b
	}
	if v := q.Get("mode"); v != "" {
		opts.Mode = v
	}

	format := q.Get("format")
	if format == "" {
		format = render.FormatSVG
	}
	opts.Formats = []string{format}

	if err := opts.ValidateForGenerate(); err != nil {
		return opts, err
	}
	if err := opts.ValidateForSearch(); err != nil {
		return opts, err
	}
	return opts, opts.ValidateForRender()
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.IsBrokenMaze(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
