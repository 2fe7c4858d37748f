package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/namegen"
	"github.com/dmitrymomot/namegen/pkg/clientip"
	"github.com/dmitrymomot/namegen/pkg/httpserver"
	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/ratelimiter"
	"github.com/dmitrymomot/namegen/pkg/requestid"
)

const (
	defaultCount = 1
	maxCount     = 100
)

type envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type namesData struct {
	Names []string `json:"names"`
	Mode  string   `json:"mode"`
	Order int      `json:"order"`
}

type namerBox struct{ namegen.Namer }

// service serves names from the current generator. The generator is swapped
// atomically when the corpus is reloaded.
type service struct {
	current atomic.Pointer[namerBox]
	timeout time.Duration
	log     *slog.Logger

	// limiter charges one token per requested name; nil disables limiting.
	limiter    *ratelimiter.Limiter
	trustProxy bool
}

func newService(gen namegen.Namer, timeout time.Duration, log *slog.Logger) *service {
	s := &service{timeout: timeout, log: log}
	s.swap(gen)
	return s
}

func (s *service) withLimiter(l *ratelimiter.Limiter, trustProxy bool) *service {
	s.limiter = l
	s.trustProxy = trustProxy
	return s
}

func (s *service) swap(gen namegen.Namer) {
	s.current.Store(&namerBox{gen})
}

func (s *service) namer() namegen.Namer {
	if b := s.current.Load(); b != nil {
		return b.Namer
	}
	return nil
}

func (s *service) ready(context.Context) error {
	if s.namer() == nil {
		return errors.New("generator not loaded")
	}
	return nil
}

func (s *service) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware(s.trustProxy))
	r.Get("/healthz", httpserver.HealthCheckHandler(s.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(s.log, s.ready))
	r.Get("/names", s.handleNames)
	return r
}

func (s *service) handleNames(w http.ResponseWriter, r *http.Request) {
	count := defaultCount
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxCount {
			writeError(w, http.StatusBadRequest, "invalid_count", "count must be an integer between 1 and "+strconv.Itoa(maxCount))
			return
		}
		count = n
	}

	if s.limiter != nil {
		if count > s.limiter.Capacity() {
			writeError(w, http.StatusBadRequest, "invalid_count", "count must not exceed the rate limit capacity of "+strconv.Itoa(s.limiter.Capacity()))
			return
		}
		res, err := s.limiter.AllowN(r.Context(), clientip.FromContext(r.Context()), count)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		res.SetHeaders(w)
		if !res.Allowed() {
			s.log.InfoContext(r.Context(), "rate limit exceeded", logger.Count(count))
			writeError(w, http.StatusTooManyRequests, "rate_limited", "too many names requested, retry later")
			return
		}
	}

	gen := s.namer()
	if gen == nil {
		writeError(w, http.StatusServiceUnavailable, "not_ready", "generator not loaded")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	start := time.Now()
	names, err := gen.GenerateN(ctx, count)
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded):
		s.log.WarnContext(ctx, "generation timed out", logger.Count(count), logger.Duration(time.Since(start)))
		writeError(w, http.StatusGatewayTimeout, "timeout", "generation did not finish in time")
		return
	case errors.Is(err, namegen.ErrPatternUnsatisfiable):
		writeError(w, http.StatusUnprocessableEntity, "pattern_unsatisfiable", err.Error())
		return
	default:
		s.log.ErrorContext(ctx, "generation failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	s.log.DebugContext(ctx, "names served", logger.Count(len(names)), logger.Duration(time.Since(start)))
	writeJSON(w, http.StatusOK, envelope{Data: namesData{
		Names: names,
		Mode:  gen.Mode().String(),
		Order: gen.Order(),
	}})
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, envelope{Error: &errorBody{Code: code, Message: msg}})
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
