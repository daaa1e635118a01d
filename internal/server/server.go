package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"shipcalc/internal/shipping"
)

type Server struct {
	calc *shipping.Calculator
	log  *logrus.Logger
}

// New wires the HTTP boundary around a recommendation calculator.
func New(calc *shipping.Calculator) http.Handler {
	return NewWithLogger(calc, logrus.StandardLogger())
}

// NewWithLogger allows injecting the logger, mainly for tests.
func NewWithLogger(calc *shipping.Calculator, log *logrus.Logger) http.Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Server{calc: calc, log: log}
	r := chi.NewRouter()
	// Observability: Request ID and basic logger
	r.Use(requestIDMiddleware)
	r.Use(middleware.Logger)
	r.Get("/healthz", s.handleHealth)
	r.Post("/shipping/recommend", s.handleRecommend)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorJSON(w, http.StatusNotFound, "resource_not_found", "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleRecommend validates the raw payload, then asks the calculator for
// matching options. Validation failures answer 400 with the accumulated
// error strings; engine failures answer 500 with a generic reason while the
// cause is logged here with full detail.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeResultJSON(w, http.StatusBadRequest, &shipping.Result{
			Groups:         []shipping.Group{},
			InvalidReasons: []string{shipping.ErrBodyRequired},
		})
		return
	}

	dims, validation := shipping.ValidateRequest(body)
	if !validation.IsValid {
		writeResultJSON(w, http.StatusBadRequest, &shipping.Result{
			Groups:         []shipping.Group{},
			InvalidReasons: validation.Errors,
		})
		return
	}

	result, err := s.calc.Recommend(r.Context(), dims)
	if err != nil {
		cause := err
		var calcErr *shipping.CalculationError
		if errors.As(err, &calcErr) {
			cause = calcErr.Unwrap()
		}
		s.log.WithError(cause).Error("shipping recommendation failed")
		writeResultJSON(w, http.StatusInternalServerError, &shipping.Result{
			Groups:         []shipping.Group{},
			InvalidReasons: []string{err.Error()},
		})
		return
	}
	writeResultJSON(w, http.StatusOK, result)
}

func writeResultJSON(w http.ResponseWriter, status int, result *shipping.Result) {
	if result.Groups == nil {
		result.Groups = []shipping.Group{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(result)
}

// writeErrorJSON writes a standardized JSON error response:
// {"error": {"code": string, "message": string}}
func writeErrorJSON(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// requestIDMiddleware ensures X-Request-ID is set on the response.
// If provided in the request header, it is propagated; otherwise a UUID is generated.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := strings.TrimSpace(r.Header.Get("X-Request-ID"))
		if rid == "" {
			rid = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r)
	})
}
