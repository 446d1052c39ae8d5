package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"strconv"
	"time"

	"ewintr.nl/hobbyplan/metrics"
	"ewintr.nl/hobbyplan/model"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const requestIDHeader = "X-Request-Id"

// Planner is the part of process.Planner the api needs.
type Planner interface {
	ValidateHobby(raw string) model.HobbyResolution
	GeneratePlan(ctx context.Context, req model.PlanRequest) (*model.PlanRecord, error)
	FindPlan(ctx context.Context, id uuid.UUID) (*model.PlanRecord, error)
}

type Server struct {
	apis   map[string]http.Handler
	logger *slog.Logger
}

func NewServer(planner Planner, logger *slog.Logger) *Server {
	return &Server{
		apis: map[string]http.Handler{
			"hobby": NewHobbyAPI(planner, logger),
			"plan":  NewPlanAPI(planner, logger),
		},
		logger: logger,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestPath := r.URL.Path
	requestID := r.Header.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	logger := s.logger.With(slog.String("request_id", requestID))

	head, tail := ShiftPath(r.URL.Path)
	apiName := head
	rec := newRecorder(requestID)
	switch api, ok := s.apis[head]; {
	case head == "":
		apiName = "index"
		Index(rec)
	case !ok:
		apiName = "unknown"
		Error(rec, http.StatusNotFound, "not found", fmt.Errorf("%s is not a valid path", requestPath))
	default:
		r.URL.Path = tail
		rec = serveAPI(api, r, requestID, logger)
	}

	returnResponse(w, rec)

	metrics.HTTPRequests.WithLabelValues(apiName, r.Method, strconv.Itoa(rec.Code)).Inc()
	metrics.HTTPDuration.WithLabelValues(apiName).Observe(time.Since(start).Seconds())
	logger.Info("request served",
		slog.String("method", r.Method),
		slog.String("path", requestPath),
		slog.Int("status", rec.Code),
		slog.Duration("duration", time.Since(start)),
	)
}

// newRecorder collects a response so headers can still be set after the body
// is written.
func newRecorder(requestID string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	rec.Header().Set("Content-Type", "application/json")
	rec.Header().Set(requestIDHeader, requestID)
	return rec
}

func serveAPI(api http.Handler, r *http.Request, requestID string, logger *slog.Logger) (rec *httptest.ResponseRecorder) {
	rec = newRecorder(requestID)
	defer func() {
		if p := recover(); p != nil {
			logger.Error("handler panicked", slog.String("panic", fmt.Sprint(p)))
			rec = newRecorder(requestID)
			Error(rec, http.StatusInternalServerError, "internal error", fmt.Errorf("panic: %v", p))
		}
	}()
	api.ServeHTTP(rec, r)
	return rec
}

func returnResponse(w http.ResponseWriter, rec *httptest.ResponseRecorder) {
	for k, v := range rec.Header() {
		w.Header()[k] = v
	}
	w.WriteHeader(rec.Code)
	_, _ = w.Write(rec.Body.Bytes())
}

// ShiftPath splits off the first component of p, after cleaning it. head
// never contains a slash and tail is always rooted without a trailing slash.
func ShiftPath(p string) (head, tail string) {
	p = path.Clean("/" + p)
	for i := 1; i < len(p); i++ {
		if p[i] == '/' {
			return p[1:i], p[i:]
		}
	}
	return p[1:], "/"
}
