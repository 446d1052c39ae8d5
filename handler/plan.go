package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"ewintr.nl/hobbyplan/model"
	"ewintr.nl/hobbyplan/process"
	"ewintr.nl/hobbyplan/storage"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const maxBodyBytes = 64 << 10

type PlanAPI struct {
	planner Planner
	logger  *slog.Logger
}

func NewPlanAPI(planner Planner, logger *slog.Logger) *PlanAPI {
	return &PlanAPI{
		planner: planner,
		logger:  logger,
	}
}

func (p *PlanAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	planID, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodPost && planID == "":
		p.Create(w, r)
	case r.Method == http.MethodGet && planID != "":
		p.Get(w, r, planID)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the plan api", r.Method, planID))
	}
}

func (p *PlanAPI) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		p.returnErr(r.Context(), w, http.StatusBadRequest, "could not read request body", err)
		return
	}
	var req model.PlanRequest
	if err := json.Unmarshal(body, &req); err != nil {
		p.returnErr(r.Context(), w, http.StatusBadRequest, "could not parse request body", err)
		return
	}

	plan, err := p.planner.GeneratePlan(r.Context(), req)
	var invalid *model.InvalidHobbyError
	switch {
	case errors.As(err, &invalid):
		Error(w, http.StatusUnprocessableEntity, invalid.Resolution.Message, err, invalid.Resolution)
		return
	case errors.Is(err, process.ErrInvalidRequest):
		p.returnErr(r.Context(), w, http.StatusBadRequest, "invalid request", err)
		return
	case err != nil:
		p.returnErr(r.Context(), w, http.StatusInternalServerError, "could not generate plan", err)
		return
	}

	JSON(w, http.StatusCreated, plan)
}

func (p *PlanAPI) Get(w http.ResponseWriter, r *http.Request, planID string) {
	id, err := uuid.Parse(planID)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid plan id", err)
		return
	}

	plan, err := p.planner.FindPlan(r.Context(), id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		Error(w, http.StatusNotFound, "plan not found", err)
		return
	case err != nil:
		p.returnErr(r.Context(), w, http.StatusInternalServerError, "could not find plan", err)
		return
	}

	JSON(w, http.StatusOK, plan)
}

func (p *PlanAPI) returnErr(_ context.Context, w http.ResponseWriter, status int, message string, err error, details ...any) {
	p.logger.Error(message, slog.String("err", err.Error()), slog.String("details", fmt.Sprintf("%+v", details)))
	Error(w, status, message, err, details...)
}
