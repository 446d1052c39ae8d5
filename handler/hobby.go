package handler

import (
	"fmt"
	"net/http"

	"golang.org/x/exp/slog"
)

type HobbyAPI struct {
	planner Planner
	logger  *slog.Logger
}

func NewHobbyAPI(planner Planner, logger *slog.Logger) *HobbyAPI {
	return &HobbyAPI{
		planner: planner,
		logger:  logger,
	}
}

func (h *HobbyAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sub, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodGet && sub == "":
		h.Resolve(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the hobby api", r.Method, sub))
	}
}

// Resolve answers with the resolution for ?q=, valid or not.
func (h *HobbyAPI) Resolve(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("q")
	res := h.planner.ValidateHobby(raw)
	h.logger.Info("resolved hobby", slog.String("raw", raw), slog.String("hobby", res.Hobby), slog.Bool("valid", res.IsValid))

	JSON(w, http.StatusOK, res)
}
