package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Spigel00/work-force-matchup/internal/app"
	"github.com/Spigel00/work-force-matchup/internal/http/respond"
	"github.com/Spigel00/work-force-matchup/internal/models"
)

// EmployersHandler serves employer profiles and their postings.
type EmployersHandler struct {
	app *app.App
}

// NewEmployersHandler constructs the handler.
func NewEmployersHandler(a *app.App) *EmployersHandler {
	return &EmployersHandler{app: a}
}

// Register attaches employer routes to the router.
func (h *EmployersHandler) Register(r chi.Router) {
	r.Get("/employers", h.handleList)
	r.Get("/employers/{id}", h.handleGet)
	r.Put("/employers/{id}", h.handleUpdate)
	r.Get("/employers/{id}/jobs", h.handleJobs)
}

func (h *EmployersHandler) handleList(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "employers", h.app.Employers())
}

func (h *EmployersHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	p, ok := h.app.GetEmployerProfile(chi.URLParam(r, "id"))
	if !ok {
		respond.Error(w, http.StatusNotFound, "employer not found")
		return
	}
	respond.JSON(w, http.StatusOK, "employer", p)
}

func (h *EmployersHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var p models.EmployerProfile
	if err := decodeJSON(w, r, &p); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	updated, err := h.app.UpdateEmployerProfile(r.Context(), actorOf(r, h.app), chi.URLParam(r, "id"), p)
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Profile updated", updated)
}

func (h *EmployersHandler) handleJobs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.app.GetEmployerProfile(id); !ok {
		respond.Error(w, http.StatusNotFound, "employer not found")
		return
	}
	respond.JSON(w, http.StatusOK, "employer jobs", h.app.JobsByEmployer(id))
}
