package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Spigel00/work-force-matchup/internal/app"
	"github.com/Spigel00/work-force-matchup/internal/http/respond"
	"github.com/Spigel00/work-force-matchup/internal/models"
	"github.com/Spigel00/work-force-matchup/internal/search"
)

// WorkersHandler serves worker profiles, profile edits and job recommendations.
type WorkersHandler struct {
	app *app.App
}

// NewWorkersHandler constructs the handler.
func NewWorkersHandler(a *app.App) *WorkersHandler {
	return &WorkersHandler{app: a}
}

// Register attaches worker routes to the router.
func (h *WorkersHandler) Register(r chi.Router) {
	r.Get("/workers", h.handleList)
	r.Get("/workers/{id}", h.handleGet)
	r.Put("/workers/{id}", h.handleUpdate)
	r.Get("/workers/{id}/recommended-jobs", h.handleRecommendedJobs)
	r.Get("/skills", h.handleSkills)
}

func (h *WorkersHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := search.WorkerQuery{Text: q.Get("q"), Location: q.Get("location"), Skill: q.Get("skill")}
	respond.JSON(w, http.StatusOK, "workers", h.app.SearchWorkers(query))
}

func (h *WorkersHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	p, ok := h.app.GetWorkerProfile(chi.URLParam(r, "id"))
	if !ok {
		respond.Error(w, http.StatusNotFound, "worker not found")
		return
	}
	respond.JSON(w, http.StatusOK, "worker", p)
}

func (h *WorkersHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var p models.WorkerProfile
	if err := decodeJSON(w, r, &p); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	updated, err := h.app.UpdateWorkerProfile(r.Context(), actorOf(r, h.app), chi.URLParam(r, "id"), p)
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Profile updated", updated)
}

func (h *WorkersHandler) handleRecommendedJobs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.app.GetWorkerProfile(id); !ok {
		respond.Error(w, http.StatusNotFound, "worker not found")
		return
	}
	respond.JSON(w, http.StatusOK, "recommended jobs", h.app.RecommendJobs(id))
}

func (h *WorkersHandler) handleSkills(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "skills", h.app.Skills())
}
