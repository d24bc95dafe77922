package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Spigel00/work-force-matchup/internal/app"
	"github.com/Spigel00/work-force-matchup/internal/http/respond"
	"github.com/Spigel00/work-force-matchup/internal/models"
	"github.com/Spigel00/work-force-matchup/internal/models/dto"
	"github.com/Spigel00/work-force-matchup/internal/search"
)

// JobsHandler serves job listings, posting and worker recommendations.
type JobsHandler struct {
	app *app.App
}

// NewJobsHandler constructs the handler.
func NewJobsHandler(a *app.App) *JobsHandler {
	return &JobsHandler{app: a}
}

// Register attaches job routes to the router.
func (h *JobsHandler) Register(r chi.Router) {
	r.Get("/jobs", h.handleList)
	r.Post("/jobs", h.handleCreate)
	r.Get("/jobs/{id}", h.handleGet)
	r.Get("/jobs/{id}/recommended-workers", h.handleRecommendedWorkers)
}

func (h *JobsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := search.JobQuery{Text: q.Get("q"), Location: q.Get("location")}
	if raw := strings.TrimSpace(q.Get("type")); raw != "" {
		jt, err := models.ParseJobType(raw)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		query.Type = jt
	}

	var recommendedFor string
	if q.Get("recommended") == "true" {
		actor := actorOf(r, h.app)
		if actor == nil || !actor.IsWorker() {
			respond.Error(w, http.StatusForbidden, "recommended jobs are only available to workers")
			return
		}
		recommendedFor = actor.ID
	}

	respond.JSON(w, http.StatusOK, "jobs", h.app.SearchJobs(query, recommendedFor))
}

func (h *JobsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.JobPostingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validateJob(req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.app.AddJobPostingAs(r.Context(), actorOf(r, h.app), req)
	if err != nil {
		respond.Err(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "Job posted successfully", job)
}

func (h *JobsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	job, ok := h.app.GetJobByID(chi.URLParam(r, "id"))
	if !ok {
		respond.Error(w, http.StatusNotFound, "job not found")
		return
	}
	respond.JSON(w, http.StatusOK, "job", job)
}

func (h *JobsHandler) handleRecommendedWorkers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.app.GetJobByID(id); !ok {
		respond.Error(w, http.StatusNotFound, "job not found")
		return
	}
	respond.JSON(w, http.StatusOK, "recommended workers", h.app.RecommendWorkers(id))
}

func validateJob(req dto.JobPostingRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("title is required")
	}
	if _, err := models.ParseJobType(string(req.JobType)); err != nil {
		return err
	}
	if req.Salary != nil {
		if _, err := models.ParseSalaryType(string(req.Salary.Type)); err != nil {
			return err
		}
	}
	return nil
}
