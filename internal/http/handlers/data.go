package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Spigel00/work-force-matchup/internal/app"
	"github.com/Spigel00/work-force-matchup/internal/http/respond"
	"github.com/Spigel00/work-force-matchup/internal/persistence"
)

// DataHandler serves the user directory and the full-data export.
type DataHandler struct {
	app *app.App
}

// NewDataHandler constructs the handler.
func NewDataHandler(a *app.App) *DataHandler {
	return &DataHandler{app: a}
}

// Register attaches data routes to the router.
func (h *DataHandler) Register(r chi.Router) {
	r.Get("/users", h.handleUsers)
	r.Get("/data/export", h.handleExport)
}

func (h *DataHandler) handleUsers(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "users", h.app.Users())
}

func (h *DataHandler) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+persistence.ExportFilename+`"`)
	if err := h.app.ExportData(r.Context(), w); err != nil {
		slog.Error("export failed", "err", err)
	}
}
