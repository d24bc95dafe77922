package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Spigel00/work-force-matchup/internal/app"
	"github.com/Spigel00/work-force-matchup/internal/middleware"
	"github.com/Spigel00/work-force-matchup/internal/models"
)

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// actorOf resolves the bearer user against the store so that deleted or
// unknown users are anonymous.
func actorOf(r *http.Request, a *app.App) *models.User {
	claimed, ok := middleware.ActorFrom(r.Context())
	if !ok {
		return nil
	}
	u, ok := a.GetUser(claimed.ID)
	if !ok {
		return nil
	}
	return &u
}
