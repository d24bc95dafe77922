package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Spigel00/work-force-matchup/internal/auth"
	"github.com/Spigel00/work-force-matchup/internal/models"
)

type actorKey struct{}

// Authenticate attaches the user named by a valid bearer token to the request
// context. Requests without a usable token continue anonymously.
func Authenticate(tokens *auth.TokenManager, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := tokens.Parse(raw)
			if err != nil {
				logger.Debug("ignoring bearer token", "err", err)
				next.ServeHTTP(w, r)
				return
			}
			user := claims.User()
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), user)))
		})
	}
}

// WithActor returns a context carrying user as the request actor.
func WithActor(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, actorKey{}, user)
}

// ActorFrom returns the authenticated user of the request, if any.
func ActorFrom(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(actorKey{}).(models.User)
	return u, ok
}

func bearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
