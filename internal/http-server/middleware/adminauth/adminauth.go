package adminauth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"trekBooker/internal/lib/access"
	"trekBooker/internal/lib/api/response"
)

const HeaderAdminKey = "X-Admin-Key"

// New rejects requests without a valid admin key and stores the admin capability in the
// request context for the handlers behind it.
func New(log *slog.Logger, adminKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/adminauth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			admin, ok := access.Authorize(adminKey, r.Header.Get(HeaderAdminKey))
			if !ok {
				log.Warn("admin request rejected",
					slog.String("path", r.URL.Path),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			next.ServeHTTP(w, r.WithContext(access.NewContext(r.Context(), admin)))
		}

		return http.HandlerFunc(fn)
	}
}
