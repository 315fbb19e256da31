package deleteEventBookings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"trekBooker/internal/http-server/handlers/params"
	"trekBooker/internal/lib/access"
	"trekBooker/internal/lib/api/response"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/models"
	"trekBooker/internal/services/cleanup"
	"trekBooker/internal/storage"

	"github.com/go-chi/render"
)

type DeleteResponse struct {
	response.Response
	Deleted int64 `json:"deleted"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsDeleter
type BookingsDeleter interface {
	DeleteEventBookings(ctx context.Context, admin access.Admin, ref models.EventRef, force bool) (int64, error)
}

func New(log *slog.Logger, deleter BookingsDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.deleteEventBookings.New"

		log := log.With(slog.String("op", op))

		admin, ok := access.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		ref, err := params.EventRef(r)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		force := false
		if raw := r.URL.Query().Get("force"); raw != "" {
			force, err = strconv.ParseBool(raw)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid force flag"))
				return
			}
		}

		log = log.With(slog.String("event", ref.String()), slog.Bool("force", force))

		deleted, err := deleter.DeleteEventBookings(r.Context(), admin, ref, force)
		if err != nil {
			var paidErr *cleanup.PaidBookingsError

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, cleanup.ErrEventStillActive):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is still active, deactivate it first"))
			case errors.Is(err, cleanup.ErrEventNotEnded):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event has not ended yet"))
			case errors.As(err, &paidErr):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.ErrorWithDetails("event has paid bookings", map[string]any{
					"paidBookings": paidErr.Count,
					"hint":         "export the paid bookings for your records, then repeat with force=true",
				}))
			default:
				log.Error("failed to delete event bookings", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete event bookings"))
			}
			return
		}

		log.Info("event bookings deleted", slog.Int64("deleted", deleted))

		render.JSON(w, r, DeleteResponse{
			Response: response.OK(),
			Deleted:  deleted,
		})
	}
}
