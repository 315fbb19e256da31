package eventBookings

import (
	"context"
	"log/slog"
	"net/http"
	"trekBooker/internal/http-server/handlers/bookingerr"
	"trekBooker/internal/http-server/handlers/params"
	"trekBooker/internal/lib/access"
	"trekBooker/internal/lib/api/response"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/models"
	"trekBooker/internal/services/stats"

	"github.com/go-chi/render"
)

type EventBookingsResponse struct {
	response.Response
	stats.EventBookings
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventBookingsGetter
type EventBookingsGetter interface {
	EventBookings(ctx context.Context, admin access.Admin, ref models.EventRef, status *models.PaymentStatus, page, limit int) (stats.EventBookings, error)
}

func New(log *slog.Logger, getter EventBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.eventBookings.New"

		log := log.With(slog.String("op", op))

		admin, ok := access.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		ref, err := params.EventRef(r)
		if err != nil {
			log.Error("invalid event reference", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		status, err := params.Status(r)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		page, limit, err := params.Page(r)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(params.ErrInvalidPage.Error()))
			return
		}

		log = log.With(slog.String("event", ref.String()))

		res, err := getter.EventBookings(r.Context(), admin, ref, status, page, limit)
		if err != nil {
			code, resp, ok := bookingerr.Map(err)
			if !ok {
				log.Error("failed to get event bookings", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get event bookings"))
				return
			}

			render.Status(r, code)
			render.JSON(w, r, resp)
			return
		}

		log.Info("event bookings retrieved", slog.Int("count", len(res.Bookings)))

		render.JSON(w, r, EventBookingsResponse{
			Response:      response.OK(),
			EventBookings: res,
		})
	}
}
