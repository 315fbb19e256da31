package bookingsOverview

import (
	"context"
	"log/slog"
	"net/http"
	"trekBooker/internal/http-server/handlers/params"
	"trekBooker/internal/lib/access"
	"trekBooker/internal/lib/api/response"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/models"
	"trekBooker/internal/services/stats"

	"github.com/go-chi/render"
)

type OverviewResponse struct {
	response.Response
	stats.Overview
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OverviewGetter
type OverviewGetter interface {
	Overview(ctx context.Context, admin access.Admin, kind *models.EventKind, status *models.PaymentStatus, page, limit int) (stats.Overview, error)
}

func New(log *slog.Logger, getter OverviewGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.bookingsOverview.New"

		log := log.With(slog.String("op", op))

		admin, ok := access.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		kind, err := params.Kind(r)
		if err != nil {
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

		overview, err := getter.Overview(r.Context(), admin, kind, status, page, limit)
		if err != nil {
			log.Error("failed to build bookings overview", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings overview"))
			return
		}

		log.Info("bookings overview retrieved", slog.Int("events", len(overview.Events)))

		render.JSON(w, r, OverviewResponse{
			Response: response.OK(),
			Overview: overview,
		})
	}
}
