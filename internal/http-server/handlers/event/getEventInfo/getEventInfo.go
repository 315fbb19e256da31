package getEventInfo

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"trekBooker/internal/http-server/handlers/params"
	"trekBooker/internal/lib/api/response"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/models"
	"trekBooker/internal/storage"

	"github.com/go-chi/render"
)

type EventInfoResponse struct {
	response.Response
	Event           models.Event  `json:"event"`
	AvailableCities []models.City `json:"availableCities"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(ctx context.Context, ref models.EventRef) (models.Event, error)
}

func New(log *slog.Logger, info EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log := log.With(slog.String("op", op))

		ref, err := params.EventRef(r)
		if err != nil {
			log.Error("invalid event reference", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.String("event", ref.String()))

		event, err := info.GetEvent(r.Context(), ref)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event information", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		log.Info("event info successfully received")

		render.JSON(w, r, EventInfoResponse{
			Response:        response.OK(),
			Event:           event,
			AvailableCities: event.AvailableCities(),
		})
	}
}
