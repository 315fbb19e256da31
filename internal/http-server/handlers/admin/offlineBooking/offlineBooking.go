package offlineBooking

import (
	"context"
	"log/slog"
	"net/http"
	"trekBooker/internal/http-server/handlers/bookingerr"
	"trekBooker/internal/lib/access"
	"trekBooker/internal/lib/api/response"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/services/booking"

	"github.com/go-chi/render"
)

type OfflineRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	City         string `json:"city"`
	MembersCount int    `json:"membersCount"`
	TrekID       string `json:"trekId,omitempty"`
	TourID       string `json:"tourId,omitempty"`
}

type OfflineResponse struct {
	response.Response
	booking.Offline
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OfflineRecorder
type OfflineRecorder interface {
	RecordOffline(ctx context.Context, admin access.Admin, req booking.Request) (booking.Offline, error)
}

func New(log *slog.Logger, recorder OfflineRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.offlineBooking.New"

		log := log.With(slog.String("op", op))

		admin, ok := access.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		var req OfflineRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		res, err := recorder.RecordOffline(r.Context(), admin, booking.Request{
			Name:         req.Name,
			Email:        req.Email,
			PhoneNumber:  req.PhoneNumber,
			City:         req.City,
			MembersCount: req.MembersCount,
			TrekID:       req.TrekID,
			TourID:       req.TourID,
		})
		if err != nil {
			status, resp, ok := bookingerr.Map(err)
			if !ok {
				log.Error("failed to record offline booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to record offline booking"))
				return
			}

			log.Info("offline booking rejected", slog.Int("status", status), slog.String("reason", err.Error()))
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("offline booking recorded",
			slog.String("booking_id", res.Booking.ID),
			slog.String("notification_status", string(res.NotificationStatus)),
		)

		render.JSON(w, r, OfflineResponse{
			Response: response.OK(),
			Offline:  res,
		})
	}
}
