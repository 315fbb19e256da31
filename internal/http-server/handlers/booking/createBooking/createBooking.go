package createBooking

import (
	"context"
	"log/slog"
	"net/http"
	"trekBooker/internal/http-server/handlers/bookingerr"
	"trekBooker/internal/lib/api/response"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/services/booking"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type BookingRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	City         string `json:"city"`
	MembersCount int    `json:"membersCount"`
	TrekID       string `json:"trekId,omitempty"`
	TourID       string `json:"tourId,omitempty"`
}

func (r BookingRequest) toService() booking.Request {
	return booking.Request{
		Name:         r.Name,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		City:         r.City,
		MembersCount: r.MembersCount,
		TrekID:       r.TrekID,
		TourID:       r.TourID,
	}
}

type BookingResponse struct {
	response.Response
	booking.Created
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	Create(ctx context.Context, req booking.Request) (booking.Created, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Debug("request body decoded", slog.String("trek_id", req.TrekID), slog.String("tour_id", req.TourID))

		created, err := creator.Create(r.Context(), req.toService())
		if err != nil {
			status, resp, ok := bookingerr.Map(err)
			if !ok {
				log.Error("failed to create booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
				return
			}

			log.Info("booking rejected", slog.Int("status", status), slog.String("reason", err.Error()))
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("booking created", slog.String("booking_id", created.BookingID))

		responseOK(w, r, created)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, created booking.Created) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Created:  created,
	})
}
