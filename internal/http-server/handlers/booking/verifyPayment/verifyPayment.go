package verifyPayment

import (
	"context"
	"log/slog"
	"net/http"
	"trekBooker/internal/http-server/handlers/bookingerr"
	"trekBooker/internal/lib/api/response"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/models"
	"trekBooker/internal/services/booking"

	"github.com/go-chi/render"
)

type VerifyRequest struct {
	GatewayOrderID   string `json:"gatewayOrderId"`
	GatewayPaymentID string `json:"gatewayPaymentId"`
	GatewaySignature string `json:"gatewaySignature"`
	BookingID        string `json:"bookingId"`
}

type VerifyResponse struct {
	response.Response
	booking.Verified
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentVerifier
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, conf models.PaymentConfirmation) (booking.Verified, error)
}

func New(log *slog.Logger, verifier PaymentVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.verifyPayment.New"

		log := log.With(slog.String("op", op))

		var req VerifyRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log = log.With(slog.String("booking_id", req.BookingID))

		verified, err := verifier.VerifyPayment(r.Context(), models.PaymentConfirmation{
			BookingID: req.BookingID,
			OrderID:   req.GatewayOrderID,
			PaymentID: req.GatewayPaymentID,
			Signature: req.GatewaySignature,
		})
		if err != nil {
			status, resp, ok := bookingerr.Map(err)
			if !ok {
				log.Error("failed to verify payment", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to verify payment"))
				return
			}

			log.Warn("payment verification rejected", slog.Int("status", status), slog.String("reason", err.Error()))
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("payment verified", slog.Bool("already_paid", verified.AlreadyPaid))

		responseOK(w, r, verified)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, verified booking.Verified) {
	render.JSON(w, r, VerifyResponse{
		Response: response.OK(),
		Verified: verified,
	})
}
