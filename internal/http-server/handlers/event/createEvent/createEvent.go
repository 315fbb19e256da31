package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
	"trekBooker/internal/lib/access"
	"trekBooker/internal/lib/api/response"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type PricingRequest struct {
	City          string   `json:"city" validate:"required"`
	BasePrice     *float64 `json:"basePrice"`
	DiscountPrice float64  `json:"discountPrice"`
}

type EventRequest struct {
	Type        string           `json:"type" validate:"required"`
	Name        string           `json:"name" validate:"required"`
	IsActive    *bool            `json:"isActive"`
	StartDate   time.Time        `json:"startDate" validate:"required"`
	EndDate     time.Time        `json:"endDate" validate:"required"`
	CityPricing []PricingRequest `json:"cityPricing" validate:"dive"`
}

type EventResponse struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(slog.String("op", op))

		if _, ok := access.FromContext(r.Context()); !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		event, err := toEvent(req)
		if err != nil {
			log.Error("invalid event", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		event, err = creator.CreateEvent(r.Context(), event)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))
			return
		}

		log.Info("event added", slog.String("event", event.Ref().String()))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}

var errDateOrder = errors.New("endDate must not be before startDate")

func toEvent(req EventRequest) (models.Event, error) {
	kind, err := models.ParseEventKind(req.Type)
	if err != nil {
		return models.Event{}, errors.New("invalid event type, expected trek or tour")
	}

	if req.EndDate.Before(req.StartDate) {
		return models.Event{}, errDateOrder
	}

	pricing := make([]models.CityPricing, 0, len(req.CityPricing))
	for _, p := range req.CityPricing {
		city, ok := models.ParseCity(p.City)
		if !ok {
			city = models.City(p.City)
		}
		pricing = append(pricing, models.CityPricing{
			City:          city,
			BasePrice:     p.BasePrice,
			DiscountPrice: p.DiscountPrice,
		})
	}

	if err := models.ValidatePricing(pricing); err != nil {
		return models.Event{}, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return models.Event{
		Kind:        kind,
		Name:        req.Name,
		IsActive:    active,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CityPricing: pricing,
	}, nil
}
