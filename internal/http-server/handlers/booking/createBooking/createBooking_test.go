package createBooking

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"trekBooker/internal/http-server/handlers/booking/createBooking/mocks"
	"trekBooker/internal/lib/api/response"
	"trekBooker/internal/lib/logger/handlers/slogdiscard"
	"trekBooker/internal/lib/pricing"
	"trekBooker/internal/models"
	"trekBooker/internal/payment"
	"trekBooker/internal/services/booking"
	"trekBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const trekID = "9b2f4c1e-3a57-4d7e-8f0a-1c2d3e4f5a6b"

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	validBody := fmt.Sprintf(`{"name":"Asha Rao","email":"asha@example.com","phoneNumber":"9876543210","city":"Pune","membersCount":3,"trekId":%q}`, trekID)
	wantReq := booking.Request{
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		PhoneNumber:  "9876543210",
		City:         "Pune",
		MembersCount: 3,
		TrekID:       trekID,
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.BookingCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("Create", mock.Anything, wantReq).Return(booking.Created{
					Order:           payment.Order{ID: "order_1", Amount: 450000, Currency: "INR", Receipt: "b-1", KeyID: "rzp_test"},
					BookingID:       "b-1",
					FinalPrice:      4500,
					EventName:       "Ridge Trek",
					AvailableCities: []models.City{"Pune"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","success":true,"bookingId":"b-1","finalPrice":4500,"eventName":"Ridge Trek",
				"availableCities":["Pune"],"order":{"id":"order_1","amount":450000,"currency":"INR","receipt":"b-1","keyId":"rzp_test"}}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","success":false,"error":"failed to decode request"}`,
		},
		{
			name:        "Malformed trek id",
			requestBody: `{"name":"A","email":"a@example.com","phoneNumber":"9876543210","city":"Pune","membersCount":1,"trekId":"42"}`,
			mockSetup: func(m *mocks.BookingCreator) {
				req := booking.Request{Name: "A", Email: "a@example.com", PhoneNumber: "9876543210", City: "Pune", MembersCount: 1, TrekID: "42"}
				m.On("Create", mock.Anything, req).Return(booking.Created{}, booking.ErrInvalidEventID)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","success":false,"error":"invalid event id format"}`,
		},
		{
			name:        "Missing field",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("Create", mock.Anything, wantReq).Return(booking.Created{}, &booking.MissingFieldError{Field: "city"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","success":false,"error":"missing required field: city","details":{"field":"city"}}`,
		},
		{
			name:        "Invalid phone",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("Create", mock.Anything, wantReq).Return(booking.Created{}, booking.ErrInvalidPhone)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","success":false,"error":"phone number must be exactly 10 digits"}`,
		},
		{
			name:        "Event not found",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("Create", mock.Anything, wantReq).Return(booking.Created{}, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","success":false,"error":"event not found"}`,
		},
		{
			name:        "Event inactive",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("Create", mock.Anything, wantReq).Return(booking.Created{}, storage.ErrEventInactive)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","success":false,"error":"event is not active"}`,
		},
		{
			name:        "No pricing for city",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("Create", mock.Anything, wantReq).Return(booking.Created{}, &pricing.NoPricingError{
					City:            "Pune",
					AvailableCities: []models.City{"Mumbai", "Nashik"},
				})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody: `{"status":"Error","success":false,"error":"no pricing available for city",
				"details":{"city":"Pune","availableCities":["Mumbai","Nashik"]}}`,
		},
		{
			name:        "Gateway unavailable",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("Create", mock.Anything, wantReq).Return(booking.Created{}, fmt.Errorf("op: %w", booking.ErrGatewayUnavailable))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"Error","success":false,"error":"payment gateway unavailable, try again later","details":{"retryable":true}}`,
		},
		{
			name:        "Internal server error",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("Create", mock.Anything, wantReq).Return(booking.Created{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","success":false,"error":"failed to create booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewBookingCreator(t)
			tc.mockSetup(creator)

			router := chi.NewRouter()
			router.Post("/bookings", New(logger, creator))

			req, err := http.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, booking.Created{BookingID: "b-1"})

	assert.Equal(t, http.StatusOK, rr.Code)

	var actual BookingResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actual))

	assert.Equal(t, response.StatusOK, actual.Status)
	assert.True(t, actual.Success)
	assert.Equal(t, "b-1", actual.BookingID)
}
