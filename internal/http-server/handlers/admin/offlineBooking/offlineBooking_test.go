package offlineBooking

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"trekBooker/internal/http-server/handlers/admin/offlineBooking/mocks"
	"trekBooker/internal/http-server/middleware/adminauth"
	"trekBooker/internal/lib/access"
	"trekBooker/internal/lib/logger/handlers/slogdiscard"
	"trekBooker/internal/models"
	"trekBooker/internal/notification"
	"trekBooker/internal/services/booking"
	"trekBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminKey = "s3cret"
	tourID   = "0d4e6f8a-1b3c-4d5e-9f7a-2b4c6d8e0f1a"
)

func TestOfflineBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	body := fmt.Sprintf(`{"name":"Ravi","email":"ravi@example.com","phoneNumber":"9123456789","city":"Mumbai","membersCount":2,"tourId":%q}`, tourID)
	wantReq := booking.Request{
		Name:         "Ravi",
		Email:        "ravi@example.com",
		PhoneNumber:  "9123456789",
		City:         "Mumbai",
		MembersCount: 2,
		TourID:       tourID,
	}
	validAdmin := mock.MatchedBy(func(a access.Admin) bool { return a.Valid() })

	testCases := []struct {
		name           string
		key            string
		requestBody    string
		mockSetup      func(m *mocks.OfflineRecorder)
		expectedStatus int
		expectedBody   string
		bodyContains   []string
	}{
		{
			name:        "Success",
			key:         adminKey,
			requestBody: body,
			mockSetup: func(m *mocks.OfflineRecorder) {
				m.On("RecordOffline", mock.Anything, validAdmin, wantReq).Return(booking.Offline{
					Booking: models.Booking{
						ID:            "b-9",
						Event:         models.TourRef(tourID),
						PaymentStatus: models.PaymentPaid,
						Offline:       true,
						FinalPrice:    15000,
					},
					EventName:          "Konkan Coast Tour",
					NotificationStatus: notification.OutcomeFailed,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			bodyContains:   []string{`"notificationStatus":"failed"`, `"offline":true`, `"tourId":"` + tourID + `"`},
		},
		{
			name:           "Wrong admin key",
			key:            "guess",
			requestBody:    body,
			mockSetup:      func(m *mocks.OfflineRecorder) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","success":false,"error":"unauthorized"}`,
		},
		{
			name:           "Missing admin key",
			requestBody:    body,
			mockSetup:      func(m *mocks.OfflineRecorder) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","success":false,"error":"unauthorized"}`,
		},
		{
			name:        "Event inactive",
			key:         adminKey,
			requestBody: body,
			mockSetup: func(m *mocks.OfflineRecorder) {
				m.On("RecordOffline", mock.Anything, validAdmin, wantReq).Return(booking.Offline{}, storage.ErrEventInactive)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","success":false,"error":"event is not active"}`,
		},
		{
			name:        "Missing phone with bad email",
			key:         adminKey,
			requestBody: `{"name":"Ravi","email":"not-an-email","tourId":"` + tourID + `"}`,
			mockSetup: func(m *mocks.OfflineRecorder) {
				req := booking.Request{Name: "Ravi", Email: "not-an-email", TourID: tourID}
				m.On("RecordOffline", mock.Anything, validAdmin, req).Return(booking.Offline{}, &booking.MissingFieldError{Field: "phoneNumber"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","success":false,"error":"missing required field: phoneNumber","details":{"field":"phoneNumber"}}`,
		},
		{
			name:        "Malformed email",
			key:         adminKey,
			requestBody: `{"name":"Ravi","email":"not-an-email","phoneNumber":"9123456789","city":"Mumbai","membersCount":2,"tourId":"` + tourID + `"}`,
			mockSetup: func(m *mocks.OfflineRecorder) {
				req := wantReq
				req.Email = "not-an-email"
				m.On("RecordOffline", mock.Anything, validAdmin, req).Return(booking.Offline{}, booking.ErrInvalidEmail)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","success":false,"error":"invalid email address"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			recorder := mocks.NewOfflineRecorder(t)
			tc.mockSetup(recorder)

			router := chi.NewRouter()
			router.With(adminauth.New(logger, adminKey)).Post("/admin/bookings/offline", New(logger, recorder))

			req, err := http.NewRequest(http.MethodPost, "/admin/bookings/offline", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			if tc.key != "" {
				req.Header.Set(adminauth.HeaderAdminKey, tc.key)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}
			for _, s := range tc.bodyContains {
				assert.Contains(t, rr.Body.String(), s)
			}
		})
	}
}

func TestOfflineBookingWithoutCapability(t *testing.T) {
	t.Parallel()

	recorder := mocks.NewOfflineRecorder(t)
	handler := New(slogdiscard.NewDiscardLogger(), recorder)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
