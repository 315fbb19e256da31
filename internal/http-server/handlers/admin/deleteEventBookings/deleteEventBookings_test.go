package deleteEventBookings

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"trekBooker/internal/http-server/handlers/admin/deleteEventBookings/mocks"
	"trekBooker/internal/http-server/middleware/adminauth"
	"trekBooker/internal/lib/access"
	"trekBooker/internal/lib/logger/handlers/slogdiscard"
	"trekBooker/internal/models"
	"trekBooker/internal/services/cleanup"
	"trekBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminKey = "s3cret"
	trekID   = "9b2f4c1e-3a57-4d7e-8f0a-1c2d3e4f5a6b"
)

func TestDeleteEventBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	anyAdmin := mock.MatchedBy(func(a access.Admin) bool { return a.Valid() })
	ref := models.TrekRef(trekID)
	base := "/admin/events/trek/" + trekID + "/bookings"

	testCases := []struct {
		name           string
		url            string
		key            string
		mockSetup      func(m *mocks.BookingsDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			url:  base,
			key:  adminKey,
			mockSetup: func(m *mocks.BookingsDeleter) {
				m.On("DeleteEventBookings", mock.Anything, anyAdmin, ref, false).Return(int64(4), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","success":true,"deleted":4}`,
		},
		{
			name: "Paid bookings block delete",
			url:  base,
			key:  adminKey,
			mockSetup: func(m *mocks.BookingsDeleter) {
				m.On("DeleteEventBookings", mock.Anything, anyAdmin, ref, false).Return(int64(0), &cleanup.PaidBookingsError{Count: 2})
			},
			expectedStatus: http.StatusConflict,
			expectedBody: `{"status":"Error","success":false,"error":"event has paid bookings",
				"details":{"paidBookings":2,"hint":"export the paid bookings for your records, then repeat with force=true"}}`,
		},
		{
			name: "Forced delete",
			url:  base + "?force=true",
			key:  adminKey,
			mockSetup: func(m *mocks.BookingsDeleter) {
				m.On("DeleteEventBookings", mock.Anything, anyAdmin, ref, true).Return(int64(6), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","success":true,"deleted":6}`,
		},
		{
			name: "Event still active",
			url:  base,
			key:  adminKey,
			mockSetup: func(m *mocks.BookingsDeleter) {
				m.On("DeleteEventBookings", mock.Anything, anyAdmin, ref, false).Return(int64(0), cleanup.ErrEventStillActive)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","success":false,"error":"event is still active, deactivate it first"}`,
		},
		{
			name: "Event not ended",
			url:  base,
			key:  adminKey,
			mockSetup: func(m *mocks.BookingsDeleter) {
				m.On("DeleteEventBookings", mock.Anything, anyAdmin, ref, false).Return(int64(0), cleanup.ErrEventNotEnded)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","success":false,"error":"event has not ended yet"}`,
		},
		{
			name: "Event not found",
			url:  base,
			key:  adminKey,
			mockSetup: func(m *mocks.BookingsDeleter) {
				m.On("DeleteEventBookings", mock.Anything, anyAdmin, ref, false).Return(int64(0), storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","success":false,"error":"event not found"}`,
		},
		{
			name: "Internal error",
			url:  base,
			key:  adminKey,
			mockSetup: func(m *mocks.BookingsDeleter) {
				m.On("DeleteEventBookings", mock.Anything, anyAdmin, ref, false).Return(int64(0), errors.New("deadlock detected"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","success":false,"error":"failed to delete event bookings"}`,
		},
		{
			name:           "Invalid force flag",
			url:            base + "?force=maybe",
			key:            adminKey,
			mockSetup:      func(m *mocks.BookingsDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","success":false,"error":"invalid force flag"}`,
		},
		{
			name:           "Unauthorized",
			url:            base,
			key:            "wrong",
			mockSetup:      func(m *mocks.BookingsDeleter) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","success":false,"error":"unauthorized"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleter := mocks.NewBookingsDeleter(t)
			tc.mockSetup(deleter)

			router := chi.NewRouter()
			router.With(adminauth.New(logger, adminKey)).Delete("/admin/events/{type}/{id}/bookings", New(logger, deleter))

			req, err := http.NewRequest(http.MethodDelete, tc.url, nil)
			require.NoError(t, err)
			req.Header.Set(adminauth.HeaderAdminKey, tc.key)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
