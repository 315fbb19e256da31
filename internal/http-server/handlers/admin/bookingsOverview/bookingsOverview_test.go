package bookingsOverview

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"trekBooker/internal/http-server/handlers/admin/bookingsOverview/mocks"
	"trekBooker/internal/http-server/middleware/adminauth"
	"trekBooker/internal/lib/access"
	"trekBooker/internal/lib/logger/handlers/slogdiscard"
	"trekBooker/internal/models"
	"trekBooker/internal/services/stats"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminKey = "s3cret"

func TestBookingsOverviewHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	anyAdmin := mock.MatchedBy(func(a access.Admin) bool { return a.Valid() })
	tour := models.KindTour
	start := time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.OverviewGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			url:  "/admin/bookings/overview?type=tours",
			mockSetup: func(m *mocks.OverviewGetter) {
				m.On("Overview", mock.Anything, anyAdmin, &tour, (*models.PaymentStatus)(nil), 1, 20).Return(stats.Overview{
					Events: []models.EventStats{{
						Kind:           models.KindTour,
						EventID:        "c",
						EventName:      "Coast Tour",
						IsActive:       true,
						StartDate:      start,
						EndDate:        start.AddDate(0, 0, 4),
						BookingSummary: models.BookingSummary{TotalBookings: 1, TotalMembers: 2, TotalRevenue: 15000},
					}},
					Totals:     models.BookingSummary{TotalBookings: 1, TotalMembers: 2, TotalRevenue: 15000},
					Pagination: models.Page{Page: 1, Limit: 20, Total: 1, TotalPages: 1},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","success":true,
				"events":[{"type":"tour","eventId":"c","eventName":"Coast Tour","isActive":true,
					"startDate":"2026-11-05T00:00:00Z","endDate":"2026-11-09T00:00:00Z",
					"totalBookings":1,"totalMembers":2,"totalRevenue":15000}],
				"totals":{"totalBookings":1,"totalMembers":2,"totalRevenue":15000},
				"pagination":{"page":1,"limit":20,"total":1,"totalPages":1}}`,
		},
		{
			name:           "Invalid type",
			url:            "/admin/bookings/overview?type=cruise",
			mockSetup:      func(m *mocks.OverviewGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","success":false,"error":"invalid event type, expected trek or tour"}`,
		},
		{
			name: "Storage failure",
			url:  "/admin/bookings/overview",
			mockSetup: func(m *mocks.OverviewGetter) {
				m.On("Overview", mock.Anything, anyAdmin, (*models.EventKind)(nil), (*models.PaymentStatus)(nil), 1, 20).
					Return(stats.Overview{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","success":false,"error":"failed to get bookings overview"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewOverviewGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.With(adminauth.New(logger, adminKey)).Get("/admin/bookings/overview", New(logger, getter))

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)
			req.Header.Set(adminauth.HeaderAdminKey, adminKey)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
