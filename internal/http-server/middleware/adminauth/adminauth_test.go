package adminauth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"trekBooker/internal/lib/access"
	"trekBooker/internal/lib/logger/handlers/slogdiscard"
)

func TestAdminAuth(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		key            string
		expectedStatus int
	}{
		{name: "Valid key", key: "admin-key", expectedStatus: http.StatusOK},
		{name: "Wrong key", key: "nope", expectedStatus: http.StatusUnauthorized},
		{name: "Missing key", key: "", expectedStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var sawCapability bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, sawCapability = access.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/bookings/overview", nil)
			if tc.key != "" {
				req.Header.Set(HeaderAdminKey, tc.key)
			}
			rr := httptest.NewRecorder()

			New(logger, "admin-key")(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.True(t, sawCapability)
			} else {
				assert.JSONEq(t, `{"status":"Error","success":false,"error":"unauthorized"}`, rr.Body.String())
			}
		})
	}
}
