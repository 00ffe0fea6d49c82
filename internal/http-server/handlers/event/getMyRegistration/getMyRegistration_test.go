package getMyRegistration

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"communityHub/internal/http-server/handlers/event/getMyRegistration/mocks"
	"communityHub/internal/http-server/middleware/auth"
	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetMyRegistrationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		reg            *models.Registration
		mockErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Waitlisted",
			reg:            &models.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: models.RegistrationWaitlist, RegisteredAt: at},
			expectedStatus: http.StatusOK,
			expectedBody: `{"success":true,"data":{"id":"r1","eventId":"e1","userId":"u1","status":"WAITLIST",
				"registeredAt":"2025-06-01T09:00:00Z"}}`,
		},
		{
			name:           "Not registered",
			mockErr:        models.ErrRegistrationNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"error":"registration not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewRegistrationGetter(t)
			getter.On("GetRegistration", mock.Anything, "e1", "u1").Return(tc.reg, tc.mockErr)

			router := chi.NewRouter()
			router.Get("/events/{id}/registration", New(logger, getter))

			req := httptest.NewRequest(http.MethodGet, "/events/e1/registration", nil)
			req = req.WithContext(auth.WithUser(req.Context(), models.User{ID: "u1"}))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
