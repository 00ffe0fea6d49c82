package cancelEvent

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"communityHub/internal/http-server/handlers/event/cancelEvent/mocks"
	"communityHub/internal/http-server/middleware/auth"
	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCancelEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	admin := models.User{ID: "admin", IsAdmin: true}

	testCases := []struct {
		name           string
		event          *models.Event
		mockErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Cancelled",
			event:          &models.Event{ID: "e1", Status: models.EventCancelled, CreatorID: "c"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Forbidden",
			mockErr:        models.ErrNotEventOwner,
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"success":false,"error":"only the event creator or an administrator can do this"}`,
		},
		{
			name:           "Not found",
			mockErr:        models.ErrEventNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"error":"event not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			canceller := mocks.NewEventCanceller(t)
			canceller.On("CancelEvent", mock.Anything, admin, "e1").Return(tc.event, tc.mockErr)

			router := chi.NewRouter()
			router.Delete("/events/{id}", New(logger, canceller))

			req := httptest.NewRequest(http.MethodDelete, "/events/e1", nil)
			req = req.WithContext(auth.WithUser(req.Context(), admin))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else {
				assert.Contains(t, rr.Body.String(), `"status":"CANCELLED"`)
			}
		})
	}
}
