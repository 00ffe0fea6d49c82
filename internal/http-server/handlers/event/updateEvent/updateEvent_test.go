package updateEvent

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityHub/internal/http-server/handlers/event/updateEvent/mocks"
	"communityHub/internal/http-server/middleware/auth"
	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	user := models.User{ID: "creator"}
	capacity := 5
	completed := models.EventCompleted

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.EventUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Raise capacity",
			requestBody: `{"capacity":5}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, user, "e1", models.EventPatch{Capacity: &capacity}).
					Return(&models.Event{ID: "e1", Capacity: &capacity, Status: models.EventActive}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"message":"event updated"`)
				assert.Contains(t, body, `"capacity":5`)
			},
		},
		{
			name:        "Complete and clear capacity",
			requestBody: `{"status":"COMPLETED","clearCapacity":true}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, user, "e1", models.EventPatch{Status: &completed, ClearCapacity: true}).
					Return(&models.Event{ID: "e1", Status: models.EventCompleted}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"COMPLETED"`)
				assert.NotContains(t, body, `"capacity"`)
			},
		},
		{
			name:           "Capacity and clear together",
			requestBody:    `{"capacity":5,"clearCapacity":true}`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"field ClearCapacity is not valid"}`,
		},
		{
			name:           "Cancel through update",
			requestBody:    `{"status":"CANCELLED"}`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"field Status must be one of [ACTIVE DRAFT COMPLETED]"}`,
		},
		{
			name:        "Capacity below registrations",
			requestBody: `{"capacity":5}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, user, "e1", mock.Anything).Return(nil, models.ErrCapacityBelowCount)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"capacity cannot be lower than the number of registered users"}`,
		},
		{
			name:        "Not the creator",
			requestBody: `{"title":"Mine now"}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, user, "e1", mock.Anything).Return(nil, models.ErrNotEventOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"success":false,"error":"only the event creator or an administrator can do this"}`,
		},
		{
			name:        "Storage failure",
			requestBody: `{"title":"New title"}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, user, "e1", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"failed to update event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewEventUpdater(t)
			tc.mockSetup(updater)

			router := chi.NewRouter()
			router.Put("/events/{id}", New(logger, updater))

			req, err := http.NewRequest(http.MethodPut, "/events/e1", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req = req.WithContext(auth.WithUser(req.Context(), user))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
