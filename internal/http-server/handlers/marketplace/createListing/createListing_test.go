package createListing

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityHub/internal/http-server/handlers/marketplace/createListing/mocks"
	"communityHub/internal/http-server/middleware/auth"
	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateListingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	seller := models.User{ID: "S"}
	price := 25.5

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.ListingCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Priced item",
			requestBody: `{"title":"Lamp","category":"home","price":25.5}`,
			mockSetup: func(m *mocks.ListingCreator) {
				in := models.ListingInput{Title: "Lamp", Category: "home", Price: &price}
				m.On("CreateListing", mock.Anything, seller, in).
					Return(&models.MarketListing{ID: "l1", SellerID: "S", Title: "Lamp", Category: "home", Price: &price, Status: models.ListingActive}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"message":"listing created"`)
				assert.Contains(t, body, `"price":25.5`)
				assert.Contains(t, body, `"status":"ACTIVE"`)
			},
		},
		{
			name:        "Missing price",
			requestBody: `{"title":"Lamp"}`,
			mockSetup: func(m *mocks.ListingCreator) {
				m.On("CreateListing", mock.Anything, seller, models.ListingInput{Title: "Lamp"}).
					Return(nil, models.ErrPriceRequired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"price is required and must be positive unless the item is free"}`,
		},
		{
			name:           "Negative price",
			requestBody:    `{"title":"Lamp","price":-1}`,
			mockSetup:      func(m *mocks.ListingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"field Price must be at least 0"}`,
		},
		{
			name:           "Missing title",
			requestBody:    `{"isFree":true}`,
			mockSetup:      func(m *mocks.ListingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"field Title is a required field"}`,
		},
		{
			name:        "Storage failure",
			requestBody: `{"title":"Books","isFree":true}`,
			mockSetup: func(m *mocks.ListingCreator) {
				m.On("CreateListing", mock.Anything, seller, models.ListingInput{Title: "Books", IsFree: true}).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"failed to create listing"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewListingCreator(t)
			tc.mockSetup(creator)

			router := chi.NewRouter()
			router.Post("/marketplace", New(logger, creator))

			req, err := http.NewRequest(http.MethodPost, "/marketplace", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req = req.WithContext(auth.WithUser(req.Context(), seller))

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
