package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func echoUser(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	render.JSON(w, r, map[string]any{"authenticated": ok, "id": user.ID, "admin": user.IsAdmin})
}

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	a := New(secret, "community-hub", time.Hour)

	token, err := a.Issue(models.User{ID: "u1", IsAdmin: true})
	require.NoError(t, err)

	user, err := a.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: "u1", IsAdmin: true}, user)
}

func TestParseRejects(t *testing.T) {
	t.Parallel()

	a := New(secret, "community-hub", time.Hour)

	expired := New(secret, "community-hub", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Issue(models.User{ID: "u1"})
	require.NoError(t, err)

	otherSecret, err := New("other", "community-hub", time.Hour).Issue(models.User{ID: "u1"})
	require.NoError(t, err)

	otherIssuer, err := New(secret, "someone-else", time.Hour).Issue(models.User{ID: "u1"})
	require.NoError(t, err)

	noSubject, err := a.Issue(models.User{})
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "u1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "expired", token: expiredToken},
		{name: "wrong secret", token: otherSecret},
		{name: "wrong issuer", token: otherIssuer},
		{name: "missing subject", token: noSubject},
		{name: "unsigned", token: none},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := a.Parse(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestRequired(t *testing.T) {
	t.Parallel()

	a := New(secret, "community-hub", time.Hour)
	token, err := a.Issue(models.User{ID: "u1"})
	require.NoError(t, err)

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "valid token",
			header:         "Bearer " + token,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"authenticated":true,"id":"u1","admin":false}`,
		},
		{
			name:           "missing header",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success":false,"error":"missing authorization header"}`,
		},
		{
			name:           "wrong scheme",
			header:         "Basic " + token,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success":false,"error":"invalid or expired token"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := chi.NewRouter()
			router.With(Required(slogdiscard.NewDiscardLogger(), a)).Get("/me", echoUser)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestOptional(t *testing.T) {
	t.Parallel()

	a := New(secret, "community-hub", time.Hour)
	token, err := a.Issue(models.User{ID: "admin", IsAdmin: true})
	require.NoError(t, err)

	router := chi.NewRouter()
	router.With(Optional(a)).Get("/me", echoUser)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"authenticated":false,"id":"","admin":false}`, rr.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.JSONEq(t, `{"authenticated":true,"id":"admin","admin":true}`, rr.Body.String())
}
