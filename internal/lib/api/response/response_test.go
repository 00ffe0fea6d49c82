package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"communityHub/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "not found", err: models.ErrEventNotFound, expected: http.StatusNotFound},
		{name: "conflict", err: models.ErrAlreadyRegistered, expected: http.StatusConflict},
		{name: "forbidden", err: models.ErrNotListingSeller, expected: http.StatusForbidden},
		{name: "invalid state", err: models.ErrRequestProcessed, expected: http.StatusBadRequest},
		{name: "validation", err: models.ErrPriceRequired, expected: http.StatusBadRequest},
		{name: "wrapped", err: fmt.Errorf("op: %w", models.ErrListingNotFound), expected: http.StatusNotFound},
		{name: "unexpected", err: errors.New("connection reset"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, StatusCode(tc.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "event not found", ErrorMessage(fmt.Errorf("op: %w", models.ErrEventNotFound), "failed"))
	assert.Equal(t, "failed", ErrorMessage(errors.New("pq: deadlock detected"), "failed"))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	type payload struct {
		Title  string `validate:"required"`
		Status string `validate:"oneof=ACCEPTED REJECTED"`
	}

	err := validator.New().Struct(payload{Status: "PENDING"})
	require.Error(t, err)

	var validateErr validator.ValidationErrors
	require.True(t, errors.As(err, &validateErr))

	resp := ValidationError(validateErr)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "field Title is a required field")
	assert.Contains(t, resp.Error, "field Status must be one of [ACCEPTED REJECTED]")
}
