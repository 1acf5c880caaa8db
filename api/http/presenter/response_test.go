package presenter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/users/pkg/auth"
	"github.com/artem13815/users/pkg/logging"
	"github.com/artem13815/users/pkg/user"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{user.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("lookup: %w", user.ErrNotFound), http.StatusNotFound},
		{user.ErrUnauthorized, http.StatusUnauthorized},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{user.ErrUserAlreadyExists, http.StatusConflict},
		{user.ErrRoleAlreadyAssigned, http.StatusConflict},
		{fmt.Errorf("%w: %q", user.ErrUnknownRole, "root"), http.StatusBadRequest},
		{fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		got, _ := Status(tt.err)
		assert.Equal(t, tt.status, got, tt.err.Error())
	}
}

func TestErrorHandler_LogsOnlyServerErrors(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logging.New(&buf, "info"))})
	app.Get("/missing", func(c *fiber.Ctx) error { return HandleErr(c, user.ErrNotFound) })
	app.Get("/broken", func(c *fiber.Ctx) error { return HandleErr(c, errors.New("db exploded")) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, buf.String())

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/broken", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"message":"internal server error"}`, string(body))
	assert.Contains(t, buf.String(), "db exploded")
}
