package common

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycompany/bankapp/pkg/domain"
)

func TestErrorToStatusCode(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, ErrorToStatusCode(domain.ErrBankAccountNotFound))
	assert.Equal(t, fiber.StatusBadRequest, ErrorToStatusCode(domain.ErrIDAlreadySet))
	assert.Equal(t, fiber.StatusInternalServerError, ErrorToStatusCode(errors.New("boom")))
}

func TestErrorResponseJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return ErrorResponseJSON(c, fiber.StatusNotFound, "Not Found", "no such thing")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "Not Found", pd.Title)
	assert.Equal(t, fiber.StatusNotFound, pd.Status)
	assert.Equal(t, "no such thing", pd.Detail)
	assert.Equal(t, "/boom", pd.Instance)
}

func TestBindAndValidate(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required"`
	}

	app := fiber.New()
	app.Post("/bind", func(c *fiber.Ctx) error {
		input, err := BindAndValidate[payload](c)
		if input == nil {
			return err
		}
		return c.SendString(input.Name)
	})

	req := httptest.NewRequest(fiber.MethodPost, "/bind", strings.NewReader(`{"name":"ok"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodPost, "/bind", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
}
