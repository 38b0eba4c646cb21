package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `validate:"required"`
	Limit int    `validate:"gte=0,lte=20"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Name: "x", Limit: 5}))

	err := ValidateRequest(sampleRequest{Limit: 50})
	require.Error(t, err)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, fiber.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "Name failed on 'required'")
	assert.Contains(t, appErr.Message, "Limit failed on 'lte'")
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(SuccessResponse("fine", fiber.Map{"n": 1}))
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return NewNotFoundError("Project not found")
	})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "busy")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	tests := []struct {
		path    string
		status  int
		success bool
		message string
	}{
		{"/ok", 200, true, "fine"},
		{"/missing", 404, false, "Project not found"},
		{"/fiber", 409, false, "busy"},
		{"/boom", 500, false, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			var got Response
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tt.success, got.Success)
			assert.Equal(t, tt.message, got.Message)
			if !tt.success {
				assert.NotEmpty(t, got.ErrorType)
			}
		})
	}
}
