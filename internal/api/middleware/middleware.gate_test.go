package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"

	"beer_inventory/config"
	"beer_inventory/internal/common"
)

func newGateTestApp(secret string) *fiber.App {
	cfg := &config.Configuration{MutationSecret: secret}
	app := fiber.New()
	// Middleware phải đăng ký qua .Use() trên group, không truyền trực tiếp vào route
	grp := app.Group("/items")
	grp.Use(RequireMutationSecret(cfg))
	grp.Post("/", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func TestRequireMutationSecret_ThieuSecret(t *testing.T) {
	app := newGateTestApp("s3cret")

	req := httptest.NewRequest("POST", "/items", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), common.ErrCodeAuthSecret.Code)
}

func TestRequireMutationSecret_SaiSecret(t *testing.T) {
	app := newGateTestApp("s3cret")

	req := httptest.NewRequest("POST", "/items", nil)
	req.Header.Set(MutationSecretHeader, "sai-secret")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)
}

func TestRequireMutationSecret_DungSecret(t *testing.T) {
	app := newGateTestApp("s3cret")

	req := httptest.NewRequest("POST", "/items", nil)
	req.Header.Set(MutationSecretHeader, "s3cret")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}
