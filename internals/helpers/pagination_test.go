package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePagingDisabledWithoutParams(t *testing.T) {
	p := resolveFor(t, "/items")
	assert.False(t, p.Enabled)
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveFor(t, "/items?page=3")
	assert.True(t, p.Enabled)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 40, p.Offset)
}

func TestResolvePagingClampsPerPage(t *testing.T) {
	p := resolveFor(t, "/items?page=1&perPage=9999")
	assert.Equal(t, 100, p.PerPage)
}

func TestResolvePagingNormalizesBadPage(t *testing.T) {
	p := resolveFor(t, "/items?page=-2&perPage=10")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Offset)
}
