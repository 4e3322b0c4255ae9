package flash

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	app := fiber.New()

	app.Post("/submit", func(c *fiber.Ctx) error {
		Success(c, "Message sent successfully!")
		Error(c, "second")

		return c.Redirect("/form")
	})

	app.Get("/form", func(c *fiber.Ctx) error {
		return c.JSON(Pop(c))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/submit", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	var value string

	for _, ck := range resp.Cookies() {
		if ck.Name == CookieName {
			value = ck.Value
		}
	}

	require.NotEmpty(t, value)

	msgs := decode(value)
	assert.Equal(t, []Message{
		{Kind: KindSuccess, Text: "Message sent successfully!"},
		{Kind: KindError, Text: "second"},
	}, msgs)

	req := httptest.NewRequest(fiber.MethodGet, "/form", nil)
	req.Header.Set("Cookie", CookieName+"="+value)
	resp, err = app.Test(req)
	require.NoError(t, err)

	cleared := false

	for _, ck := range resp.Cookies() {
		if ck.Name == CookieName && ck.Value == "" {
			cleared = true
		}
	}

	assert.True(t, cleared, "flash cookie is cleared after display")
}

func TestPopWithinSameRequest(t *testing.T) {
	app := fiber.New()

	var got []Message

	app.Get("/", func(c *fiber.Ctx) error {
		Success(c, "hello")
		got = Pop(c)
		assert.Empty(t, Pop(c))

		return nil
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, []Message{{Kind: KindSuccess, Text: "hello"}}, got)
}

func TestDecodeGarbage(t *testing.T) {
	assert.Nil(t, decode("%%%"))
	assert.Nil(t, decode(""))
	assert.Nil(t, decode("bm90IGpzb24"))
}

func TestPopClearsCookieOnNestedPath(t *testing.T) {
	app := fiber.New()

	app.Get("/admin/wishlist", func(c *fiber.Ctx) error {
		return c.JSON(Pop(c))
	})

	req := httptest.NewRequest(fiber.MethodGet, "/admin/wishlist", nil)
	req.Header.Set("Cookie", CookieName+"="+encode([]Message{{Kind: KindSuccess, Text: "Notes updated!"}}))

	resp, err := app.Test(req)
	require.NoError(t, err)

	var header string

	for _, h := range resp.Header.Values(fiber.HeaderSetCookie) {
		if strings.HasPrefix(h, CookieName+"=") {
			header = strings.ToLower(h)
		}
	}

	require.NotEmpty(t, header)
	assert.Contains(t, header, "path=/")
	assert.NotContains(t, header, "path=/admin")
	assert.Contains(t, header, "expires=")

	for _, ck := range resp.Cookies() {
		if ck.Name == CookieName {
			assert.Empty(t, ck.Value)
			assert.Equal(t, "/", ck.Path)
		}
	}
}
