// Package flash implements one-shot messages carried in a cookie across a redirect.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// CookieName is the cookie holding pending messages.
const CookieName = "flash"

const localsKey = "flash.pending"

// Message kinds, used as css classes by the templates.
const (
	KindSuccess = "success"
	KindError   = "error"
)

// Message is one flash message.
type Message struct {
	Kind string
	Text string
}

func decode(raw string) []Message {
	if raw == "" {
		return nil
	}

	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}

	var out []Message
	if err = json.Unmarshal(b, &out); err != nil {
		return nil
	}

	return out
}

// Parse decodes a flash cookie value. Malformed values yield nil.
func Parse(raw string) []Message {
	return decode(raw)
}

func encode(msgs []Message) string {
	b, err := json.Marshal(msgs)
	if err != nil {
		log.Error().Err(err).Msg("can't encode flash messages")

		return ""
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

func pending(c *fiber.Ctx) []Message {
	if msgs, ok := c.Locals(localsKey).([]Message); ok {
		return msgs
	}

	// messages of the previous request not yet shown
	return decode(c.Cookies(CookieName))
}

// Add queues a message for the next rendered page.
func Add(c *fiber.Ctx, kind, text string) {
	msgs := append(pending(c), Message{Kind: kind, Text: text})
	c.Locals(localsKey, msgs)

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    encode(msgs),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Success queues a success message.
func Success(c *fiber.Ctx, text string) { Add(c, KindSuccess, text) }

// Error queues an error message.
func Error(c *fiber.Ctx, text string) { Add(c, KindError, text) }

// Pop returns and clears all pending messages.
func Pop(c *fiber.Ctx) []Message {
	msgs := pending(c)
	c.Locals(localsKey, []Message{})

	if c.Cookies(CookieName) != "" || len(msgs) > 0 {
		// same path as Add, or the browser keeps the original cookie below /admin/
		c.Cookie(&fiber.Cookie{
			Name:     CookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}

	return msgs
}
