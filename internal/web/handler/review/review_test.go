package review_test

import (
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feedbackdb "github.com/KittyCore/portfolio/internal/db/controller/feedback"
	"github.com/KittyCore/portfolio/internal/db/models"
	"github.com/KittyCore/portfolio/internal/notify"
	"github.com/KittyCore/portfolio/internal/web/handler/review"
	"github.com/KittyCore/portfolio/internal/web/webtest"
)

const (
	thanks   = "⭐ Thanks for your feedback! You're pawsome!"
	rejected = "❌ Please add your name, a review and a rating from 1 to 5 stars."
)

func newEnv(t *testing.T) *webtest.Env {
	t.Helper()

	env := webtest.New(t)
	var s review.Service
	env.Init(t, &s)

	return env
}

func form(stars string) url.Values {
	return url.Values{"name": {"Cat"}, "review": {"meow"}, "stars": {stars}}
}

func TestStars(t *testing.T) {
	tests := []struct {
		stars  string
		stored bool
	}{
		{"1", true},
		{"5", true},
		{"0", false},
		{"6", false},
		{"-2", false},
		{"five", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("stars="+tt.stars, func(t *testing.T) {
			env := newEnv(t)

			resp := webtest.PostForm(t, env.App, review.Path, form(tt.stars))
			assert.Equal(t, fiber.StatusFound, resp.Status)

			rows, err := feedbackdb.List(env.Deps.DB, "")
			require.NoError(t, err)

			if !tt.stored {
				assert.Equal(t, rejected, resp.Flash())
				assert.Empty(t, rows)
				assert.Empty(t, env.Notifier.Messages())

				return
			}

			assert.Equal(t, thanks, resp.Flash())
			require.Len(t, rows, 1)
			assert.Equal(t, models.FeedbackNew, rows[0].Status)

			msgs := env.Notifier.Messages()
			require.Len(t, msgs, 1)
			assert.Equal(t, notify.KindFeedback, msgs[0].Kind)
			assert.Contains(t, msgs[0].Subject, notify.Stars(rows[0].Stars))
		})
	}
}

func TestGet(t *testing.T) {
	env := newEnv(t)

	resp := webtest.Get(t, env.App, review.Path)
	assert.Equal(t, fiber.StatusOK, resp.Status)
	assert.Contains(t, resp.Body, "Stars=[1 2 3 4 5]")
}
