package web

import (
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KittyCore/portfolio/internal/media"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/session"
	"github.com/KittyCore/portfolio/internal/web/webtest"
)

func newService(t *testing.T) *Service {
	t.Helper()

	env := webtest.New(t)
	env.Deps.Converter = media.NewConverter(env.Deps.Cfg.Media, media.FFmpeg{Path: "ffmpeg", Bitrate: "192k"})

	s, err := New(env.Deps.Cfg, env.Deps)
	require.NoError(t, err)

	return s
}

func TestNewNilDeps(t *testing.T) {
	cfg := webtest.Config(t)

	_, err := New(nil, &handler.Deps{})
	require.Error(t, err)

	_, err = New(cfg, nil)
	require.ErrorIs(t, err, handler.ErrNilDeps)
}

func TestCheckAlive(t *testing.T) {
	s := newService(t)

	resp := webtest.Get(t, s.App, CheckAlivePath)
	assert.Equal(t, fiber.StatusOK, resp.Status)
	assert.Equal(t, "OK", resp.Body)

	s.alive.Store(false)

	resp = webtest.Get(t, s.App, CheckAlivePath)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.Status)
}

func TestMetrics(t *testing.T) {
	s := newService(t)

	resp := webtest.Get(t, s.App, MetricsPath)
	require.Equal(t, fiber.StatusOK, resp.Status)
	assert.Contains(t, resp.Body, "go_goroutines")
}

func TestStatic(t *testing.T) {
	s := newService(t)

	resp := webtest.Get(t, s.App, "/static/css/site.css")
	assert.Equal(t, fiber.StatusOK, resp.Status)
	assert.Contains(t, resp.Body, ".flash-success")

	resp = webtest.Get(t, s.App, "/static/js/site.js")
	assert.Equal(t, fiber.StatusOK, resp.Status)
}

func TestPublicPages(t *testing.T) {
	s := newService(t)

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: "<title>About | Portfolio</title>"},
		{path: "/resume", want: "Resume"},
		{path: "/contact", want: `action="/contact"`},
		{path: "/support?page=resume", want: `value="resume"`},
		{path: "/review", want: `name="stars"`},
		{path: "/request", want: `name="details"`},
		{path: "/audio-converter", want: ".wav"},
		{path: "/admin/login", want: `name="password"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := webtest.Get(t, s.App, tt.path)
			require.Equal(t, fiber.StatusOK, resp.Status, resp.Body)
			assert.Contains(t, resp.Body, tt.want)
			assert.Contains(t, resp.Body, `href="/static/css/site.css"`)
		})
	}
}

func TestAdminRequiresLogin(t *testing.T) {
	s := newService(t)

	for _, path := range []string{"/admin", "/admin/messages-suggestions", "/admin/wishlist"} {
		resp := webtest.Get(t, s.App, path)
		assert.Equal(t, fiber.StatusFound, resp.Status, path)
		assert.Equal(t, handler.LoginPath, resp.Location, path)
	}
}

func TestLoginThenDashboard(t *testing.T) {
	s := newService(t)

	resp := webtest.PostForm(t, s.App, handler.LoginPath, url.Values{"password": {webtest.AdminPassword}})
	require.Equal(t, fiber.StatusFound, resp.Status)
	assert.Equal(t, handler.AdminPath, resp.Location)

	sid, ok := resp.Cookie(session.CookieName)
	require.True(t, ok)

	pages := map[string]string{
		"/admin":                      "Recent messages",
		"/admin/messages-suggestions": "Messages &amp; Suggestions",
		"/admin/support":              "Support Tickets",
		"/admin/game-feedback":        "Game Feedback",
		"/admin/wishlist":             "Add item",
		"/admin/app_requests":         "App Requests",
	}

	for path, want := range pages {
		resp := webtest.Get(t, s.App, path, webtest.WithCookie(session.CookieName, sid))
		require.Equal(t, fiber.StatusOK, resp.Status, path)
		assert.Contains(t, resp.Body, want, path)
		assert.Contains(t, resp.Body, `action="/admin/logout"`, path)
	}
}
