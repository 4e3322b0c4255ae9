// Package webtest wires handlers to in-memory dependencies for tests.
package webtest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/require"

	"github.com/KittyCore/portfolio/internal/auth"
	"github.com/KittyCore/portfolio/internal/config"
	"github.com/KittyCore/portfolio/internal/db/dbtest"
	"github.com/KittyCore/portfolio/internal/notify"
	"github.com/KittyCore/portfolio/internal/web/flash"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/session"
)

// AdminPassword is the admin secret of the test config.
const AdminPassword = "s3cret"

// Views is a Fiber Views engine writing the template name followed by
// one sorted "key=value" line per bound field.
type Views struct{}

// Load implements fiber.Views.
func (Views) Load() error { return nil }

// Render implements fiber.Views.
func (Views) Render(w io.Writer, name string, data any, _ ...string) error {
	_, _ = fmt.Fprintln(w, name)

	m, ok := data.(fiber.Map)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "%s=%v\n", k, m[k])
	}

	return nil
}

// Notifier records notifications instead of sending them.
type Notifier struct {
	mu   sync.Mutex
	msgs []notify.Message
}

// NotifyAsync implements notify.Notifier.
func (n *Notifier) NotifyAsync(msg notify.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.msgs = append(n.msgs, msg)
}

// Messages returns the recorded notifications.
func (n *Notifier) Messages() []notify.Message {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]notify.Message(nil), n.msgs...)
}

// Env is a test app with its dependencies.
type Env struct {
	App      *fiber.App
	Deps     *handler.Deps
	Notifier *Notifier
}

// Config returns a valid config with media directories below t.TempDir().
func Config(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()

	return &config.Config{
		Title: "Portfolio",
		Webserver: config.Webserver{
			Port:      8080,
			URL:       "http://localhost:8080",
			SecretKey: "test-secret",
			Session:   config.Session{ExpiryTime: time.Hour},
		},
		DB:    config.DB{GormEngine: config.EngineSQLite},
		Admin: config.Admin{Password: AdminPassword},
		Media: config.Media{
			UploadDir:         dir + "/uploads",
			OutputDir:         dir + "/outputs",
			FFmpegPath:        "ffmpeg",
			Bitrate:           "192k",
			AllowedExtensions: []string{".m4a", ".wav", ".flac", ".ogg", ".aac", ".wma"},
		},
	}
}

// New returns an app using the stub views, a fresh in-memory database and session store.
func New(t *testing.T) *Env {
	t.Helper()

	cfg := Config(t)
	n := &Notifier{}

	deps := &handler.Deps{
		Cfg:      cfg,
		DB:       dbtest.New(t),
		Sessions: session.New(memory.New(), cfg.Webserver.Session.ExpiryTime, false),
		Notifier: n,
		Verifier: auth.NewVerifier(cfg.Admin.Password),
	}

	app := fiber.New(fiber.Config{Views: Views{}, CaseSensitive: true})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(handler.LocalsSiteTitle, cfg.Title)
		return c.Next()
	})

	return &Env{App: app, Deps: deps, Notifier: n}
}

// Init registers s on the app.
func (e *Env) Init(t *testing.T, s handler.Service) {
	t.Helper()
	require.NoError(t, s.Init(e.App, e.Deps))
}

// Group registers s on a router group below prefix guarded by handlers.
func (e *Env) Group(t *testing.T, prefix string, s handler.Service, handlers ...fiber.Handler) {
	t.Helper()
	require.NoError(t, s.Init(e.App.Group(prefix, handlers...), e.Deps))
}

// AdminCookie stores an admin session and returns the matching cookie option.
func (e *Env) AdminCookie(t *testing.T) Option {
	t.Helper()

	id, err := session.GenerateSessionID()
	require.NoError(t, err)
	require.NoError(t, e.Deps.Sessions.Write(id, &session.Data{Admin: true, LoginAt: time.Now()}))

	return WithCookie(session.CookieName, id)
}

// Option modifies a test request.
type Option func(r *http.Request)

// WithCookie adds a cookie.
func WithCookie(name, value string) Option {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

// WithReferer sets the Referer header.
func WithReferer(ref string) Option {
	return func(r *http.Request) {
		r.Header.Set(fiber.HeaderReferer, ref)
	}
}

// Response is a fully read test response.
type Response struct {
	Status   int
	Location string
	Body     string
	Header   http.Header
	Cookies  []*http.Cookie
}

// Flashes returns the messages set in the flash cookie of the response.
func (r Response) Flashes() []flash.Message {
	for _, c := range r.Cookies {
		if c.Name == flash.CookieName {
			return flash.Parse(c.Value)
		}
	}

	return nil
}

// Flash returns the text of the only flash message, or "".
func (r Response) Flash() string {
	msgs := r.Flashes()
	if len(msgs) != 1 {
		return ""
	}

	return msgs[0].Text
}

// Cookie returns the value of the named response cookie.
func (r Response) Cookie(name string) (string, bool) {
	for _, c := range r.Cookies {
		if c.Name == name {
			return c.Value, true
		}
	}

	return "", false
}

// Do runs req against app.
func Do(t *testing.T, app *fiber.App, req *http.Request, opts ...Option) Response {
	t.Helper()

	for _, opt := range opts {
		opt(req)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return Response{
		Status:   resp.StatusCode,
		Location: resp.Header.Get(fiber.HeaderLocation),
		Body:     string(body),
		Header:   resp.Header,
		Cookies:  resp.Cookies(),
	}
}

// Get performs a GET request.
func Get(t *testing.T, app *fiber.App, target string, opts ...Option) Response {
	t.Helper()

	return Do(t, app, httptest.NewRequest(fiber.MethodGet, target, nil), opts...)
}

// PostForm performs a url encoded form POST.
func PostForm(t *testing.T, app *fiber.App, target string, form url.Values, opts ...Option) Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	return Do(t, app, req, opts...)
}
