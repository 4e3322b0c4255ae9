package messages_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contactdb "github.com/KittyCore/portfolio/internal/db/controller/contact"
	"github.com/KittyCore/portfolio/internal/db/models"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/handler/admin/messages"
	authmiddleware "github.com/KittyCore/portfolio/internal/web/middleware/auth"
	"github.com/KittyCore/portfolio/internal/web/webtest"
)

const listPath = handler.AdminPath + messages.Path

func setup(t *testing.T) (*webtest.Env, []uint64) {
	t.Helper()

	env := webtest.New(t)

	var s messages.Service
	env.Group(t, handler.AdminPath, &s, authmiddleware.RequireAdmin(env.Deps.Sessions))

	var ids []uint64

	for _, name := range []string{"Ada", "Bo"} {
		c := &models.ContactSubmission{Name: name, Email: name + "@example.com", Message: "hi"}
		require.NoError(t, contactdb.Create(env.Deps.DB, c))
		ids = append(ids, c.ID)
	}

	return env, ids
}

func status(t *testing.T, env *webtest.Env, id uint64) models.ContactStatus {
	t.Helper()

	c, err := contactdb.Get(env.Deps.DB, id)
	require.NoError(t, err)

	return c.Status
}

func TestRequiresAdmin(t *testing.T) {
	env, ids := setup(t)

	resp := webtest.Get(t, env.App, listPath)
	assert.Equal(t, fiber.StatusFound, resp.Status)
	assert.Equal(t, handler.LoginPath, resp.Location)

	resp = webtest.PostForm(t, env.App, "/admin/contact/update-status/1/read", nil)
	assert.Equal(t, fiber.StatusFound, resp.Status)
	assert.Equal(t, handler.LoginPath, resp.Location)
	assert.Equal(t, models.ContactUnread, status(t, env, ids[0]))
}

func TestListAndFilter(t *testing.T) {
	env, ids := setup(t)
	admin := env.AdminCookie(t)

	require.NoError(t, contactdb.UpdateStatus(env.Deps.DB, ids[1], models.ContactRead))

	resp := webtest.Get(t, env.App, listPath, admin)
	assert.Equal(t, fiber.StatusOK, resp.Status)
	assert.Contains(t, resp.Body, messages.TemplateName+"\n")
	assert.Contains(t, resp.Body, "Total=2")
	assert.Contains(t, resp.Body, "Ada")
	assert.Contains(t, resp.Body, "Bo")

	resp = webtest.Get(t, env.App, listPath+"?filter_status=read", admin)
	assert.Contains(t, resp.Body, "FilterStatus=read")
	assert.Contains(t, resp.Body, "Bo@example.com")
	assert.NotContains(t, resp.Body, "Ada@example.com")

	// unknown filters list everything
	resp = webtest.Get(t, env.App, listPath+"?filter_status=bogus", admin)
	assert.Contains(t, resp.Body, "FilterStatus=\n")
	assert.Contains(t, resp.Body, "Ada@example.com")
}

func TestUpdateStatus(t *testing.T) {
	env, ids := setup(t)
	admin := env.AdminCookie(t)

	back := "http://localhost/admin/messages-suggestions?filter_status=unread"

	resp := webtest.PostForm(t, env.App, "/admin/contact/update-status/1/responded", nil, admin, webtest.WithReferer(back))
	assert.Equal(t, fiber.StatusFound, resp.Status)
	assert.Equal(t, "/admin/messages-suggestions?filter_status=unread", resp.Location)
	assert.Equal(t, "Contact marked as responded", resp.Flash())
	assert.Equal(t, models.ContactResponded, status(t, env, ids[0]))

	tests := []struct {
		name   string
		target string
	}{
		{name: "invalid status", target: "/admin/contact/update-status/2/archived"},
		{name: "unknown id", target: "/admin/contact/update-status/999/read"},
		{name: "bad id", target: "/admin/contact/update-status/x/read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := webtest.PostForm(t, env.App, tt.target, nil, admin)
			assert.Equal(t, fiber.StatusFound, resp.Status)
			assert.Equal(t, listPath, resp.Location)
			assert.Equal(t, "Error updating status", resp.Flash())
			assert.Equal(t, models.ContactUnread, status(t, env, ids[1]))

			rows, err := contactdb.List(env.Deps.DB, "")
			require.NoError(t, err)
			assert.Len(t, rows, 2)
		})
	}
}
