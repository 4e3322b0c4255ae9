package handler

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/KittyCore/portfolio/internal/web/flash"
	"github.com/KittyCore/portfolio/internal/web/navigation"
)

// Render renders view inside the base layout. Pending flash messages,
// the navigation context and the site title are added to data.
func Render(c *fiber.Ctx, view string, nav *navigation.Context, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}

	data["Navigation"] = nav
	data["Flashes"] = flash.Pop(c)
	data["IsAdmin"] = c.Locals(LocalsAdmin) == true

	if title, ok := c.Locals(LocalsSiteTitle).(string); ok {
		data["SiteTitle"] = title
	}

	return c.Render(view, data, BaseLayout)
}

// RedirectBack redirects to the local page named by the Referer header, or to fallback.
func RedirectBack(c *fiber.Ctx, fallback string) error {
	if target := localTarget(c.Get(fiber.HeaderReferer)); target != "" {
		return c.Redirect(target)
	}

	return c.Redirect(fallback)
}

// localTarget returns path and query of ref. Anything that could leave the site yields "".
func localTarget(ref string) string {
	if ref == "" {
		return ""
	}

	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}

	p := u.EscapedPath()
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, `\`) {
		return ""
	}

	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}

	return p
}

// StatusLabel turns a status value into display text.
func StatusLabel(status string) string {
	return strings.ReplaceAll(status, "_", " ")
}
