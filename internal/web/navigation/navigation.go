// Package navigation provides the menu and breadcrumb state of a rendered page.
package navigation

// Sections of the site.
const (
	SectionPublic = "public"
	SectionAdmin  = "admin"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Link is one menu entry.
type Link struct {
	Page  string
	Title string
	URL   string
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// Public returns the context of a public page.
func Public(page, title string) *Context {
	return NewContext(title, SectionPublic, page)
}

// Admin returns the context of an admin page with the dashboard as first breadcrumb.
func Admin(page, title string) *Context {
	ctx := NewContext(title, SectionAdmin, page)
	if page == "dashboard" {
		return ctx.AddBreadcrumb("Dashboard", "/admin", true)
	}

	return ctx.
		AddBreadcrumb("Dashboard", "/admin", false).
		AddBreadcrumb(title, "", true)
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}

// Menu returns the links of the active section.
func (c *Context) Menu() []Link {
	if c.ActiveSection == SectionAdmin {
		return AdminLinks()
	}

	return PublicLinks()
}

// PublicLinks is the public menu.
func PublicLinks() []Link {
	return []Link{
		{Page: "about", Title: "About", URL: "/"},
		{Page: "resume", Title: "Resume", URL: "/resume"},
		{Page: "contact", Title: "Contact", URL: "/contact"},
		{Page: "request", Title: "Request an App", URL: "/request"},
		{Page: "review", Title: "Review the Game", URL: "/review"},
		{Page: "audio", Title: "Audio Converter", URL: "/audio-converter"},
		{Page: "support", Title: "Support", URL: "/support"},
	}
}

// AdminLinks is the admin menu.
func AdminLinks() []Link {
	return []Link{
		{Page: "dashboard", Title: "Dashboard", URL: "/admin"},
		{Page: "messages", Title: "Messages", URL: "/admin/messages-suggestions"},
		{Page: "support", Title: "Support", URL: "/admin/support"},
		{Page: "feedback", Title: "Game Feedback", URL: "/admin/game-feedback"},
		{Page: "app_requests", Title: "App Requests", URL: "/admin/app_requests"},
		{Page: "wishlist", Title: "Wishlist", URL: "/admin/wishlist"},
	}
}
