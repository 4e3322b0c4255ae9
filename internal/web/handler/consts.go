package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// AdminPath is the prefix of all admin pages.
	AdminPath = "/admin"

	// LoginPath is the admin login page.
	LoginPath = AdminPath + "/login"

	// LogoutPath ends the admin session.
	LogoutPath = AdminPath + "/logout"

	// LocalsAdmin is set to true on requests carrying a valid admin session.
	LocalsAdmin = "admin"

	// LocalsSiteTitle holds the configured site title for the layout.
	LocalsSiteTitle = "site_title"
)
