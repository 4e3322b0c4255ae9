// Package auth provides the admin session middleware.
//
// RequireAdmin guards the admin route group: requests without a valid
// session are redirected to the login page and the wrapped handler never
// runs. The login and logout routes are registered before the group and
// stay reachable.
//
// Usage:
//
//	admin := app.Group("/admin", authmiddleware.RequireAdmin(store))
package auth
