package gate

import (
	"strings"

	"github.com/quickplate/ui-gate/internal/domain/auth"
)

// LoginArea maps a protected path prefix to the login page for that area.
// The mapping is keyed by area, not by role, so the right login variant can
// be chosen for a request that carries no credentials at all.
type LoginArea struct {
	Prefix string
	Login  string
}

// RouteTable is the static route classification the gate decides against.
// It is built once at startup and passed in explicitly; the gate never
// mutates it, so any number of concurrent requests may share one table.
//
// All matching is plain string-prefix matching, not path-segment aware:
// a "/account" entry matches "/accountable". This mirrors the routing
// contract of the web application the gate fronts and must not be "fixed"
// independently of it.
type RouteTable struct {
	// Public holds path prefixes that require no authentication.
	// The root path "/" is special-cased to an exact match.
	Public []string

	// Excluded holds path prefixes the gate never evaluates. Exclusion has
	// absolute precedence over every other rule, credentials included.
	Excluded []string

	// RoleAccess maps each role to the path prefixes it may access.
	RoleAccess map[auth.Role][]string

	// RoleDashboards maps each role to its default landing path. Roles
	// missing from the map fall back to "/".
	RoleDashboards map[auth.Role]string

	// LoginAreas resolve which login page an unauthenticated request for a
	// protected area should land on. First matching prefix wins.
	LoginAreas []LoginArea

	// DefaultLogin is the generic login page used when no LoginArea matches,
	// and the target of the credential-clearing redirect.
	DefaultLogin string
}

// DefaultRouteTable returns the production route table for the Quickplate
// web application.
func DefaultRouteTable() RouteTable {
	return RouteTable{
		Public: []string{
			"/",
			"/login",
			"/register",
			"/admin/login",
			"/supplier/login",
			"/courier/login",
			"/menu",
			"/restaurants",
			"/about",
		},
		Excluded: []string{
			"/api",
			"/static",
			"/assets",
			"/favicon.ico",
			"/healthz",
		},
		RoleAccess: map[auth.Role][]string{
			auth.RoleAdmin:    {"/admin"},
			auth.RoleVendor:   {"/supplier"},
			auth.RoleDelivery: {"/courier"},
			auth.RoleClient:   {"/account", "/orders", "/checkout"},
		},
		RoleDashboards: map[auth.Role]string{
			auth.RoleAdmin:    "/admin/dashboard",
			auth.RoleVendor:   "/supplier/dashboard",
			auth.RoleDelivery: "/courier/dashboard",
			auth.RoleClient:   "/account",
		},
		LoginAreas: []LoginArea{
			{Prefix: "/admin", Login: "/admin/login"},
			{Prefix: "/supplier", Login: "/supplier/login"},
			{Prefix: "/courier", Login: "/courier/login"},
		},
		DefaultLogin: "/login",
	}
}

// WithExtraRoutes returns a copy of the table with additional public and
// excluded prefixes appended. Used to fold deployment-specific routes from
// configuration into the default table.
func (t RouteTable) WithExtraRoutes(public, excluded []string) RouteTable {
	t.Public = append(append([]string{}, t.Public...), public...)
	t.Excluded = append(append([]string{}, t.Excluded...), excluded...)
	return t
}

// DashboardFor returns the landing path for a role, falling back to "/" when
// the role has no dashboard entry.
func (t RouteTable) DashboardFor(role auth.Role) string {
	if target, ok := t.RoleDashboards[role]; ok {
		return target
	}
	return "/"
}

// LoginFor returns the login page for the protected area containing path,
// falling back to the generic login page.
func (t RouteTable) LoginFor(path string) string {
	for _, area := range t.LoginAreas {
		if strings.HasPrefix(path, area.Prefix) {
			return area.Login
		}
	}
	return t.DefaultLogin
}

// isExcluded reports whether path falls under an excluded prefix.
func (t RouteTable) isExcluded(path string) bool {
	for _, prefix := range t.Excluded {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// isPublic reports whether path matches the public set. The root entry "/"
// only matches the root path itself; every other entry is a prefix match.
func (t RouteTable) isPublic(path string) bool {
	for _, prefix := range t.Public {
		if prefix == "/" {
			if path == "/" {
				return true
			}
			continue
		}
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// isLoginPage reports whether path falls on one of the known login pages.
func (t RouteTable) isLoginPage(path string) bool {
	if t.DefaultLogin != "" && strings.HasPrefix(path, t.DefaultLogin) {
		return true
	}
	for _, area := range t.LoginAreas {
		if strings.HasPrefix(path, area.Login) {
			return true
		}
	}
	return false
}

// isRoleGated reports whether path falls under any prefix anywhere in the
// RoleAccess table, i.e. whether the path belongs to a role-gated area at all.
func (t RouteTable) isRoleGated(path string) bool {
	for _, prefixes := range t.RoleAccess {
		for _, prefix := range prefixes {
			if strings.HasPrefix(path, prefix) {
				return true
			}
		}
	}
	return false
}

// roleAllows reports whether the given role's own prefixes cover path.
func (t RouteTable) roleAllows(role auth.Role, path string) bool {
	for _, prefix := range t.RoleAccess[role] {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
