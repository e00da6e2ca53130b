// Package gate implements the request gate: a pure decision function that
// classifies an inbound request path against a static route table and the
// request's credentials. The host pipeline is responsible for applying the
// resulting Decision (forwarding, redirecting, or clearing cookies).
package gate

import "github.com/quickplate/ui-gate/internal/domain/auth"

// Action enumerates what the host must do with a request.
type Action int

const (
	// ActionAllow passes the request through unchanged.
	ActionAllow Action = iota
	// ActionRedirect redirects the client to Decision.Target.
	ActionRedirect
	// ActionRedirectClear redirects to Decision.Target and additionally
	// instructs the host to delete both credential cookies.
	ActionRedirectClear
)

// Decision is the gate's verdict for a single request. It carries the
// credential-clearing instruction as data; the gate itself performs no I/O.
type Decision struct {
	Action Action
	Target string
}

// Allow passes the request through.
func Allow() Decision { return Decision{Action: ActionAllow} }

// Redirect sends the client to target.
func Redirect(target string) Decision {
	return Decision{Action: ActionRedirect, Target: target}
}

// RedirectClear sends the client to target and clears credentials.
func RedirectClear(target string) Decision {
	return Decision{Action: ActionRedirectClear, Target: target}
}

// Decide classifies one request. It is total: every input combination maps to
// exactly one Decision and no error path exists. Rules are evaluated strictly
// in order and the first match wins.
//
// path must be the URL path component only, without the query string.
func Decide(t RouteTable, path string, creds auth.Credentials) Decision {
	// Excluded paths short-circuit everything, including credential checks,
	// so infrastructure routes are never redirected.
	if t.isExcluded(path) {
		return Allow()
	}

	if t.isPublic(path) {
		// An authenticated user has no business on a login page; bounce to
		// the role dashboard. Public non-login pages stay reachable.
		if creds.HasToken() && creds.HasRole() && t.isLoginPage(path) {
			return Redirect(t.DashboardFor(creds.Role))
		}
		return Allow()
	}

	// Protected area without a token: pick the login variant from the
	// requested area, since no role is known yet.
	if !creds.HasToken() {
		return Redirect(t.LoginFor(path))
	}

	// Token without a recognized role is a corrupted credential state. Clear
	// both cookies so the next request takes the clean no-token branch
	// instead of looping here.
	if !creds.HasRole() {
		return RedirectClear(t.DefaultLogin)
	}

	// Role-gated area owned by some role: deny cross-role access by sending
	// the user home. Paths outside every role's territory fall through.
	if t.isRoleGated(path) && !t.roleAllows(creds.Role, path) {
		return Redirect(t.DashboardFor(creds.Role))
	}

	return Allow()
}
