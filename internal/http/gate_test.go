package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickplate/ui-gate/internal/domain/auth"
	"github.com/quickplate/ui-gate/internal/domain/gate"
)

// staticSource is a test double for ports.CredentialSource.
type staticSource struct {
	creds auth.Credentials
}

func (s staticSource) Read(_ *http.Request) auth.Credentials { return s.creds }

func newGateHandler(creds auth.Credentials, next http.Handler) http.Handler {
	return Gate(GateOptions{
		Table:       gate.DefaultRouteTable(),
		Source:      staticSource{creds: creds},
		TokenCookie: "access_token",
		RoleCookie:  "user_role",
	})(next)
}

func TestGate_AllowPassesThrough(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	handler := newGateHandler(auth.Credentials{}, next)

	req := httptest.NewRequest(http.MethodGet, "/register", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGate_RedirectsUnauthenticated(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})
	handler := newGateHandler(auth.Credentials{}, next)

	req := httptest.NewRequest(http.MethodGet, "/courier/orders", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/courier/login", w.Header().Get("Location"))
}

func TestGate_RedirectPreservesQuery(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})
	handler := newGateHandler(auth.Credentials{}, next)

	req := httptest.NewRequest(http.MethodGet, "/courier/orders?page=2&sort=eta", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/courier/login?page=2&sort=eta", w.Header().Get("Location"))
}

func TestGate_AuthenticatedLoginBounce(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})
	creds := auth.Credentials{Token: "t", Role: auth.RoleAdmin}
	handler := newGateHandler(creds, next)

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
}

func TestGate_ClearsCorruptedCredentials(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})
	handler := newGateHandler(auth.Credentials{Token: "stale"}, next)

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	names := map[string]bool{}
	for _, c := range cookies {
		names[c.Name] = true
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
	}
	assert.True(t, names["access_token"])
	assert.True(t, names["user_role"])
}

func TestGate_ClearedCookiesAreSecureBehindTLSProxy(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := newGateHandler(auth.Credentials{Token: "stale"}, next)

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.True(t, c.Secure)
	}
}

func TestGate_ExclusionBypassesCredentialRead(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	// Even the corrupted credential state passes through on excluded paths.
	handler := newGateHandler(auth.Credentials{Token: "stale"}, next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Empty(t, w.Result().Cookies())
}

func TestGate_CrossRoleRedirect(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})
	creds := auth.Credentials{Token: "t", Role: auth.RoleVendor}
	handler := newGateHandler(creds, next)

	req := httptest.NewRequest(http.MethodGet, "/courier/orders", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/supplier/dashboard", w.Header().Get("Location"))
}
