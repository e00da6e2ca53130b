package auth

import "testing"

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"ADMIN", "VENDOR", "DELIVERY", "CLIENT"} {
		role, ok := ParseRole(valid)
		if !ok || string(role) != valid {
			t.Fatalf("ParseRole(%q) = (%q, %v), expected valid role", valid, role, ok)
		}
	}
	for _, invalid := range []string{"", "admin", "SUPERADMIN", "ADMIN ", "vendor"} {
		role, ok := ParseRole(invalid)
		if ok || role != "" {
			t.Fatalf("ParseRole(%q) = (%q, %v), expected fail-closed", invalid, role, ok)
		}
	}
}

func TestCredentials_Presence(t *testing.T) {
	if (Credentials{}).HasToken() || (Credentials{}).HasRole() {
		t.Fatalf("empty credentials must report both values absent")
	}
	c := Credentials{Token: "t"}
	if !c.HasToken() || c.HasRole() {
		t.Fatalf("token-only credentials misreported: %+v", c)
	}
	c.Role = RoleClient
	if !c.HasRole() {
		t.Fatalf("expected role present: %+v", c)
	}
}
