package domain

import "testing"

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"ADMIN", "MANAGER", "SALES", "USER"} {
		role, err := ParseRole(valid)
		if err != nil {
			t.Errorf("ParseRole(%q) err = %v", valid, err)
		}
		if string(role) != valid {
			t.Errorf("ParseRole(%q) = %q", valid, role)
		}
	}

	for _, invalid := range []string{"", "admin", "SUPERADMIN", "Sales "} {
		if _, err := ParseRole(invalid); err == nil {
			t.Errorf("ParseRole(%q) accepted", invalid)
		}
	}
}
