package auth

import (
	"testing"

	"github.com/spec-kit/crm-service/internal/domain"
)

func TestAuthorize(t *testing.T) {
	salesClaims := &Claims{UserID: "u-1", Email: "rep@example.com", Role: "SALES"}

	cases := []struct {
		name    string
		claims  *Claims
		allowed []domain.Role
		wantOK  bool
	}{
		{
			name:    "role in allowed set",
			claims:  salesClaims,
			allowed: []domain.Role{domain.RoleSales, domain.RoleAdmin},
			wantOK:  true,
		},
		{
			name:    "role not in allowed set",
			claims:  salesClaims,
			allowed: []domain.Role{domain.RoleAdmin, domain.RoleManager},
			wantOK:  false,
		},
		{
			name:    "empty allowed set denies everyone",
			claims:  &Claims{UserID: "u-2", Email: "admin@example.com", Role: "ADMIN"},
			allowed: nil,
			wantOK:  false,
		},
		{
			name:    "unknown role denies",
			claims:  &Claims{UserID: "u-3", Email: "x@example.com", Role: "SUPERADMIN"},
			allowed: []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleSales, domain.RoleUser},
			wantOK:  false,
		},
		{
			name:    "missing role denies",
			claims:  &Claims{UserID: "u-4", Email: "y@example.com"},
			allowed: []domain.Role{domain.RoleUser},
			wantOK:  false,
		},
		{
			name:    "nil claims denies",
			claims:  nil,
			allowed: []domain.Role{domain.RoleAdmin},
			wantOK:  false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.claims, tc.allowed...)
			if tc.wantOK && err != nil {
				t.Fatalf("Authorize() = %v, want nil", err)
			}
			if !tc.wantOK && err == nil {
				t.Fatal("Authorize() = nil, want deny")
			}
		})
	}
}
