package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crm-service/internal/domain"
)

func newGuardedApp(tm *TokenManager) *fiber.App {
	app := fiber.New()
	mw := NewAuthMiddleware(tm)
	app.Get("/admin-only", mw.Handle, RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		claims, _ := ClaimsFromContext(c)
		return c.JSON(fiber.Map{"email": claims.Email})
	})
	return app
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour, 7*24*time.Hour)
	app := newGuardedApp(tm)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode == http.StatusOK {
		t.Fatal("unauthenticated request reached handler")
	}
}

func TestAuthMiddlewareRejectsBadHeader(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour, 7*24*time.Hour)
	app := newGuardedApp(tm)

	for _, header := range []string{"Bearer", "Basic abc", "Bearer bad.token.here"} {
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode == http.StatusOK {
			t.Errorf("header %q reached handler", header)
		}
	}
}

func TestRequireRoleGate(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour, 7*24*time.Hour)
	app := newGuardedApp(tm)

	adminToken, _, err := tm.GenerateAccessToken(&domain.User{
		ID: "u-1", Email: "admin@example.com", FullName: "Ada", Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("generate admin token: %v", err)
	}
	salesToken, _, err := tm.GenerateAccessToken(&domain.User{
		ID: "u-2", Email: "rep@example.com", FullName: "Sal", Role: domain.RoleSales,
	})
	if err != nil {
		t.Fatalf("generate sales token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("admin request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("admin status = %d, want 200", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+salesToken)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("sales request: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("sales status = %d, want 403", resp.StatusCode)
	}
}
