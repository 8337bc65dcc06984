package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/crm-service/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "u-1",
		FullName: "Jane Rivera",
		Email:    "jane@example.com",
		Role:     domain.RoleSales,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour, 7*24*time.Hour)
	user := testUser()

	token, expiresAt, err := tm.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expiry %v not in the future", expiresAt)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("user id = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("email = %q, want %q", claims.Email, user.Email)
	}
	if claims.FullName != user.FullName {
		t.Errorf("full name = %q, want %q", claims.FullName, user.FullName)
	}
	if claims.Role != string(user.Role) {
		t.Errorf("role = %q, want %q", claims.Role, user.Role)
	}
	if claims.Subject != user.Email {
		t.Errorf("subject = %q, want %q", claims.Subject, user.Email)
	}
}

func TestRefreshTokenOmitsAuthorizationClaims(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour, 7*24*time.Hour)

	token, _, err := tm.GenerateRefreshToken(testUser())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Role != "" {
		t.Errorf("refresh token carries role %q", claims.Role)
	}
	if claims.FullName != "" {
		t.Errorf("refresh token carries full name %q", claims.FullName)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
}

func TestTokensAreDistinctPerIssuance(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour, 7*24*time.Hour)
	user := testUser()

	first, _, err := tm.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("generate first: %v", err)
	}
	second, _, err := tm.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("generate second: %v", err)
	}

	if first == second {
		t.Fatal("two issuances produced identical tokens")
	}
	if _, err := tm.ParseToken(first); err != nil {
		t.Errorf("first token invalid: %v", err)
	}
	if _, err := tm.ParseToken(second); err != nil {
		t.Errorf("second token invalid: %v", err)
	}
}

func TestParseTokenExpiry(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm := NewTokenManager("secret-one", time.Hour, 7*24*time.Hour)
	tm.now = func() time.Time { return issuedAt }

	token, _, err := tm.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tm.now = func() time.Time { return issuedAt.Add(time.Hour - time.Minute) }
	if _, err := tm.ParseToken(token); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}

	tm.now = func() time.Time { return issuedAt.Add(time.Hour + time.Minute) }
	if _, err := tm.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Hour, 7*24*time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour, 7*24*time.Hour)

	token, _, err := issuer.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("err = %v, want ErrTokenSignature", err)
	}
}

func TestParseTokenMalformed(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour, 7*24*time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := tm.ParseToken(token); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("ParseToken(%q) err = %v, want ErrTokenMalformed", token, err)
		}
	}
}

func TestParseTokenRejectsTamperedSignature(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour, 7*24*time.Hour)

	token, _, err := tm.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments", len(parts))
	}
	sig := []byte(parts[2])
	if sig[5] == 'A' {
		sig[5] = 'B'
	} else {
		sig[5] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := tm.ParseToken(tampered); !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("err = %v, want ErrTokenSignature", err)
	}
}

func TestParseTokenRejectsUnsignedAlg(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour, 7*24*time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: "u-1",
		Email:  "jane@example.com",
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.ParseToken(token); !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("err = %v, want ErrTokenSignature", err)
	}
}
