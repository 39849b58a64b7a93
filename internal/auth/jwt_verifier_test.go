package auth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"analysisdesk/internal/domain"
	"analysisdesk/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

func testVerifier(t *testing.T) (*JWKSVerifier, *ecdsa.PrivateKey) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	kf := func(*jwt.Token) (any, error) { return &key.PublicKey, nil }
	return NewKeyfuncVerifier(kf, slog.New(slog.NewTextHandler(io.Discard, nil))), key
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims *models.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestVerifyToken(t *testing.T) {
	v, key := testVerifier(t)
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name    string
		token   string
		wantSub string
	}{
		{
			name:    "valid",
			token:   sign(t, jwt.SigningMethodES256, key, &models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "analyst-1", ExpiresAt: future}}),
			wantSub: "analyst-1",
		},
		{
			name:  "expired",
			token: sign(t, jwt.SigningMethodES256, key, &models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "analyst-1", ExpiresAt: past}}),
		},
		{
			name:  "missing subject",
			token: sign(t, jwt.SigningMethodES256, key, &models.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}}),
		},
		{
			name:  "hmac rejected",
			token: sign(t, jwt.SigningMethodHS256, []byte("secret"), &models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "x", ExpiresAt: future}}),
		},
		{
			name:  "garbage",
			token: "not-a-jwt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := v.VerifyToken(tt.token)
			if tt.wantSub == "" {
				if !errors.Is(err, domain.ErrUnauthorized) {
					t.Fatalf("expected unauthorized, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if claims.Subject != tt.wantSub {
				t.Errorf("subject = %q, want %q", claims.Subject, tt.wantSub)
			}
		})
	}
}
