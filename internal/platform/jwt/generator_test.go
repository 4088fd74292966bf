package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestGenerator_GenerateToken(t *testing.T) {
	userID := uuid.New()
	gen := NewGenerator("test-secret", time.Hour)

	signed, err := gen.GenerateToken(userID, "rider@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signed == "" {
		t.Fatal("expected a non-empty token")
	}

	// Parse back and verify the claims
	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if claims["sub"] != userID.String() {
		t.Errorf("expected sub %q, got %v", userID.String(), claims["sub"])
	}
	if claims["email"] != "rider@example.com" {
		t.Errorf("expected email claim, got %v", claims["email"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("exp claim missing")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		t.Error("token expired immediately")
	}
}

func TestGenerator_GenerateToken_WrongSecret(t *testing.T) {
	gen := NewGenerator("secret-a", time.Hour)

	signed, err := gen.GenerateToken(uuid.New(), "rider@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	if err == nil && token.Valid {
		t.Error("token verified with the wrong secret")
	}
}
