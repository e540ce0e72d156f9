package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func TestJWTManager_GenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, "wordbot-test", 15*time.Minute)

	token, err := manager.GenerateAccessToken(987654321)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	ownerID, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if ownerID != 987654321 {
		t.Errorf("expected ownerID 987654321, got %d", ownerID)
	}
}

func TestJWTManager_Generate_RejectsNonPositiveOwner(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, "wordbot-test", time.Minute)
	if _, err := manager.GenerateAccessToken(0); err == nil {
		t.Fatal("expected error for owner id 0")
	}
}

func TestJWTManager_Validate_Expired(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, "wordbot-test", -time.Minute)
	token, err := manager.GenerateAccessToken(1)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestJWTManager_Validate_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager(testSecret, "wordbot-test", time.Minute)
	verifier := NewJWTManager("another-secret-that-is-also-32-chars-long", "wordbot-test", time.Minute)

	token, err := issuer.GenerateAccessToken(1)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if _, err := verifier.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestJWTManager_Validate_WrongIssuer(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager(testSecret, "someone-else", time.Minute)
	verifier := NewJWTManager(testSecret, "wordbot-test", time.Minute)

	token, _ := issuer.GenerateAccessToken(1)
	_, err := verifier.ValidateAccessToken(token)
	if err == nil || !strings.Contains(err.Error(), "invalid issuer") {
		t.Fatalf("expected invalid issuer error, got %v", err)
	}
}

func TestJWTManager_Validate_NonNumericSubject(t *testing.T) {
	t.Parallel()

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-number",
		Issuer:    "wordbot-test",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	manager := NewJWTManager(testSecret, "wordbot-test", time.Minute)
	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for non-numeric subject")
	}
}

func TestJWTManager_Validate_Garbage(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, "wordbot-test", time.Minute)
	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		if _, err := manager.ValidateAccessToken(tok); err == nil {
			t.Errorf("expected error for token %q", tok)
		}
	}
}

func TestJWTManager_Validate_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	claims := jwt.RegisteredClaims{Subject: "1", Issuer: "wordbot-test"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	manager := NewJWTManager(testSecret, "wordbot-test", time.Minute)
	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for alg=none token")
	}
}
