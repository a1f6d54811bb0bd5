package auth

import (
	"strings"
	"testing"
	"time"
)

var tokenSecret = []byte("test-secret")

func TestToken_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)
	token, err := IssueToken(tokenSecret, "user-1", now)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if !strings.HasPrefix(token, TokenPrefix+".") {
		t.Fatalf("expected token prefix %q, got %q", TokenPrefix, token)
	}

	claims, err := VerifyToken(token, tokenSecret, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.Sub != "user-1" {
		t.Fatalf("expected subject user-1, got %q", claims.Sub)
	}
	if claims.Exp != now.Add(TokenTTL).Unix() {
		t.Fatalf("unexpected expiry %d", claims.Exp)
	}
}

func TestToken_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)
	token, err := IssueToken(tokenSecret, "user-1", now)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err = VerifyToken(token, tokenSecret, now.Add(TokenTTL+time.Second))
	if err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestToken_TamperedPayloadRejected(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)
	token, err := IssueToken(tokenSecret, "user-1", now)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	parts := strings.Split(token, ".")
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	_, err = VerifyToken(strings.Join(parts, "."), tokenSecret, now)
	if err != ErrInvalidTokenSignature && err != ErrInvalidTokenFormat {
		t.Fatalf("expected tampered token to be rejected, got %v", err)
	}
}

func TestToken_WrongSecretRejected(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)
	token, err := IssueToken(tokenSecret, "user-1", now)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := VerifyToken(token, []byte("other-secret"), now); err != ErrInvalidTokenSignature {
		t.Fatalf("expected ErrInvalidTokenSignature, got %v", err)
	}
}

func TestToken_MalformedRejected(t *testing.T) {
	t.Parallel()

	now := time.Now()
	for _, token := range []string{"", "adm1", "adm1.only", "sse1.a.b", "adm1.!.!"} {
		if _, err := VerifyToken(token, tokenSecret, now); err == nil {
			t.Fatalf("expected token %q to be rejected", token)
		}
	}
}

func TestIssueToken_RequiresSecretAndSubject(t *testing.T) {
	t.Parallel()

	if _, err := IssueToken(nil, "user-1", time.Now()); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := IssueToken(tokenSecret, "", time.Now()); err == nil {
		t.Fatalf("expected error for empty user id")
	}
}
