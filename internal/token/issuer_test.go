package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	issuer, err := NewIssuer("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}

	tokenString, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	subject, err := issuer.Verify(tokenString)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "user-123" {
		t.Errorf("subject = %q, want %q", subject, "user-123")
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	issuer, err := NewIssuer("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	valid, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := issuer.Verify(""); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("empty token error = %v, want ErrTokenInvalid", err)
	}
	if _, err := issuer.Verify("not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("malformed token error = %v, want ErrTokenInvalid", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(valid, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)
	if _, err := issuer.Verify(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("tampered token error = %v, want ErrTokenInvalid", err)
	}

	// Token signed with a different secret.
	otherIssuer, err := NewIssuer("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer(other): %v", err)
	}
	foreign, err := otherIssuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue(other): %v", err)
	}
	if _, err := issuer.Verify(foreign); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("foreign-signed token error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer, err := NewIssuer("secret", time.Millisecond)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	tokenString, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := issuer.Verify(tokenString); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expired token error = %v, want ErrTokenExpired", err)
	}
}

func TestNewIssuerValidation(t *testing.T) {
	if _, err := NewIssuer("", time.Hour); err == nil {
		t.Error("empty secret accepted")
	}
	if _, err := NewIssuer("secret", 0); err == nil {
		t.Error("zero lifetime accepted")
	}
	if _, err := NewIssuer("secret", -time.Minute); err == nil {
		t.Error("negative lifetime accepted")
	}
}
