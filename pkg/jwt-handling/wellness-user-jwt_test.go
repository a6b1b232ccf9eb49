package jwthandling

import (
	"testing"
	"time"
)

func TestWellnessUserTokenRoundTrip(t *testing.T) {
	token, err := GenerateNewWellnessUserToken(time.Minute, "user-1", "default", "session-1", "test-key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, valid, err := ValidateWellnessUserToken(token, "test-key")
	if err != nil || !valid {
		t.Fatalf("expected valid token, got valid=%v err=%v", valid, err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q, want user-1", claims.Subject)
	}
	if claims.InstanceID != "default" {
		t.Errorf("instanceID = %q, want default", claims.InstanceID)
	}
	if claims.SessionID != "session-1" {
		t.Errorf("sessionID = %q, want session-1", claims.SessionID)
	}
}

func TestWellnessUserTokenWrongKey(t *testing.T) {
	token, err := GenerateNewWellnessUserToken(time.Minute, "user-1", "default", "session-1", "test-key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, valid, _ := ValidateWellnessUserToken(token, "other-key"); valid {
		t.Error("token signed with another key should not validate")
	}
}

func TestWellnessUserTokenExpired(t *testing.T) {
	token, err := GenerateNewWellnessUserToken(-time.Minute, "user-1", "default", "session-1", "test-key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, valid, _ := ValidateWellnessUserToken(token, "test-key"); valid {
		t.Error("expired token should not validate")
	}
}
