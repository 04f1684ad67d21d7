package auth

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager("test-secret")

	token, err := manager.GenerateToken("user-1", "operator")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID mismatch: got %s", claims.UserID)
	}
	if claims.Username != "operator" {
		t.Errorf("Username mismatch: got %s", claims.Username)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a").GenerateToken("user-1", "operator")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := NewJWTManager("secret-b").ValidateToken(token); err == nil {
		t.Error("Token signed with another secret must not validate")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := NewJWTManager("secret").ValidateToken("not.a.token"); err == nil {
		t.Error("Expected error for malformed token")
	}
}
