package services

import (
	"testing"
	"time"
)

func TestAuthService_GenerateAndValidateToken(t *testing.T) {
	authService := NewAuthService("test-secret", time.Hour)

	tests := []struct {
		name     string
		username string
		role     Role
	}{
		{"admin token", "moshe", RoleAdmin},
		{"player token", "dana", RolePlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := authService.GenerateToken(tt.username, tt.role)
			if err != nil {
				t.Fatalf("GenerateToken() error = %v", err)
			}

			if token == "" {
				t.Fatal("GenerateToken() returned empty token")
			}

			claims, err := authService.ValidateToken(token)
			if err != nil {
				t.Fatalf("ValidateToken() error = %v", err)
			}

			if claims.Username != tt.username {
				t.Errorf("Username = %v, want %v", claims.Username, tt.username)
			}

			if claims.Role != tt.role {
				t.Errorf("Role = %v, want %v", claims.Role, tt.role)
			}
		})
	}
}

func TestAuthService_InvalidToken(t *testing.T) {
	authService := NewAuthService("test-secret", time.Hour)

	_, err := authService.ValidateToken("invalid-token")
	if err == nil {
		t.Error("ValidateToken() should return error for invalid token")
	}
}

func TestAuthService_WrongSecret(t *testing.T) {
	authService1 := NewAuthService("secret-1", time.Hour)
	authService2 := NewAuthService("secret-2", time.Hour)

	token, err := authService1.GenerateToken("moshe", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := authService2.ValidateToken(token); err == nil {
		t.Error("ValidateToken() should reject token signed with a different secret")
	}
}

func TestAuthService_ExpiredToken(t *testing.T) {
	authService := NewAuthService("test-secret", -time.Minute)

	token, err := authService.GenerateToken("moshe", RolePlayer)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := authService.ValidateToken(token); err == nil {
		t.Error("ValidateToken() should reject an expired token")
	}
}
