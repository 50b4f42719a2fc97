package service_test

import (
	"context"
	"testing"

	"github.com/page-cms-api/internal/mocks"
	"github.com/page-cms-api/internal/models"
	"github.com/page-cms-api/internal/repository"
	"github.com/page-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// Credentials for password "password" (scrypt N=16384 r=8 p=1,
// 32-byte key, hex encoded).
const (
	testSalt = "0eb69626fc65c5ecc7ec2d705581d853"
	testHash = "1381ff6d6bf12d13b538f5e7811ee5fec4dd5fb328b01ebb906e8e1143a22558"
)

func setupAuth() *service.Services {
	userRepo := mocks.NewMockUserRepository()
	userRepo.Add(&models.User{
		ID:      1,
		Email:   "alice@example.com",
		Name:    "Alice",
		IsAdmin: false,
		Salt:    testSalt,
		Hash:    testHash,
	})

	repos := &repository.Repositories{
		User:    userRepo,
		Page:    mocks.NewMockPageRepository(),
		Website: mocks.NewMockWebsiteRepository(),
	}
	return service.NewServices(repos, zerolog.Nop())
}

func TestLogin_Success(t *testing.T) {
	services := setupAuth()

	identity, err := services.Auth.Login(context.Background(), "alice@example.com", "password")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if identity == nil {
		t.Fatal("Expected an identity")
	}
	if identity.Name != "Alice" || identity.Username != "alice@example.com" {
		t.Errorf("Unexpected identity: %+v", identity)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	services := setupAuth()

	identity, err := services.Auth.Login(context.Background(), "alice@example.com", "letmein")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if identity != nil {
		t.Error("Expected nil identity for wrong password")
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	services := setupAuth()

	identity, err := services.Auth.Login(context.Background(), "nobody@example.com", "password")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if identity != nil {
		t.Error("Expected nil identity for unknown user")
	}
}

func TestGetIdentity(t *testing.T) {
	services := setupAuth()
	ctx := context.Background()

	identity, err := services.Auth.GetIdentity(ctx, 1)
	if err != nil {
		t.Fatalf("GetIdentity failed: %v", err)
	}
	if identity == nil || identity.Name != "Alice" {
		t.Errorf("Unexpected identity: %+v", identity)
	}

	// A stale session uid resolves to anonymous, not an error.
	identity, err = services.Auth.GetIdentity(ctx, 999)
	if err != nil {
		t.Fatalf("GetIdentity failed: %v", err)
	}
	if identity != nil {
		t.Error("Expected nil identity for missing user")
	}
}
