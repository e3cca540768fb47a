package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/sleep-stats/internal/domain"
	"github.com/google/uuid"
)

// Mocks are defined in mocks_test.go

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.CreateUserRequest
		wantName string
	}{
		{
			name:     "valid timezone",
			req:      &domain.CreateUserRequest{Name: "Ada", Timezone: "Europe/Budapest"},
			wantName: "Ada",
		},
		{
			name:     "name is trimmed",
			req:      &domain.CreateUserRequest{Name: "  Grace ", Timezone: "UTC"},
			wantName: "Grace",
		},
		{
			name: "name is optional",
			req:  &domain.CreateUserRequest{Timezone: "Asia/Seoul"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockUserRepository()
			svc := NewUserService(repo)

			user, err := svc.Create(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if user.Timezone != tt.req.Timezone {
				t.Errorf("Create() timezone = %v, want %v", user.Timezone, tt.req.Timezone)
			}
			if user.Name != tt.wantName {
				t.Errorf("Create() name = %q, want %q", user.Name, tt.wantName)
			}
			if user.ID == uuid.Nil {
				t.Error("Create() user ID should not be nil")
			}
		})
	}
}

func TestUserService_Create_StoreUnavailable(t *testing.T) {
	repo := NewMockUserRepository()
	repo.SetError(domain.Unavailable(errors.New("connection refused")))
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), &domain.CreateUserRequest{Timezone: "UTC"})
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestUserService_GetByID(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), &domain.CreateUserRequest{Timezone: "America/New_York"})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	tests := []struct {
		name    string
		id      uuid.UUID
		wantErr error
	}{
		{
			name: "existing user",
			id:   created.ID,
		},
		{
			name:    "non-existing user",
			id:      uuid.New(),
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.GetByID(context.Background(), tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetByID() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr == nil && user == nil {
				t.Error("GetByID() returned nil user for existing ID")
			}
		})
	}
}
