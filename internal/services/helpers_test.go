package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/example/callerid/internal/logging"
	"github.com/example/callerid/internal/models"
	"github.com/example/callerid/internal/repository"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

// =============================================================================
// Mock UserRepository
// =============================================================================

type mockUserRepository struct {
	findByIDFunc            func(ctx context.Context, id uint) (*models.User, error)
	findByMobileFunc        func(ctx context.Context, mobile string) (*models.User, error)
	findByMobileOrEmailFunc func(ctx context.Context, mobile, email string) (*models.User, error)
	findByMobilesFunc       func(ctx context.Context, mobiles []string) ([]models.User, error)
	createFunc              func(ctx context.Context, user *models.User) error
	createCalls             atomic.Int32
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) FindByMobile(ctx context.Context, mobile string) (*models.User, error) {
	if m.findByMobileFunc != nil {
		return m.findByMobileFunc(ctx, mobile)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) FindByMobileOrEmail(ctx context.Context, mobile, email string) (*models.User, error) {
	if m.findByMobileOrEmailFunc != nil {
		return m.findByMobileOrEmailFunc(ctx, mobile, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) FindByMobiles(ctx context.Context, mobiles []string) ([]models.User, error) {
	if m.findByMobilesFunc != nil {
		return m.findByMobilesFunc(ctx, mobiles)
	}
	return nil, nil
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.createCalls.Add(1)
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) Ping(context.Context) error {
	return nil
}

// =============================================================================
// Test Helpers
// =============================================================================

func newTestIdentityService(t *testing.T) (*IdentityService, repository.UserRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	return NewIdentityService(repo, logging.Discard()), repo
}

func newTestIssuer(t *testing.T) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer(testSecret, 90*24*time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() error = %v", err)
	}
	return issuer
}

func assertKind(t *testing.T, err, kind error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got nil", kind)
	}
	if !errors.Is(err, kind) {
		t.Fatalf("error = %v, want kind %v", err, kind)
	}
}
