package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/example/callerid/internal/models"
)

type memoryRepository struct {
	mu      sync.RWMutex
	nextID  uint
	byID    map[uint]models.User
	byPhone map[string]uint
	byEmail map[string]uint
}

// NewMemoryRepository builds an in-process user store with the same
// uniqueness rules as the users table. Used for local development and tests.
func NewMemoryRepository() UserRepository {
	return &memoryRepository{
		byID:    make(map[uint]models.User),
		byPhone: make(map[string]uint),
		byEmail: make(map[string]uint),
	}
}

func (r *memoryRepository) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("find user by id %d: %w", id, ErrNotFound)
	}
	return &user, nil
}

func (r *memoryRepository) FindByMobile(_ context.Context, mobile string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPhone[mobile]
	if !ok {
		return nil, fmt.Errorf("find user by mobile %s: %w", mobile, ErrNotFound)
	}
	user := r.byID[id]
	return &user, nil
}

func (r *memoryRepository) FindByMobileOrEmail(_ context.Context, mobile, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id, ok := r.byPhone[mobile]; ok {
		user := r.byID[id]
		return &user, nil
	}
	if id, ok := r.byEmail[email]; ok {
		user := r.byID[id]
		return &user, nil
	}
	return nil, fmt.Errorf("find user by mobile %s or email %s: %w", mobile, email, ErrNotFound)
}

func (r *memoryRepository) FindByMobiles(_ context.Context, mobiles []string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var users []models.User
	for _, mobile := range distinct(mobiles) {
		if id, ok := r.byPhone[mobile]; ok {
			users = append(users, r.byID[id])
		}
	}
	return users, nil
}

func (r *memoryRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byPhone[user.Mobile]; exists {
		return fmt.Errorf("create user: mobile taken: %w", ErrDuplicate)
	}
	email := user.EmailValue()
	if user.Email != nil {
		if _, exists := r.byEmail[email]; exists {
			return fmt.Errorf("create user: email taken: %w", ErrDuplicate)
		}
	}

	r.nextID++
	user.ID = r.nextID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	stored := *user
	if user.Email != nil {
		stored.Email = &email
		r.byEmail[email] = stored.ID
	}
	r.byID[stored.ID] = stored
	r.byPhone[stored.Mobile] = stored.ID
	return nil
}

func (r *memoryRepository) Ping(context.Context) error {
	return nil
}
