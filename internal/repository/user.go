// Package repository provides the data access layer for users.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/example/callerid/internal/database"
	"github.com/example/callerid/internal/models"
)

const uniqueViolation = "23505"

var (
	// ErrNotFound is returned when no user matches a lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when an insert collides with the mobile or
	// email unique index.
	ErrDuplicate = errors.New("user already exists")
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByMobile(ctx context.Context, mobile string) (*models.User, error)
	FindByMobileOrEmail(ctx context.Context, mobile, email string) (*models.User, error)
	FindByMobiles(ctx context.Context, mobiles []string) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Ping(ctx context.Context) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a Postgres-backed UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, wrapLookup(err, "find user by id %d", id)
	}
	return &user, nil
}

func (r *userRepository) FindByMobile(ctx context.Context, mobile string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("mobile = ?", mobile).First(&user).Error; err != nil {
		return nil, wrapLookup(err, "find user by mobile %s", mobile)
	}
	return &user, nil
}

func (r *userRepository) FindByMobileOrEmail(ctx context.Context, mobile, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("mobile = ? OR email = ?", mobile, email).
		First(&user).Error
	if err != nil {
		return nil, wrapLookup(err, "find user by mobile %s or email %s", mobile, email)
	}
	return &user, nil
}

func (r *userRepository) FindByMobiles(ctx context.Context, mobiles []string) ([]models.User, error) {
	if len(mobiles) == 0 {
		return nil, nil
	}

	var users []models.User
	if err := r.db.WithContext(ctx).Where("mobile IN ?", distinct(mobiles)).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users by mobile: %w", err)
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("failed to create user: %w", ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) Ping(ctx context.Context) error {
	return database.Ping(ctx, r.db)
}

func wrapLookup(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	}
	return fmt.Errorf("failed to %s: %w", msg, err)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
