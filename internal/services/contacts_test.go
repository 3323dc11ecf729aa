package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/callerid/internal/models"
	"github.com/example/callerid/internal/repository"
)

func TestMatch_PartitionsInInputOrder(t *testing.T) {
	repo := repository.NewMemoryRepository()
	ctx := context.Background()
	_ = repo.Create(ctx, &models.User{Name: "Asha", Mobile: "9876543210"})
	_ = repo.Create(ctx, &models.User{Name: "Ravi", Mobile: "9123456789"})

	svc := NewContactService(repo)
	caller := &Claims{UserID: 1, Mobile: "9876543210"}

	got, err := svc.Match(ctx, caller, []string{"9123456789", "0000000000", "9876543210", "not-a-number", "9123456789"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	wantFound := []models.Contact{
		{Name: "Ravi", Mobile: "9123456789"},
		{Name: "Asha", Mobile: "9876543210"},
		{Name: "Ravi", Mobile: "9123456789"},
	}
	if !reflect.DeepEqual(got.Found, wantFound) {
		t.Errorf("Found = %+v, want %+v", got.Found, wantFound)
	}
	if want := []string{"0000000000", "not-a-number"}; !reflect.DeepEqual(got.NotFound, want) {
		t.Errorf("NotFound = %v, want %v", got.NotFound, want)
	}
}

func TestMatch_DuplicateFoundNumber(t *testing.T) {
	repo := repository.NewMemoryRepository()
	ctx := context.Background()
	_ = repo.Create(ctx, &models.User{Name: "Asha", Mobile: "9876543210"})

	svc := NewContactService(repo)
	got, err := svc.Match(ctx, &Claims{UserID: 1, Mobile: "9876543210"}, []string{"9876543210", "0000000000", "9876543210"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	if len(got.Found) != 2 {
		t.Fatalf("Found has %d entries, want 2", len(got.Found))
	}
	for _, c := range got.Found {
		if c.Mobile != "9876543210" || c.Name != "Asha" {
			t.Errorf("unexpected found entry %+v", c)
		}
	}
	if !reflect.DeepEqual(got.NotFound, []string{"0000000000"}) {
		t.Errorf("NotFound = %v", got.NotFound)
	}
}

func TestMatch_EmptyListYieldsEmptyPartitions(t *testing.T) {
	svc := NewContactService(repository.NewMemoryRepository())

	got, err := svc.Match(context.Background(), &Claims{UserID: 1, Mobile: "9876543210"}, []string{})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if got.Found == nil || got.NotFound == nil {
		t.Error("partitions must be empty slices, not nil")
	}
}

func TestMatch_Errors(t *testing.T) {
	svc := NewContactService(repository.NewMemoryRepository())
	caller := &Claims{UserID: 1, Mobile: "9876543210"}

	_, err := svc.Match(context.Background(), nil, []string{"9876543210"})
	assertKind(t, err, ErrUnauthorized)

	_, err = svc.Match(context.Background(), caller, nil)
	assertKind(t, err, ErrValidation)

	failing := NewContactService(&mockUserRepository{
		findByMobilesFunc: func(context.Context, []string) ([]models.User, error) {
			return nil, errors.New("read timeout")
		},
	})
	_, err = failing.Match(context.Background(), caller, []string{"9876543210"})
	assertKind(t, err, ErrStore)
}
