package services

import (
	"context"

	"github.com/example/callerid/internal/models"
	"github.com/example/callerid/internal/repository"
)

// ContactMatch partitions queried numbers by whether a user owns them.
type ContactMatch struct {
	Found    []models.Contact `json:"found"`
	NotFound []string         `json:"notFound"`
}

// ContactService answers which phone numbers belong to registered users.
type ContactService struct {
	users repository.UserRepository
}

// NewContactService constructs a ContactService.
func NewContactService(users repository.UserRepository) *ContactService {
	return &ContactService{users: users}
}

// Match classifies every number in input order. Duplicates are classified
// once per occurrence and entries are not format-checked: anything that is
// not a stored mobile lands in NotFound.
func (s *ContactService) Match(ctx context.Context, caller *Claims, numbers []string) (*ContactMatch, error) {
	if caller == nil {
		return nil, unauthorizedError("Unauthorized")
	}
	if numbers == nil {
		return nil, validationError("Contacts array required")
	}

	users, err := s.users.FindByMobiles(ctx, numbers)
	if err != nil {
		return nil, storeError(err)
	}

	registered := make(map[string]models.Contact, len(users))
	for i := range users {
		registered[users[i].Mobile] = users[i].Contact()
	}

	result := &ContactMatch{
		Found:    make([]models.Contact, 0, len(numbers)),
		NotFound: make([]string, 0),
	}
	for _, number := range numbers {
		if contact, ok := registered[number]; ok {
			result.Found = append(result.Found, contact)
			continue
		}
		result.NotFound = append(result.NotFound, number)
	}
	return result, nil
}
