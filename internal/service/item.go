package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"itemsvc/internal/models"
	"itemsvc/internal/repository"
	"itemsvc/internal/storage"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 1000
)

// ItemService performs the item operations. Each call is one unit of
// work: validate, run a single persistence operation inside a scoped
// session, map the outcome to the error taxonomy. No retries.
type ItemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// CreateItem validates the input and persists a new item. The returned
// record carries the store-assigned id and timestamps.
func (s *ItemService) CreateItem(ctx context.Context, name string, description *string) (*models.Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	// Character counts, not byte lengths: the varchar constraints and
	// the binding tags both count characters.
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, fmt.Errorf("%w: name exceeds %d characters", ErrValidation, maxNameLength)
	}
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLength {
		return nil, fmt.Errorf("%w: description exceeds %d characters", ErrValidation, maxDescriptionLength)
	}

	item := &models.Item{
		Name:        name,
		Description: description,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, translate(err)
	}
	return item, nil
}

// ListItems returns items in insertion order, offset by skip and capped
// at limit. Limit is deliberately uncapped beyond the caller's value;
// arbitrarily large pages are a documented resource-exhaustion risk.
func (s *ItemService) ListItems(ctx context.Context, skip, limit int) ([]models.Item, error) {
	if skip < 0 || limit < 0 {
		return nil, fmt.Errorf("%w: skip and limit must not be negative", ErrValidation)
	}
	items, err := s.repo.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (s *ItemService) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return item, nil
}

// DeleteItem removes the item if present. Deleting an absent id reports
// ErrNotFound, repeatably.
func (s *ItemService) DeleteItem(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	return nil
}

// translate maps lower-layer failures into the service taxonomy.
// Unrecognized errors pass through as persistence failures.
func translate(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrPoolExhausted):
		return ErrPoolExhausted
	default:
		return err
	}
}
