package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"itemsvc/internal/models"
	"itemsvc/internal/storage"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id uint) (*models.Item, error)
	FindAll(ctx context.Context, skip, limit int) ([]models.Item, error)
	Delete(ctx context.Context, id uint) error
}

type itemRepository struct {
	db *storage.PostgresDB
}

func NewItemRepository(db *storage.PostgresDB) ItemRepository {
	return &itemRepository{db: db}
}

// Create persists a new item; the store assigns id and timestamps,
// which are written back into the given struct.
func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.Session(ctx, func(tx *gorm.DB) error {
		return tx.Create(item).Error
	})
}

func (r *itemRepository) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.Session(ctx, func(tx *gorm.DB) error {
		return tx.First(&item, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns items in insertion order, offset by skip and capped
// at limit.
func (r *itemRepository) FindAll(ctx context.Context, skip, limit int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Session(ctx, func(tx *gorm.DB) error {
		return tx.Order("id").Offset(skip).Limit(limit).Find(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes the row with the given id. Deletion is a hard delete;
// a missing row reports ErrNotFound rather than succeeding silently.
func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	return r.db.Session(ctx, func(tx *gorm.DB) error {
		res := tx.Delete(&models.Item{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
