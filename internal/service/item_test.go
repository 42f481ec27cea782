package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"itemsvc/internal/models"
	"itemsvc/internal/repository"
	"itemsvc/internal/storage"
)

func newTestService(t *testing.T) *ItemService {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.Item{}))

	db := storage.Wrap(gdb, time.Second)
	t.Cleanup(func() { db.Close() })
	return NewItemService(repository.NewItemRepository(db))
}

func TestCreateItem_Valid(t *testing.T) {
	svc := newTestService(t)
	desc := "a widget"

	item, err := svc.CreateItem(context.Background(), "widget", &desc)
	require.NoError(t, err)

	assert.NotZero(t, item.ID)
	assert.Equal(t, "widget", item.Name)
	require.NotNil(t, item.Description)
	assert.Equal(t, desc, *item.Description)
}

func TestCreateItem_NilDescription(t *testing.T) {
	svc := newTestService(t)

	item, err := svc.CreateItem(context.Background(), "widget", nil)
	require.NoError(t, err)
	assert.Nil(t, item.Description)
}

func TestCreateItem_ValidationRejectedBeforeStore(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	longName := strings.Repeat("x", 256)
	longDesc := strings.Repeat("y", 1001)

	cases := []struct {
		name        string
		itemName    string
		description *string
	}{
		{"empty name", "", nil},
		{"blank name", "   ", nil},
		{"name too long", longName, nil},
		{"description too long", "widget", &longDesc},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateItem(ctx, tc.itemName, tc.description)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// Nothing reached the store.
	items, err := svc.ListItems(ctx, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// Length limits count characters, matching the varchar constraints: a
// multibyte name within 255 characters is valid even past 255 bytes.
func TestCreateItem_MultibyteLengthCountsRunes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	okName := strings.Repeat("日", 255) // 765 bytes, 255 characters
	item, err := svc.CreateItem(ctx, okName, nil)
	require.NoError(t, err)
	assert.Equal(t, okName, item.Name)

	_, err = svc.CreateItem(ctx, strings.Repeat("日", 256), nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListItems_NegativeParams(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ListItems(context.Background(), -1, 10)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.ListItems(context.Background(), 0, -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetItem_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetItem(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteItem_NotFoundTwice(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteItem(ctx, 31337), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteItem(ctx, 31337), ErrNotFound)
}

func TestTranslate(t *testing.T) {
	assert.ErrorIs(t, translate(repository.ErrNotFound), ErrNotFound)
	assert.ErrorIs(t, translate(storage.ErrPoolExhausted), ErrPoolExhausted)

	other := errors.New("connection reset")
	assert.Equal(t, other, translate(other))
}
