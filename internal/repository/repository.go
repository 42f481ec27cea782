package repository

import "itemsvc/internal/storage"

type Repositories struct {
	Item ItemRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		Item: NewItemRepository(db),
	}
}
