package service

import "itemsvc/internal/repository"

type Services struct {
	Item *ItemService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Item: NewItemService(repos.Item),
	}
}
