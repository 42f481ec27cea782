package models

import "time"

// Item is the sole persisted entity. It deliberately does not embed
// gorm.Model: deletes here are hard deletes, and a DeletedAt column
// would silently turn them into soft deletes.
type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	Description *string   `gorm:"size:1000" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// ItemResponse is the wire representation of an Item. UpdatedAt is
// persisted but not exposed.
type ItemResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse maps the persisted record to its wire representation.
func (i *Item) ToResponse() ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		CreatedAt:   i.CreatedAt,
	}
}
