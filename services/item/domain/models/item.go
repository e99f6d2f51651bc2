package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is the core aggregate for this bounded context. Category is free text
// used as a coarse grouping and filter key; it carries no referential meaning.
type Item struct {
	ID        uuid.UUID
	Name      ItemName
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem constructs a valid Item aggregate with generated ID and current timestamp.
func NewItem(name ItemName, category string) (*Item, error) {
	now := time.Now().UTC()
	return &Item{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Apply replaces the mutable fields in place. Identity and CreatedAt are preserved.
func (i *Item) Apply(name ItemName, category string) {
	i.Name = name
	i.Category = category
	i.UpdatedAt = time.Now().UTC()
}
