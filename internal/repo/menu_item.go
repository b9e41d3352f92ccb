package repo

import (
	"context"

	"github.com/tapmenu/tapmenu/internal/domain"
)

type CreateMenuItemInput struct {
	VendorID    string
	Name        string
	Price       float64
	Category    string
	Image       string
	IsAvailable *bool
}

// UpdateMenuItemInput carries the mutable item fields; nil means "leave as is".
type UpdateMenuItemInput struct {
	Name        *string
	Price       *float64
	Category    *string
	Image       *string
	IsAvailable *bool
}

type MenuItemRepository interface {
	// List returns items for one vendor, or every item when vendorID is empty.
	List(ctx context.Context, vendorID string) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, input CreateMenuItemInput) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, input UpdateMenuItemInput) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}
