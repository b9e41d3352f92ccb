package jsonfile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tapmenu/tapmenu/internal/domain"
	"github.com/tapmenu/tapmenu/internal/repo"
)

const menuItemsFile = "menu_items.json"

type MenuItemRepository struct {
	col *collection[domain.MenuItem]
}

func NewMenuItemRepository(storage *Storage) *MenuItemRepository {
	return &MenuItemRepository{
		col: newCollection[domain.MenuItem](storage, menuItemsFile),
	}
}

func (r *MenuItemRepository) List(ctx context.Context, vendorID string) ([]domain.MenuItem, error) {
	items := r.col.load()
	if vendorID == "" {
		return items, nil
	}

	filtered := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.VendorID == vendorID {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}

func (r *MenuItemRepository) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	for _, item := range r.col.load() {
		if item.ID == id {
			return &item, nil
		}
	}

	return nil, repo.ErrItemNotFound
}

func (r *MenuItemRepository) Create(ctx context.Context, input repo.CreateMenuItemInput) (*domain.MenuItem, error) {
	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	item := domain.MenuItem{
		ID:          "item_" + uuid.NewString(),
		VendorID:    input.VendorID,
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		IsAvailable: isAvailable,
		CreatedAt:   time.Now().UTC(),
	}

	err := r.col.update(func(records []domain.MenuItem) ([]domain.MenuItem, error) {
		return append(records, item), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	return &item, nil
}

func (r *MenuItemRepository) Update(ctx context.Context, id string, input repo.UpdateMenuItemInput) (*domain.MenuItem, error) {
	var updated domain.MenuItem

	err := r.col.update(func(records []domain.MenuItem) ([]domain.MenuItem, error) {
		for i := range records {
			if records[i].ID != id {
				continue
			}

			if input.Name != nil {
				records[i].Name = *input.Name
			}
			if input.Price != nil {
				records[i].Price = *input.Price
			}
			if input.Category != nil {
				records[i].Category = *input.Category
			}
			if input.Image != nil {
				records[i].Image = *input.Image
			}
			if input.IsAvailable != nil {
				records[i].IsAvailable = *input.IsAvailable
			}

			updated = records[i]
			return records, nil
		}

		return nil, repo.ErrItemNotFound
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, id string) error {
	return r.col.update(func(records []domain.MenuItem) ([]domain.MenuItem, error) {
		filtered := make([]domain.MenuItem, 0, len(records))
		for _, item := range records {
			if item.ID != id {
				filtered = append(filtered, item)
			}
		}

		if len(filtered) == len(records) {
			return nil, repo.ErrItemNotFound
		}

		return filtered, nil
	})
}
