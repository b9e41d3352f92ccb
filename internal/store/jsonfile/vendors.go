package jsonfile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tapmenu/tapmenu/internal/domain"
	"github.com/tapmenu/tapmenu/internal/repo"
)

const vendorsFile = "vendors.json"

type VendorRepository struct {
	col *collection[domain.Vendor]
}

func NewVendorRepository(storage *Storage) *VendorRepository {
	return &VendorRepository{
		col: newCollection[domain.Vendor](storage, vendorsFile),
	}
}

func (r *VendorRepository) ListAll(ctx context.Context) ([]domain.Vendor, error) {
	return r.col.load(), nil
}

func (r *VendorRepository) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Vendor, error) {
	for _, v := range r.col.load() {
		if v.Subdomain == subdomain {
			return &v, nil
		}
	}

	return nil, repo.ErrVendorNotFound
}

func (r *VendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	for _, v := range r.col.load() {
		if v.ID == id {
			return &v, nil
		}
	}

	return nil, repo.ErrVendorNotFound
}

func (r *VendorRepository) Create(ctx context.Context, input repo.CreateVendorInput) (*domain.Vendor, error) {
	vendor := domain.Vendor{
		ID:             "vendor_" + uuid.NewString(),
		Name:           input.Name,
		Subdomain:      input.Subdomain,
		WhatsappNumber: input.WhatsappNumber,
		UpiID:          input.UpiID,
		Address:        input.Address,
		CreatedAt:      time.Now().UTC(),
	}

	err := r.col.update(func(records []domain.Vendor) ([]domain.Vendor, error) {
		return append(records, vendor), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	return &vendor, nil
}

func (r *VendorRepository) Update(ctx context.Context, id string, input repo.UpdateVendorInput) (*domain.Vendor, error) {
	var updated domain.Vendor

	err := r.col.update(func(records []domain.Vendor) ([]domain.Vendor, error) {
		for i := range records {
			if records[i].ID != id {
				continue
			}

			if input.Name != nil {
				records[i].Name = *input.Name
			}
			if input.WhatsappNumber != nil {
				records[i].WhatsappNumber = *input.WhatsappNumber
			}
			if input.UpiID != nil {
				records[i].UpiID = *input.UpiID
			}
			if input.Address != nil {
				records[i].Address = *input.Address
			}

			updated = records[i]
			return records, nil
		}

		return nil, repo.ErrVendorNotFound
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
