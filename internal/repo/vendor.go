package repo

import (
	"context"
	"errors"

	"github.com/tapmenu/tapmenu/internal/domain"
)

var (
	ErrVendorNotFound = errors.New("vendor not found")
	ErrItemNotFound   = errors.New("menu item not found")
)

type CreateVendorInput struct {
	Name           string
	Subdomain      string
	WhatsappNumber string
	UpiID          string
	Address        string
}

// UpdateVendorInput carries the mutable vendor fields; nil means "leave as is".
// Subdomain and creation time are immutable and deliberately absent.
type UpdateVendorInput struct {
	Name           *string
	WhatsappNumber *string
	UpiID          *string
	Address        *string
}

// VendorRepository persists vendors. Create is blind: it does not check
// subdomain availability, the orchestrating service must do that first.
type VendorRepository interface {
	ListAll(ctx context.Context) ([]domain.Vendor, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Vendor, error)
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
	Create(ctx context.Context, input CreateVendorInput) (*domain.Vendor, error)
	Update(ctx context.Context, id string, input UpdateVendorInput) (*domain.Vendor, error)
}
