package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tapmenu/tapmenu/internal/domain"
	"github.com/tapmenu/tapmenu/internal/repo"
	"github.com/tapmenu/tapmenu/internal/tenant"
	"go.uber.org/zap"
)

var (
	ErrInvalidSubdomain = errors.New("invalid subdomain format")
	ErrSubdomainTaken   = errors.New("subdomain already taken")
)

// VendorService owns vendor registration. The repository create is blind, so
// subdomain format and availability are checked here, before it runs.
type VendorService struct {
	vendors repo.VendorRepository
	logger  *zap.SugaredLogger
}

func NewVendorService(vendors repo.VendorRepository, logger *zap.SugaredLogger) *VendorService {
	return &VendorService{
		vendors: vendors,
		logger:  logger,
	}
}

func (s *VendorService) Register(ctx context.Context, input repo.CreateVendorInput) (*domain.Vendor, error) {
	if !tenant.ValidateSubdomain(input.Subdomain) {
		return nil, ErrInvalidSubdomain
	}

	available, err := s.SubdomainAvailable(ctx, input.Subdomain)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrSubdomainTaken
	}

	vendor, err := s.vendors.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to register vendor: %w", err)
	}

	s.logger.Infow("vendor registered", "vendor_id", vendor.ID, "subdomain", vendor.Subdomain)

	return vendor, nil
}

func (s *VendorService) SubdomainAvailable(ctx context.Context, subdomain string) (bool, error) {
	_, err := s.vendors.GetBySubdomain(ctx, subdomain)
	if err != nil {
		if errors.Is(err, repo.ErrVendorNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("failed to check subdomain: %w", err)
	}

	return false, nil
}
