package service

import (
	"context"
	"errors"

	"github.com/tapmenu/tapmenu/internal/deeplink"
	"github.com/tapmenu/tapmenu/internal/domain"
	"github.com/tapmenu/tapmenu/internal/repo"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

type CheckoutLine struct {
	ItemID   string
	Quantity int
}

type CheckoutResult struct {
	Message      string  `json:"message"`
	Total        float64 `json:"total"`
	WhatsappLink string  `json:"whatsappLink"`
	UpiLink      string  `json:"upiLink"`
}

// OrderService turns a cart into the deep links the customer needs to place
// the order. Orders themselves are never stored; WhatsApp is the order book.
type OrderService struct {
	vendors repo.VendorRepository
	items   repo.MenuItemRepository
	logger  *zap.SugaredLogger
}

func NewOrderService(vendors repo.VendorRepository, items repo.MenuItemRepository, logger *zap.SugaredLogger) *OrderService {
	return &OrderService{
		vendors: vendors,
		items:   items,
		logger:  logger,
	}
}

// Checkout resolves the cart lines against the vendor's menu and builds the
// order message plus WhatsApp/UPI links. Lines with quantity <= 0 are treated
// as removed from the cart. Lines referencing another vendor's items are
// rejected as not found.
func (s *OrderService) Checkout(ctx context.Context, vendorID string, lines []CheckoutLine) (*CheckoutResult, error) {
	vendor, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	cart := make([]domain.CartItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}

		item, err := s.items.GetByID(ctx, line.ItemID)
		if err != nil {
			return nil, err
		}
		if item.VendorID != vendor.ID {
			return nil, repo.ErrItemNotFound
		}

		cart = append(cart, domain.CartItem{MenuItem: *item, Quantity: line.Quantity})
	}

	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	message := deeplink.FormatOrderMessage(cart, *vendor)
	total := deeplink.OrderTotal(cart)

	s.logger.Infow("checkout links built", "vendor_id", vendor.ID, "items", len(cart), "total", total)

	return &CheckoutResult{
		Message:      message,
		Total:        total,
		WhatsappLink: deeplink.WhatsAppLink(vendor.WhatsappNumber, message),
		UpiLink:      deeplink.UPILink(vendor.UpiID, vendor.Name, total),
	}, nil
}
