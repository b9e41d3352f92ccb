package jsonfile

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tapmenu/tapmenu/internal/repo"
)

func TestMenuItemCreateDefaults(t *testing.T) {
	items := NewMenuItemRepository(newTestStorage(t))

	created, err := items.Create(context.Background(), repo.CreateMenuItemInput{
		VendorID: "vendor_1",
		Name:     "Masala Dosa",
		Price:    80,
		Category: "South Indian",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !strings.HasPrefix(created.ID, "item_") {
		t.Errorf("id = %q, want item_ prefix", created.ID)
	}
	if !created.IsAvailable {
		t.Error("isAvailable must default to true")
	}
	if created.CreatedAt.IsZero() {
		t.Error("createdAt was not stamped")
	}
}

func TestMenuItemCreateExplicitUnavailable(t *testing.T) {
	items := NewMenuItemRepository(newTestStorage(t))

	unavailable := false
	created, err := items.Create(context.Background(), repo.CreateMenuItemInput{
		VendorID:    "vendor_1",
		Name:        "Seasonal Special",
		Price:       120,
		Category:    "Specials",
		IsAvailable: &unavailable,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.IsAvailable {
		t.Error("explicit isAvailable=false was overridden")
	}
}

func TestMenuItemListFiltersByVendor(t *testing.T) {
	items := NewMenuItemRepository(newTestStorage(t))
	ctx := context.Background()

	for _, spec := range []struct {
		vendor, name string
	}{
		{"vendor_1", "Masala Dosa"},
		{"vendor_2", "Paneer Roll"},
		{"vendor_1", "Filter Coffee"},
	} {
		if _, err := items.Create(ctx, repo.CreateMenuItemInput{
			VendorID: spec.vendor,
			Name:     spec.name,
			Price:    50,
			Category: "Misc",
		}); err != nil {
			t.Fatalf("Create(%s) failed: %v", spec.name, err)
		}
	}

	forVendor, err := items.List(ctx, "vendor_1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(forVendor) != 2 {
		t.Fatalf("List(vendor_1) returned %d items, want 2", len(forVendor))
	}
	if forVendor[0].Name != "Masala Dosa" || forVendor[1].Name != "Filter Coffee" {
		t.Errorf("List(vendor_1) order = %q, %q", forVendor[0].Name, forVendor[1].Name)
	}

	all, err := items.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List(\"\") returned %d items, want 3", len(all))
	}
}

func TestMenuItemUpdate(t *testing.T) {
	items := NewMenuItemRepository(newTestStorage(t))
	ctx := context.Background()

	created, err := items.Create(ctx, repo.CreateMenuItemInput{
		VendorID: "vendor_1",
		Name:     "Masala Dosa",
		Price:    80,
		Category: "South Indian",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	price := 90.0
	unavailable := false
	updated, err := items.Update(ctx, created.ID, repo.UpdateMenuItemInput{
		Price:       &price,
		IsAvailable: &unavailable,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Price != 90 {
		t.Errorf("price = %v, want 90", updated.Price)
	}
	if updated.IsAvailable {
		t.Error("isAvailable not updated")
	}
	if updated.Name != "Masala Dosa" {
		t.Errorf("name = %q, untouched field changed", updated.Name)
	}
	if updated.VendorID != "vendor_1" {
		t.Errorf("vendorId = %q, must be immutable", updated.VendorID)
	}
}

func TestMenuItemUpdateNotFound(t *testing.T) {
	items := NewMenuItemRepository(newTestStorage(t))

	name := "x"
	_, err := items.Update(context.Background(), "item_missing", repo.UpdateMenuItemInput{Name: &name})
	if !errors.Is(err, repo.ErrItemNotFound) {
		t.Errorf("Update error = %v, want ErrItemNotFound", err)
	}
}

func TestMenuItemDelete(t *testing.T) {
	items := NewMenuItemRepository(newTestStorage(t))
	ctx := context.Background()

	first, err := items.Create(ctx, repo.CreateMenuItemInput{VendorID: "vendor_1", Name: "Keep", Price: 10, Category: "A"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := items.Create(ctx, repo.CreateMenuItemInput{VendorID: "vendor_1", Name: "Drop", Price: 20, Category: "A"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := items.Delete(ctx, second.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	remaining, err := items.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("after delete %d items remain, want 1", len(remaining))
	}
	if remaining[0].ID != first.ID || remaining[0].Name != "Keep" {
		t.Errorf("surviving item = %+v, other record was altered", remaining[0])
	}
}

func TestMenuItemDeleteNotFound(t *testing.T) {
	items := NewMenuItemRepository(newTestStorage(t))
	ctx := context.Background()

	created, err := items.Create(ctx, repo.CreateMenuItemInput{VendorID: "vendor_1", Name: "Keep", Price: 10, Category: "A"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := items.Delete(ctx, "item_missing"); !errors.Is(err, repo.ErrItemNotFound) {
		t.Errorf("Delete error = %v, want ErrItemNotFound", err)
	}

	remaining, err := items.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != created.ID {
		t.Errorf("collection changed by failed delete: %+v", remaining)
	}
}
