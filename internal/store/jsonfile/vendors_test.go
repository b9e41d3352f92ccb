package jsonfile

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tapmenu/tapmenu/internal/repo"
)

func TestVendorCreateAndGet(t *testing.T) {
	vendors := NewVendorRepository(newTestStorage(t))
	ctx := context.Background()

	created, err := vendors.Create(ctx, repo.CreateVendorInput{
		Name:           "Ram's Cafe",
		Subdomain:      "rams-cafe",
		WhatsappNumber: "919876543210",
		UpiID:          "shop@upi",
		Address:        "12 MG Road",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !strings.HasPrefix(created.ID, "vendor_") {
		t.Errorf("id = %q, want vendor_ prefix", created.ID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("createdAt was not stamped")
	}

	bySub, err := vendors.GetBySubdomain(ctx, "rams-cafe")
	if err != nil {
		t.Fatalf("GetBySubdomain failed: %v", err)
	}
	if bySub.ID != created.ID {
		t.Errorf("GetBySubdomain returned id %q, want %q", bySub.ID, created.ID)
	}

	byID, err := vendors.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if byID.Name != "Ram's Cafe" {
		t.Errorf("GetByID returned name %q", byID.Name)
	}
}

func TestVendorGetNotFound(t *testing.T) {
	vendors := NewVendorRepository(newTestStorage(t))
	ctx := context.Background()

	if _, err := vendors.GetBySubdomain(ctx, "missing"); !errors.Is(err, repo.ErrVendorNotFound) {
		t.Errorf("GetBySubdomain error = %v, want ErrVendorNotFound", err)
	}
	if _, err := vendors.GetByID(ctx, "vendor_missing"); !errors.Is(err, repo.ErrVendorNotFound) {
		t.Errorf("GetByID error = %v, want ErrVendorNotFound", err)
	}
}

func TestVendorUpdate(t *testing.T) {
	vendors := NewVendorRepository(newTestStorage(t))
	ctx := context.Background()

	created, err := vendors.Create(ctx, repo.CreateVendorInput{
		Name:           "Ram's Cafe",
		Subdomain:      "rams-cafe",
		WhatsappNumber: "919876543210",
		UpiID:          "shop@upi",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	name := "Ram's Kitchen"
	address := ""
	updated, err := vendors.Update(ctx, created.ID, repo.UpdateVendorInput{
		Name:    &name,
		Address: &address,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Name != "Ram's Kitchen" {
		t.Errorf("name = %q, want updated name", updated.Name)
	}
	if updated.WhatsappNumber != "919876543210" {
		t.Errorf("whatsappNumber = %q, untouched field changed", updated.WhatsappNumber)
	}
	if updated.Subdomain != "rams-cafe" {
		t.Errorf("subdomain = %q, must be immutable", updated.Subdomain)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt changed on update")
	}

	// change survives a reload
	got, err := vendors.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Ram's Kitchen" {
		t.Errorf("persisted name = %q", got.Name)
	}
}

func TestVendorUpdateNotFound(t *testing.T) {
	vendors := NewVendorRepository(newTestStorage(t))

	name := "x"
	_, err := vendors.Update(context.Background(), "vendor_missing", repo.UpdateVendorInput{Name: &name})
	if !errors.Is(err, repo.ErrVendorNotFound) {
		t.Errorf("Update error = %v, want ErrVendorNotFound", err)
	}
}

func TestVendorListAllInsertionOrder(t *testing.T) {
	vendors := NewVendorRepository(newTestStorage(t))
	ctx := context.Background()

	for _, sub := range []string{"one-shop", "two-shop", "three-shop"} {
		if _, err := vendors.Create(ctx, repo.CreateVendorInput{Name: sub, Subdomain: sub}); err != nil {
			t.Fatalf("Create(%s) failed: %v", sub, err)
		}
	}

	all, err := vendors.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListAll returned %d vendors, want 3", len(all))
	}
	for i, sub := range []string{"one-shop", "two-shop", "three-shop"} {
		if all[i].Subdomain != sub {
			t.Errorf("vendor %d subdomain = %q, want %q", i, all[i].Subdomain, sub)
		}
	}
}
