package deeplink

import (
	"net/url"
	"strings"
	"testing"

	"github.com/tapmenu/tapmenu/internal/domain"
)

func cartItem(name string, price float64, qty int) domain.CartItem {
	return domain.CartItem{
		MenuItem: domain.MenuItem{Name: name, Price: price},
		Quantity: qty,
	}
}

func TestFormatOrderMessage(t *testing.T) {
	items := []domain.CartItem{
		cartItem("Masala Dosa", 80, 2),
		cartItem("Filter Coffee", 25, 1),
	}
	vendor := domain.Vendor{Name: "Ram's Cafe"}

	got := FormatOrderMessage(items, vendor)
	want := "Hi, I would like to order from Ram's Cafe:\n\n" +
		"2 x Masala Dosa (₹80)\n" +
		"1 x Filter Coffee (₹25)\n\n" +
		"Total: ₹185"

	if got != want {
		t.Errorf("FormatOrderMessage = %q, want %q", got, want)
	}
}

func TestFormatOrderMessageFractionalPrice(t *testing.T) {
	items := []domain.CartItem{cartItem("Half Chai", 12.5, 2)}
	got := FormatOrderMessage(items, domain.Vendor{Name: "Chai Point"})

	if !strings.Contains(got, "(₹12.5)") {
		t.Errorf("message %q does not contain fractional price", got)
	}
	if !strings.Contains(got, "Total: ₹25") {
		t.Errorf("message %q has wrong total", got)
	}
}

func TestOrderTotal(t *testing.T) {
	items := []domain.CartItem{
		cartItem("A", 80, 2),
		cartItem("B", 25, 3),
	}
	if got := OrderTotal(items); got != 235 {
		t.Errorf("OrderTotal = %v, want 235", got)
	}
	if got := OrderTotal(nil); got != 0 {
		t.Errorf("OrderTotal(nil) = %v, want 0", got)
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("919876543210", "Hi")

	if !strings.Contains(link, "wa.me/919876543210") {
		t.Errorf("link %q does not target the phone number", link)
	}
	if !strings.HasSuffix(link, "?text=Hi") {
		t.Errorf("link %q does not carry the encoded message", link)
	}
}

func TestWhatsAppLinkRoundTrip(t *testing.T) {
	message := "Hi, I would like to order from Ram's Cafe:\n\n2 x Masala Dosa (₹80)\n\nTotal: ₹160"
	link := WhatsAppLink("919876543210", message)

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := u.Query().Get("text"); got != message {
		t.Errorf("decoded text = %q, want original message", got)
	}
	if strings.Contains(link, " ") || strings.Contains(link, "\n") {
		t.Errorf("link %q contains unencoded whitespace", link)
	}
}

func TestUPILink(t *testing.T) {
	link := UPILink("shop@upi", "Ram's Cafe", 150)

	if !strings.HasPrefix(link, "upi://pay?pa=shop@upi") {
		t.Errorf("link %q does not start with the payee address", link)
	}
	if !strings.Contains(link, "&am=150") {
		t.Errorf("link %q does not carry the amount", link)
	}
	if !strings.Contains(link, "&cu=INR") {
		t.Errorf("link %q does not fix the currency", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := u.Query().Get("pn"); got != "Ram's Cafe" {
		t.Errorf("decoded payee name = %q, want original", got)
	}
}

func TestUPILinkFractionalAmount(t *testing.T) {
	link := UPILink("shop@upi", "Chai Point", 99.5)
	if !strings.Contains(link, "&am=99.5") {
		t.Errorf("link %q does not carry the fractional amount", link)
	}
}
