// Package deeplink builds the WhatsApp and UPI URIs a storefront hands to
// the customer at checkout. Everything here is pure string work: no I/O,
// no state, no knowledge of where the cart came from.
package deeplink

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tapmenu/tapmenu/internal/domain"
)

// OrderTotal sums price*quantity over the cart.
func OrderTotal(items []domain.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}

// FormatOrderMessage renders the prefilled WhatsApp chat text: a greeting
// naming the vendor, one line per cart item, and the total.
func FormatOrderMessage(items []domain.CartItem, vendor domain.Vendor) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%d x %s (₹%s)", item.Quantity, item.Name, formatAmount(item.Price)))
	}

	return fmt.Sprintf("Hi, I would like to order from %s:\n\n%s\n\nTotal: ₹%s",
		vendor.Name, strings.Join(lines, "\n"), formatAmount(OrderTotal(items)))
}

// WhatsAppLink returns a wa.me URL opening a chat with phoneNumber,
// prefilled with message.
func WhatsAppLink(phoneNumber, message string) string {
	return "https://wa.me/" + phoneNumber + "?text=" + encodeComponent(message)
}

// UPILink returns a upi://pay intent URI. The payee address is carried
// verbatim, the payee name is percent-encoded, currency is fixed to INR.
func UPILink(upiID, payeeName string, amount float64) string {
	return "upi://pay?pa=" + upiID +
		"&pn=" + encodeComponent(payeeName) +
		"&am=" + formatAmount(amount) +
		"&cu=INR"
}

// formatAmount prints a currency amount the way JS number coercion would:
// no trailing zeros, no exponent for sane values.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// encodeComponent percent-encodes like encodeURIComponent: QueryEscape,
// but spaces become %20 rather than '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
