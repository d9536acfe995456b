package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"borderline-backend/pkg/models"
	"borderline-backend/pkg/services"
)

// BuildOrderLink builds a wa.me deep link pre-filled with a human-readable order
// summary, used as the confirmation channel alongside the CRM relay. It is
// independent of the relay: it never gates on, or reports, CRM success.
func BuildOrderLink(number string, order models.OrderSubmission) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New order from %s (%s)\n", order.CustomerName, order.CustomerCity)

	for _, p := range services.KnownProducts {
		sel, ok := order.SelectedProducts[p.Key]
		if !ok || !sel.Selected {
			continue
		}
		fmt.Fprintf(&b, "- %s x%d size %s\n", p.Key, sel.Quantity, sel.Size)
	}

	fmt.Fprintf(&b, "Subtotal: %.2f\nDiscount: %.2f\nTotal: %.2f", order.Subtotal, order.Discount, order.OrderTotal)

	params := url.Values{}
	params.Set("text", b.String())

	return fmt.Sprintf("https://wa.me/%s?%s", normalizeNumber(number), params.Encode())
}

// normalizeNumber strips the formatting wa.me rejects: leading plus, spaces, dashes
func normalizeNumber(number string) string {
	number = strings.TrimPrefix(number, "+")
	number = strings.ReplaceAll(number, " ", "")
	number = strings.ReplaceAll(number, "-", "")
	return number
}
