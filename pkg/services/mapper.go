package services

import (
	"strings"
	"time"

	"borderline-backend/pkg/clients/brevo"
	"borderline-backend/pkg/models"
)

// sourceTag identifies this storefront on every contact record
const sourceTag = "borderline-landing"

// placeholderDomain backs the synthesized contact email. The form collects no
// real email, so the CRM key is derived from the customer name instead.
const placeholderDomain = "placeholder.com"

// ProductSpec ties a product key on the order form to its attribute prefix in the CRM
type ProductSpec struct {
	Key        string
	AttrPrefix string
}

// KnownProducts enumerates the products of the current drop. Adding a product to
// the drop means adding one entry here; the mapping below iterates generically.
var KnownProducts = []ProductSpec{
	{Key: "borderlineBlack", AttrPrefix: "BORDERLINE_BLACK"},
	{Key: "borderlineCream", AttrPrefix: "BORDERLINE_CREAM"},
}

// SynthesizeEmail derives the contact's identifying email from the customer name:
// lowercased, whitespace collapsed to dots, on a fixed placeholder domain.
// Two customers entering the same name collide; last write wins in the CRM.
func SynthesizeEmail(name string) string {
	parts := strings.Fields(strings.ToLower(name))
	return strings.Join(parts, ".") + "@" + placeholderDomain
}

// BuildContactPayload maps an order submission to a Brevo contact payload. Pure:
// the clock is injected, and pricing fields pass through without recomputation.
func BuildContactPayload(order models.OrderSubmission, listID int, now time.Time) brevo.ContactPayload {
	attrs := map[string]interface{}{
		"FIRSTNAME":   order.CustomerName,
		"LASTNAME":    "",
		"SMS":         order.CustomerPhone,
		"CITY":        order.CustomerCity,
		"ORDER_TOTAL": order.OrderTotal,
		"SUBTOTAL":    order.Subtotal,
		"DISCOUNT":    order.Discount,
		"ORDER_DATE":  now.UTC().Format(time.RFC3339),
		"SOURCE":      sourceTag,
	}

	for _, p := range KnownProducts {
		// zero value supplies the defaults for products absent from the submission
		sel := order.SelectedProducts[p.Key]
		attrs[p.AttrPrefix+"_SELECTED"] = sel.Selected
		attrs[p.AttrPrefix+"_SIZE"] = sel.Size
		attrs[p.AttrPrefix+"_QTY"] = sel.Quantity
	}

	return brevo.ContactPayload{
		Email:      SynthesizeEmail(order.CustomerName),
		Attributes: attrs,
		ListIDs:    []int{listID},
	}
}
