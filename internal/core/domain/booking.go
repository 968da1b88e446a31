package domain

import "github.com/shopspring/decimal"

// Revenue account names the posting rules resolve per booking kind.
const (
	TicketRevenueAccountName  = "Ticket Revenue"
	PackageRevenueAccountName = "Package Revenue"
	CustomRevenueAccountName  = "Custom Booking Revenue"
)

// BookingPayload is the tagged union of booking shapes the journal engine
// accepts. Each variant knows its reference type, which revenue account it
// posts to, and how to derive its selling and purchasing totals.
type BookingPayload interface {
	ReferenceType() ReferenceType
	RevenueAccountName() string
	// Totals derives (sellingTotal, purchasingTotal) for the variant.
	// Purchasing derivation is best effort: malformed or non-positive
	// component data contributes zero and must never block a posting.
	Totals() (selling, purchasing decimal.Decimal)
}

// TicketBooking is a flight/rail ticket sale, priced per seat.
type TicketBooking struct {
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	PurchasingPrice decimal.Decimal `json:"purchasingPrice"`
	Quantity        int             `json:"quantity"`
}

func (b TicketBooking) ReferenceType() ReferenceType { return RefTicketBooking }

func (b TicketBooking) RevenueAccountName() string { return TicketRevenueAccountName }

func (b TicketBooking) Totals() (decimal.Decimal, decimal.Decimal) {
	qty := int64(b.Quantity)
	if qty < 1 {
		qty = 1
	}
	n := decimal.NewFromInt(qty)
	selling := nonNegative(b.SellingPrice).Mul(n)
	purchasing := nonNegative(b.PurchasingPrice).Mul(n)
	return selling, purchasing
}

// PackageComponent is one priced element of a package (hotel, transport,
// visa, ...).
type PackageComponent struct {
	Name            string          `json:"name"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	PurchasingPrice decimal.Decimal `json:"purchasingPrice"`
}

// RoomAllocation prices package accommodation per person.
type RoomAllocation struct {
	RoomType            string          `json:"roomType"`
	PurchasingPerPerson decimal.Decimal `json:"purchasingPerPerson"`
	Quantity            int             `json:"quantity"`
}

// PackageBooking is a multi-component package sale. The purchasing total is
// derived with a fixed priority: explicit override, then component purchasing
// fields, then room-level per-person pricing, then zero.
type PackageBooking struct {
	SellingTotal       decimal.Decimal    `json:"sellingTotal"`
	PurchasingOverride *decimal.Decimal   `json:"purchasingOverride"`
	Components         []PackageComponent `json:"components"`
	Rooms              []RoomAllocation   `json:"rooms"`
}

func (b PackageBooking) ReferenceType() ReferenceType { return RefPackageBooking }

func (b PackageBooking) RevenueAccountName() string { return PackageRevenueAccountName }

func (b PackageBooking) Totals() (decimal.Decimal, decimal.Decimal) {
	selling := nonNegative(b.SellingTotal)
	if selling.IsZero() {
		for _, c := range b.Components {
			selling = selling.Add(nonNegative(c.SellingPrice))
		}
	}

	if b.PurchasingOverride != nil {
		return selling, nonNegative(*b.PurchasingOverride)
	}

	purchasing := decimal.Zero
	for _, c := range b.Components {
		purchasing = purchasing.Add(nonNegative(c.PurchasingPrice))
	}
	if purchasing.IsPositive() {
		return selling, purchasing
	}

	for _, r := range b.Rooms {
		if r.Quantity < 1 {
			continue
		}
		purchasing = purchasing.Add(nonNegative(r.PurchasingPerPerson).Mul(decimal.NewFromInt(int64(r.Quantity))))
	}
	return selling, purchasing
}

// ServiceItem is one line of a custom booking.
type ServiceItem struct {
	Name            string          `json:"name"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	PurchasingPrice decimal.Decimal `json:"purchasingPrice"`
}

// CustomBooking is a bespoke itinerary priced item by item, with optional
// explicit totals taking precedence over the item sums.
type CustomBooking struct {
	SellingTotal       decimal.Decimal  `json:"sellingTotal"`
	PurchasingOverride *decimal.Decimal `json:"purchasingOverride"`
	Items              []ServiceItem    `json:"items"`
}

func (b CustomBooking) ReferenceType() ReferenceType { return RefCustomBooking }

func (b CustomBooking) RevenueAccountName() string { return CustomRevenueAccountName }

func (b CustomBooking) Totals() (decimal.Decimal, decimal.Decimal) {
	selling := nonNegative(b.SellingTotal)
	if selling.IsZero() {
		for _, it := range b.Items {
			selling = selling.Add(nonNegative(it.SellingPrice))
		}
	}

	if b.PurchasingOverride != nil {
		return selling, nonNegative(*b.PurchasingOverride)
	}

	purchasing := decimal.Zero
	for _, it := range b.Items {
		purchasing = purchasing.Add(nonNegative(it.PurchasingPrice))
	}
	return selling, purchasing
}

// nonNegative clamps malformed (negative) amounts to zero so a best-effort
// derivation cannot block a revenue posting.
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
