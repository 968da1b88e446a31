package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestTicketBookingTotals(t *testing.T) {
	tests := []struct {
		name           string
		booking        domain.TicketBooking
		wantSelling    string
		wantPurchasing string
	}{
		{
			name:           "per seat pricing",
			booking:        domain.TicketBooking{SellingPrice: dec("500"), PurchasingPrice: dec("420"), Quantity: 2},
			wantSelling:    "1000",
			wantPurchasing: "840",
		},
		{
			name:           "zero quantity treated as one",
			booking:        domain.TicketBooking{SellingPrice: dec("500"), PurchasingPrice: dec("420")},
			wantSelling:    "500",
			wantPurchasing: "420",
		},
		{
			name:           "negative quantity treated as one",
			booking:        domain.TicketBooking{SellingPrice: dec("500"), Quantity: -3},
			wantSelling:    "500",
			wantPurchasing: "0",
		},
		{
			name:           "negative purchasing clamps to zero",
			booking:        domain.TicketBooking{SellingPrice: dec("500"), PurchasingPrice: dec("-10"), Quantity: 2},
			wantSelling:    "1000",
			wantPurchasing: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selling, purchasing := tt.booking.Totals()
			assert.True(t, selling.Equal(dec(tt.wantSelling)), "selling: got %s", selling)
			assert.True(t, purchasing.Equal(dec(tt.wantPurchasing)), "purchasing: got %s", purchasing)
		})
	}
}

func TestPackageBookingTotals(t *testing.T) {
	components := []domain.PackageComponent{
		{Name: "hotel", SellingPrice: dec("600"), PurchasingPrice: dec("450")},
		{Name: "transport", SellingPrice: dec("400"), PurchasingPrice: dec("300")},
	}
	rooms := []domain.RoomAllocation{
		{RoomType: "double", PurchasingPerPerson: dec("100"), Quantity: 4},
		{RoomType: "bad", PurchasingPerPerson: dec("100"), Quantity: 0},
	}

	tests := []struct {
		name           string
		booking        domain.PackageBooking
		wantSelling    string
		wantPurchasing string
	}{
		{
			name:           "override beats components and rooms",
			booking:        domain.PackageBooking{SellingTotal: dec("1200"), PurchasingOverride: decPtr("700"), Components: components, Rooms: rooms},
			wantSelling:    "1200",
			wantPurchasing: "700",
		},
		{
			name:           "components beat rooms",
			booking:        domain.PackageBooking{SellingTotal: dec("1200"), Components: components, Rooms: rooms},
			wantSelling:    "1200",
			wantPurchasing: "750",
		},
		{
			name:           "rooms used when components carry no purchasing",
			booking:        domain.PackageBooking{SellingTotal: dec("1200"), Rooms: rooms},
			wantSelling:    "1200",
			wantPurchasing: "400",
		},
		{
			name:           "nothing derivable means zero purchasing",
			booking:        domain.PackageBooking{SellingTotal: dec("1200")},
			wantSelling:    "1200",
			wantPurchasing: "0",
		},
		{
			name:           "selling falls back to component sum",
			booking:        domain.PackageBooking{Components: components},
			wantSelling:    "1000",
			wantPurchasing: "750",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selling, purchasing := tt.booking.Totals()
			assert.True(t, selling.Equal(dec(tt.wantSelling)), "selling: got %s", selling)
			assert.True(t, purchasing.Equal(dec(tt.wantPurchasing)), "purchasing: got %s", purchasing)
		})
	}
}

func TestCustomBookingTotals(t *testing.T) {
	items := []domain.ServiceItem{
		{Name: "visa", SellingPrice: dec("150"), PurchasingPrice: dec("100")},
		{Name: "guide", SellingPrice: dec("350"), PurchasingPrice: dec("200")},
	}

	t.Run("explicit totals win", func(t *testing.T) {
		b := domain.CustomBooking{SellingTotal: dec("600"), PurchasingOverride: decPtr("250"), Items: items}
		selling, purchasing := b.Totals()
		assert.True(t, selling.Equal(dec("600")))
		assert.True(t, purchasing.Equal(dec("250")))
	})

	t.Run("item sums as fallback", func(t *testing.T) {
		b := domain.CustomBooking{Items: items}
		selling, purchasing := b.Totals()
		assert.True(t, selling.Equal(dec("500")))
		assert.True(t, purchasing.Equal(dec("300")))
	})
}

func TestBookingRevenueAccounts(t *testing.T) {
	assert.Equal(t, domain.TicketRevenueAccountName, domain.TicketBooking{}.RevenueAccountName())
	assert.Equal(t, domain.PackageRevenueAccountName, domain.PackageBooking{}.RevenueAccountName())
	assert.Equal(t, domain.CustomRevenueAccountName, domain.CustomBooking{}.RevenueAccountName())

	assert.Equal(t, domain.RefTicketBooking, domain.TicketBooking{}.ReferenceType())
	assert.Equal(t, domain.RefPackageBooking, domain.PackageBooking{}.ReferenceType())
	assert.Equal(t, domain.RefCustomBooking, domain.CustomBooking{}.ReferenceType())
}

func TestCommissionStatusTransitions(t *testing.T) {
	assert.True(t, domain.CommissionPending.CanTransition(domain.CommissionEarned))
	assert.True(t, domain.CommissionEarned.CanTransition(domain.CommissionPaid))

	assert.False(t, domain.CommissionPending.CanTransition(domain.CommissionPaid))
	assert.False(t, domain.CommissionEarned.CanTransition(domain.CommissionPending))
	assert.False(t, domain.CommissionPaid.CanTransition(domain.CommissionPending))
	assert.False(t, domain.CommissionPaid.CanTransition(domain.CommissionEarned))
}
