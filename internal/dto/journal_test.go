package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	"github.com/tripfin/travel_ledger_app/internal/dto"
)

func TestBookingSaleRequestPayload(t *testing.T) {
	ticket := &domain.TicketBooking{SellingPrice: decimal.NewFromInt(500), Quantity: 1}
	pkg := &domain.PackageBooking{SellingTotal: decimal.NewFromInt(1200)}

	tests := []struct {
		name    string
		req     dto.BookingSaleRequest
		want    domain.ReferenceType
		wantNil bool
	}{
		{
			name: "ticket kind selects ticket payload",
			req:  dto.BookingSaleRequest{Kind: "ticket", Ticket: ticket},
			want: domain.RefTicketBooking,
		},
		{
			name: "package kind selects package payload",
			req:  dto.BookingSaleRequest{Kind: "package", Package: pkg},
			want: domain.RefPackageBooking,
		},
		{
			name: "kind without matching payload",
			req:  dto.BookingSaleRequest{Kind: "package", Ticket: ticket},
			wantNil: true,
		},
		{
			name: "unknown kind",
			req:  dto.BookingSaleRequest{Kind: "cruise", Ticket: ticket},
			wantNil: true,
		},
		{
			name: "no payload at all",
			req:  dto.BookingSaleRequest{Kind: "custom"},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := tt.req.Payload()
			if tt.wantNil {
				assert.Nil(t, payload)
				return
			}
			assert.Equal(t, tt.want, payload.ReferenceType())
		})
	}
}
