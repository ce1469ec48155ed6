package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDerivePaymentStatus(t *testing.T) {
	due := decimal.NewFromInt(1000)

	tests := []struct {
		name string
		paid decimal.Decimal
		want PaymentStatus
	}{
		{"no payments", decimal.Zero, PaymentStatusUnpaid},
		{"negative sum", decimal.NewFromInt(-100), PaymentStatusUnpaid},
		{"partial", decimal.NewFromInt(999), PaymentStatusPartiallyPaid},
		{"exact", decimal.NewFromInt(1000), PaymentStatusPaid},
		{"overpaid", decimal.NewFromInt(1500), PaymentStatusPaid},
		{"fractional partial", decimal.NewFromFloat(999.99), PaymentStatusPartiallyPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePaymentStatus(tt.paid, due))
		})
	}
}

func TestDerivePaymentStatusZeroDue(t *testing.T) {
	// A zero-total document with any payment is settled
	assert.Equal(t, PaymentStatusPaid, DerivePaymentStatus(decimal.NewFromInt(1), decimal.Zero))
	assert.Equal(t, PaymentStatusUnpaid, DerivePaymentStatus(decimal.Zero, decimal.Zero))
}

func TestPaymentTargetTypeValidate(t *testing.T) {
	assert.NoError(t, PaymentTargetTypeInvoice.Validate())
	assert.NoError(t, PaymentTargetTypeTruckHiringNote.Validate())
	assert.Error(t, PaymentTargetType("WALLET").Validate())
}

func TestPaymentModeValidate(t *testing.T) {
	for _, m := range []PaymentMode{
		PaymentModeCash, PaymentModeCheque, PaymentModeUPI, PaymentModeBankTransfer, PaymentModeOther,
	} {
		assert.NoError(t, m.Validate())
	}
	assert.Error(t, PaymentMode("BARTER").Validate())
}
