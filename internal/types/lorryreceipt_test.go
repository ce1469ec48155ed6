package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLorryReceiptStatusIsManuallySettable(t *testing.T) {
	manual := []LorryReceiptStatus{
		LorryReceiptStatusInTransit,
		LorryReceiptStatusDelivered,
		LorryReceiptStatusPaid,
	}
	for _, s := range manual {
		assert.True(t, s.IsManuallySettable(), "%s should be manually settable", s)
	}

	coordinated := []LorryReceiptStatus{
		LorryReceiptStatusCreated,
		LorryReceiptStatusInvoiced,
	}
	for _, s := range coordinated {
		assert.False(t, s.IsManuallySettable(), "%s is owned by the invoice lifecycle", s)
	}
}

func TestFreightTypeValidate(t *testing.T) {
	for _, ft := range []FreightType{FreightTypePaid, FreightTypeToPay, FreightTypeToBeBilled} {
		assert.NoError(t, ft.Validate())
	}
	assert.Error(t, FreightType("FREE").Validate())
}
