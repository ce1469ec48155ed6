package types

import (
	"fmt"

	"github.com/samber/lo"
)

// DocumentType identifies which numbered document a sequence or
// numbering range belongs to
type DocumentType string

const (
	DocumentTypeLorryReceipt    DocumentType = "lr"
	DocumentTypeInvoice         DocumentType = "invoice"
	DocumentTypeTruckHiringNote DocumentType = "thn"
)

func (d DocumentType) String() string {
	return string(d)
}

// SequenceName is the key used for both the numbering range lookup and
// the legacy counter fallback of this document type
func (d DocumentType) SequenceName() string {
	return string(d)
}

func (d DocumentType) Validate() error {
	allowed := []DocumentType{
		DocumentTypeLorryReceipt,
		DocumentTypeInvoice,
		DocumentTypeTruckHiringNote,
	}
	if !lo.Contains(allowed, d) {
		return fmt.Errorf("invalid document type: %s", d)
	}
	return nil
}
