package dto

import (
	"time"

	"github.com/nandi-devi/tms-app/internal/domain/customer"
	"github.com/nandi-devi/tms-app/internal/domain/invoice"
	"github.com/nandi-devi/tms-app/internal/domain/lorryreceipt"
	"github.com/nandi-devi/tms-app/internal/domain/numbering"
	"github.com/nandi-devi/tms-app/internal/domain/payment"
	"github.com/nandi-devi/tms-app/internal/domain/truckhiringnote"
	"github.com/nandi-devi/tms-app/internal/domain/vehicle"
)

// BackupVersion is bumped whenever the backup payload shape changes
const BackupVersion = 1

// BackupData is the full portable snapshot of the ledger. Restore
// replaces the entire dataset with it; there is no merge.
type BackupData struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`

	Customers        []*customer.Customer               `json:"customers"`
	Vehicles         []*vehicle.Vehicle                 `json:"vehicles"`
	LorryReceipts    []*lorryreceipt.LorryReceipt       `json:"lorry_receipts"`
	Invoices         []*invoice.Invoice                 `json:"invoices"`
	TruckHiringNotes []*truckhiringnote.TruckHiringNote `json:"truck_hiring_notes"`
	Payments         []*payment.Payment                 `json:"payments"`
	SequenceCounters []*numbering.SequenceCounter       `json:"sequence_counters"`
	NumberingRanges  []*numbering.NumberingRange        `json:"numbering_ranges"`
}
