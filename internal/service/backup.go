package service

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	"github.com/nandi-devi/tms-app/internal/domain/customer"
	"github.com/nandi-devi/tms-app/internal/domain/invoice"
	"github.com/nandi-devi/tms-app/internal/domain/lorryreceipt"
	"github.com/nandi-devi/tms-app/internal/domain/payment"
	"github.com/nandi-devi/tms-app/internal/domain/truckhiringnote"
	"github.com/nandi-devi/tms-app/internal/domain/vehicle"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// BackupService exports and restores the full dataset. Restore is a
// replacement, not a merge: everything present is deleted before the
// snapshot is loaded, inside one transaction.
type BackupService interface {
	Export(ctx context.Context) (*dto.BackupData, error)
	Restore(ctx context.Context, data *dto.BackupData) error
	Reset(ctx context.Context) error
}

type backupService struct {
	ServiceParams
}

func NewBackupService(params ServiceParams) BackupService {
	return &backupService{
		ServiceParams: params,
	}
}

// exportPageSize is the page size for the table reads during export
const exportPageSize = types.MaxQueryLimit

// exportAll pages through a table until a short page so no row is left
// out of the snapshot regardless of table size
func exportAll[T any](ctx context.Context, fetch func(ctx context.Context, limit, offset int) ([]T, error)) ([]T, error) {
	out := make([]T, 0)
	for offset := 0; ; offset += exportPageSize {
		page, err := fetch(ctx, exportPageSize, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < exportPageSize {
			return out, nil
		}
	}
}

func (s *backupService) Export(ctx context.Context) (*dto.BackupData, error) {
	data := &dto.BackupData{
		Version:    dto.BackupVersion,
		ExportedAt: time.Now().UTC(),
	}

	// Each table exports independently; the snapshot is not a single
	// consistent read, which is acceptable for an operator-triggered
	// backup on a single-tenant dataset
	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		var err error
		data.Customers, err = exportAll(ctx, func(ctx context.Context, limit, offset int) ([]*customer.Customer, error) {
			return s.CustomerRepo.List(ctx, &types.CustomerFilter{
				QueryFilter: &types.QueryFilter{Limit: limit, Offset: offset},
			})
		})
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		data.Vehicles, err = exportAll(ctx, func(ctx context.Context, limit, offset int) ([]*vehicle.Vehicle, error) {
			return s.VehicleRepo.List(ctx, &types.VehicleFilter{
				QueryFilter: &types.QueryFilter{Limit: limit, Offset: offset},
			})
		})
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		data.LorryReceipts, err = exportAll(ctx, func(ctx context.Context, limit, offset int) ([]*lorryreceipt.LorryReceipt, error) {
			return s.LorryReceiptRepo.List(ctx, &types.LorryReceiptFilter{
				QueryFilter: &types.QueryFilter{Limit: limit, Offset: offset},
			})
		})
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		data.Invoices, err = exportAll(ctx, func(ctx context.Context, limit, offset int) ([]*invoice.Invoice, error) {
			return s.InvoiceRepo.List(ctx, &types.InvoiceFilter{
				QueryFilter: &types.QueryFilter{Limit: limit, Offset: offset},
			})
		})
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		data.TruckHiringNotes, err = exportAll(ctx, func(ctx context.Context, limit, offset int) ([]*truckhiringnote.TruckHiringNote, error) {
			return s.TruckHiringNoteRepo.List(ctx, &types.TruckHiringNoteFilter{
				QueryFilter: &types.QueryFilter{Limit: limit, Offset: offset},
			})
		})
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		data.Payments, err = exportAll(ctx, func(ctx context.Context, limit, offset int) ([]*payment.Payment, error) {
			return s.PaymentRepo.List(ctx, &types.PaymentFilter{
				QueryFilter: &types.QueryFilter{Limit: limit, Offset: offset},
			})
		})
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		data.SequenceCounters, err = s.NumberingRepo.ListCounters(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		data.NumberingRanges, err = s.NumberingRepo.ListRanges(ctx)
		return err
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *backupService) Restore(ctx context.Context, data *dto.BackupData) error {
	if data == nil {
		return ierr.NewError("empty backup payload").
			WithHint("Backup data is required").
			Mark(ierr.ErrValidation)
	}
	if data.Version != dto.BackupVersion {
		return ierr.NewError("unsupported backup version").
			WithHintf("Backup version %d is not supported; expected %d", data.Version, dto.BackupVersion).
			Mark(ierr.ErrValidation)
	}

	return s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.deleteAll(ctx); err != nil {
			return err
		}

		for _, c := range data.Customers {
			if err := s.CustomerRepo.Create(ctx, c); err != nil {
				return err
			}
		}
		for _, v := range data.Vehicles {
			if err := s.VehicleRepo.Create(ctx, v); err != nil {
				return err
			}
		}
		for _, lr := range data.LorryReceipts {
			if err := s.LorryReceiptRepo.Create(ctx, lr); err != nil {
				return err
			}
		}
		for _, inv := range data.Invoices {
			if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
				return err
			}
		}
		for _, thn := range data.TruckHiringNotes {
			if err := s.TruckHiringNoteRepo.Create(ctx, thn); err != nil {
				return err
			}
		}
		for _, p := range data.Payments {
			if err := s.PaymentRepo.Create(ctx, p); err != nil {
				return err
			}
		}
		for _, c := range data.SequenceCounters {
			if err := s.NumberingRepo.SetCounter(ctx, c.Name, c.Value); err != nil {
				return err
			}
		}
		for _, r := range data.NumberingRanges {
			if err := s.NumberingRepo.UpsertRange(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *backupService) Reset(ctx context.Context) error {
	s.Logger.Warnf("resetting the full dataset")
	return s.DB.WithTx(ctx, s.deleteAll)
}

// deleteAll wipes every table, children before the rows they reference
func (s *backupService) deleteAll(ctx context.Context) error {
	if err := s.PaymentRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.InvoiceRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.TruckHiringNoteRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.LorryReceiptRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.VehicleRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.CustomerRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.NumberingRepo.DeleteAllCounters(ctx); err != nil {
		return err
	}
	return s.NumberingRepo.DeleteAllRanges(ctx)
}
