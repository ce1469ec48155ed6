package postgres

import (
	"context"

	domainNumbering "github.com/nandi-devi/tms-app/internal/domain/numbering"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/logger"
	"github.com/nandi-devi/tms-app/internal/postgres"
	"github.com/nandi-devi/tms-app/internal/types"
)

type numberingRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewNumberingRepository(client postgres.IClient, log *logger.Logger) domainNumbering.Repository {
	return &numberingRepository{
		client: client,
		log:    log,
	}
}

func (r *numberingRepository) GetRange(ctx context.Context, documentType types.DocumentType) (*domainNumbering.NumberingRange, error) {
	client := r.client.Querier(ctx)

	var nr domainNumbering.NumberingRange
	query := `SELECT id, document_type, prefix, start_number, end_number, current_number,
		allow_manual_entry, allow_outside_range, created_at, updated_at, created_by, updated_by
		FROM numbering_ranges WHERE document_type = $1`
	if err := client.GetContext(ctx, &nr, query, documentType); err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("numbering range not found").
				WithHintf("No numbering range is configured for %s", documentType).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get numbering range").
			Mark(ierr.ErrDatabase)
	}
	return &nr, nil
}

func (r *numberingRepository) UpsertRange(ctx context.Context, nr *domainNumbering.NumberingRange) error {
	client := r.client.Querier(ctx)

	query := `INSERT INTO numbering_ranges (id, document_type, prefix, start_number, end_number,
		current_number, allow_manual_entry, allow_outside_range, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (document_type) DO UPDATE SET
			prefix = EXCLUDED.prefix,
			start_number = EXCLUDED.start_number,
			end_number = EXCLUDED.end_number,
			current_number = EXCLUDED.current_number,
			allow_manual_entry = EXCLUDED.allow_manual_entry,
			allow_outside_range = EXCLUDED.allow_outside_range,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by`

	_, err := client.ExecContext(ctx, query,
		nr.ID, nr.DocumentType, nr.Prefix, nr.StartNumber, nr.EndNumber,
		nr.CurrentNumber, nr.AllowManualEntry, nr.AllowOutsideRange,
		nr.CreatedAt, nr.UpdatedAt, nr.CreatedBy, nr.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to save numbering range").
			Mark(ierr.ErrDatabase)
	}

	r.log.Infow("saved numbering range",
		"document_type", nr.DocumentType,
		"start_number", nr.StartNumber,
		"end_number", nr.EndNumber,
		"current_number", nr.CurrentNumber)

	return nil
}

func (r *numberingRepository) ListRanges(ctx context.Context) ([]*domainNumbering.NumberingRange, error) {
	client := r.client.Querier(ctx)

	ranges := make([]*domainNumbering.NumberingRange, 0)
	query := `SELECT id, document_type, prefix, start_number, end_number, current_number,
		allow_manual_entry, allow_outside_range, created_at, updated_at, created_by, updated_by
		FROM numbering_ranges ORDER BY document_type`
	if err := client.SelectContext(ctx, &ranges, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list numbering ranges").
			Mark(ierr.ErrDatabase)
	}
	return ranges, nil
}

// AllocateNext issues the next number from the configured range in a
// single conditional update so concurrent callers can never receive the
// same value. Zero rows updated means the range is either absent or
// exhausted; a follow-up read disambiguates the two.
func (r *numberingRepository) AllocateNext(ctx context.Context, documentType types.DocumentType) (int64, error) {
	client := r.client.Querier(ctx)

	query := `UPDATE numbering_ranges
		SET current_number = current_number + 1, updated_at = CURRENT_TIMESTAMP
		WHERE document_type = $1 AND current_number <= end_number
		RETURNING current_number - 1`

	var value int64
	err := client.QueryRowxContext(ctx, query, documentType).Scan(&value)
	if err == nil {
		r.log.Infow("allocated number from range",
			"document_type", documentType,
			"value", value)
		return value, nil
	}
	if !isNoRows(err) {
		return 0, ierr.WithError(err).
			WithHint("Number allocation failed").
			Mark(ierr.ErrDatabase)
	}

	// No row matched: either no range configured or the window is used up
	if _, getErr := r.GetRange(ctx, documentType); getErr != nil {
		return 0, getErr
	}
	return 0, ierr.NewError("numbering range exhausted").
		WithHintf("%s range exhausted; update Settings", documentType.SequenceName()).
		Mark(ierr.ErrSequenceExhausted)
}

// Increment performs the legacy unbounded counter allocation as one
// atomic upsert-and-increment round trip.
func (r *numberingRepository) Increment(ctx context.Context, name string) (int64, error) {
	client := r.client.Querier(ctx)

	query := `INSERT INTO sequence_counters (name, value, created_at, updated_at)
		VALUES ($1, 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE
		SET value = sequence_counters.value + 1,
			updated_at = CURRENT_TIMESTAMP
		RETURNING value`

	var value int64
	if err := client.QueryRowxContext(ctx, query, name).Scan(&value); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Counter increment failed").
			Mark(ierr.ErrDatabase)
	}

	r.log.Infow("incremented legacy counter", "name", name, "value", value)
	return value, nil
}

func (r *numberingRepository) GetCounter(ctx context.Context, name string) (*domainNumbering.SequenceCounter, error) {
	client := r.client.Querier(ctx)

	var counter domainNumbering.SequenceCounter
	query := `SELECT name, value FROM sequence_counters WHERE name = $1`
	if err := client.GetContext(ctx, &counter, query, name); err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("sequence counter not found").
				WithHintf("Counter %s has never been used", name).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get sequence counter").
			Mark(ierr.ErrDatabase)
	}
	return &counter, nil
}

func (r *numberingRepository) ListCounters(ctx context.Context) ([]*domainNumbering.SequenceCounter, error) {
	client := r.client.Querier(ctx)

	counters := make([]*domainNumbering.SequenceCounter, 0)
	query := `SELECT name, value FROM sequence_counters ORDER BY name`
	if err := client.SelectContext(ctx, &counters, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list sequence counters").
			Mark(ierr.ErrDatabase)
	}
	return counters, nil
}

func (r *numberingRepository) SetCounter(ctx context.Context, name string, value int64) error {
	client := r.client.Querier(ctx)

	query := `INSERT INTO sequence_counters (name, value, created_at, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE
		SET value = EXCLUDED.value,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := client.ExecContext(ctx, query, name, value); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to set sequence counter").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *numberingRepository) DeleteAllRanges(ctx context.Context) error {
	client := r.client.Querier(ctx)
	if _, err := client.ExecContext(ctx, `DELETE FROM numbering_ranges`); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete numbering ranges").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *numberingRepository) DeleteAllCounters(ctx context.Context) error {
	client := r.client.Querier(ctx)
	if _, err := client.ExecContext(ctx, `DELETE FROM sequence_counters`); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete sequence counters").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
