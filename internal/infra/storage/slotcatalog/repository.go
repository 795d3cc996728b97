package slotcatalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/venuebook/venue-scheduler/internal/domain"
	"github.com/venuebook/venue-scheduler/pkg/dbmetrics"
	"github.com/venuebook/venue-scheduler/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"venue_id",
	"label",
	"start_offset",
	"end_offset",
	"price_multiplier",
	"active",
	"created_at",
	"updated_at",
}

// Repository reads venue slot definitions. Slot mutation belongs to the
// venue-owner service; this side is read-only.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a slot catalog repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive returns a venue's active slots ordered by their start-of-day
// offset.
func (r *Repository) ListActive(ctx context.Context, venueID int64) ([]*domain.VenueSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("venue_slots").
		Where(squirrel.Eq{"venue_id": venueID}).
		Where(squirrel.Eq{"active": true}).
		OrderBy("start_offset ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.VenueSlot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Get resolves a slot by id regardless of its active flag, so historical
// bookings and audit quotes still resolve after a slot is retired.
func (r *Repository) Get(ctx context.Context, venueID int64, slotID string) (*domain.VenueSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("venue_slots").
		Where(squirrel.Eq{"venue_id": venueID}).
		Where(squirrel.Eq{"id": slotID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.VenueSlot, error) {
	var slot domain.VenueSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.VenueID,
		&slot.Label,
		&slot.StartOffset,
		&slot.EndOffset,
		&slot.PriceMultiplier,
		&slot.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}
