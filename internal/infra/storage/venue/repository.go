package venue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/venuebook/venue-scheduler/internal/domain"
	"github.com/venuebook/venue-scheduler/pkg/dbmetrics"
	"github.com/venuebook/venue-scheduler/pkg/psqlbuilder"
)

// Repository reads venues. Venue management is owned by the registry
// service; the scheduler only needs capacity, tenant scope and activity.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a venue repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get fetches a venue scoped to a tenant.
func (r *Repository) Get(ctx context.Context, tenantID, venueID int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"capacity",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("venues").
		Where(squirrel.Eq{"id": venueID}).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Venue
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.TenantID,
		&v.Name,
		&v.Capacity,
		&v.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan venue: %v", ErrScanRow, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}
