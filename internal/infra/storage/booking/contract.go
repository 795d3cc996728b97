package booking

import (
	"context"
	"database/sql"

	"github.com/venuebook/venue-scheduler/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works over a
// bare *sql.DB, the metrics wrapper and an open transaction alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
