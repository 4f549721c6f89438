// internal/seeder/apply.go
package seeder

import (
	"context"
	"fmt"

	"applicant-seeder/internal/common/database"
	"applicant-seeder/internal/common/logger"
)

// Applier executes generated batch statements against PostgreSQL. All batches
// run in one transaction, so a failed run leaves the table untouched; the
// statements themselves are idempotent upserts, so re-running a committed
// script is also safe.
type Applier struct {
	db     *database.PostgresClient
	logger logger.Logger
}

func NewApplier(db *database.PostgresClient, log logger.Logger) *Applier {
	return &Applier{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "applier"}),
	}
}

func (a *Applier) Apply(ctx context.Context, stmts []string) error {
	tx, err := a.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	for i, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				a.logger.Error("rollback failed", map[string]interface{}{"error": rbErr})
			}
			return fmt.Errorf("exec batch %d/%d: %w", i+1, len(stmts), err)
		}
		a.logger.Info("batch applied", map[string]interface{}{
			"batch": i + 1,
			"total": len(stmts),
		})
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
