// cmd/seeder/main.go
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"applicant-seeder/internal/common/config"
	"applicant-seeder/internal/common/database"
	"applicant-seeder/internal/common/logger"
	"applicant-seeder/internal/common/metrics"
	"applicant-seeder/internal/seeder"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Rebuild with configured level/format, tagged with a run ID
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format).
		With(zap.String("runId", uuid.New().String()))
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	log.Info("reading applicant export", map[string]interface{}{
		"path": cfg.Seeder.InputFile,
	})

	in, err := os.Open(cfg.Seeder.InputFile)
	if err != nil {
		zapLog.Fatal("open input failed", zap.Error(err))
	}

	tuples, stats, err := seeder.NewProcessor(log).Process(in)
	in.Close()
	if err != nil {
		zapLog.Fatal("processing failed", zap.Error(err))
	}

	log.Info("found unique records", map[string]interface{}{
		"count":      stats.Unique,
		"rowsRead":   stats.RowsRead,
		"duplicates": stats.Duplicates,
		"emptyKeys":  stats.EmptyKeys,
		"shortRows":  stats.ShortRows,
		"badDates":   stats.BadDates,
		"badTimes":   stats.BadTimes,
	})

	stmts := seeder.BuildStatements(tuples, cfg.Seeder.Table, cfg.Seeder.BatchSize)
	metrics.BatchesBuilt.Add(float64(len(stmts)))

	if err := seeder.WriteScript(cfg.Seeder.OutputFile, stmts); err != nil {
		zapLog.Fatal("write output failed", zap.Error(err))
	}

	log.Info("seed script written", map[string]interface{}{
		"path":    cfg.Seeder.OutputFile,
		"batches": len(stmts),
	})

	if cfg.Seeder.Apply {
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			zapLog.Fatal("postgres init failed", zap.Error(err))
		}
		defer pg.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := pg.Ping(ctx); err != nil {
			zapLog.Fatal("postgres ping failed", zap.Error(err))
		}

		if err := seeder.NewApplier(pg, log).Apply(ctx, stmts); err != nil {
			zapLog.Fatal("apply failed", zap.Error(err))
		}

		log.Info("seed script applied", map[string]interface{}{
			"batches": len(stmts),
			"records": stats.Unique,
		})
	}

	logRunMetrics(log)
}

// logRunMetrics logs the final counter values. A one-shot run has no scrape
// endpoint, so the end-of-run snapshot is how the counters leave the process.
func logRunMetrics(log logger.Logger) {
	counters, err := metrics.Gather()
	if err != nil {
		log.Warn("metrics gather failed", map[string]interface{}{"error": err})
		return
	}
	log.Info("run metrics", map[string]interface{}{"counters": counters})
}
