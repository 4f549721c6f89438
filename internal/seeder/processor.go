// internal/seeder/processor.go
package seeder

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"applicant-seeder/internal/common/logger"
	"applicant-seeder/internal/common/metrics"
	"applicant-seeder/internal/models"
)

// Stats counts what a run saw. Recoverable row conditions land here instead
// of surfacing as errors; the output file never reflects them.
type Stats struct {
	RowsRead   int
	Unique     int
	Duplicates int
	EmptyKeys  int
	ShortRows  int
	BadDates   int
	BadTimes   int
}

// Processor folds the CSV export into an ordered, deduplicated sequence of
// rendered SQL tuples.
type Processor struct {
	logger logger.Logger
}

func NewProcessor(log logger.Logger) *Processor {
	return &Processor{
		logger: log.WithFields(map[string]interface{}{"component": "processor"}),
	}
}

// Process reads every data row after the header and renders one tuple per
// valid, first-seen application number, in source order. Rows with fewer than
// nine columns, an empty application number, or a number already seen are
// skipped silently and counted.
func (p *Processor) Process(r io.Reader) ([]string, Stats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // short rows are handled by the length check below

	var stats Stats

	// Skip header
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, stats, nil
		}
		return nil, stats, fmt.Errorf("read header: %w", err)
	}

	var tuples []string
	seen := make(map[string]struct{})

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read row %d: %w", stats.RowsRead+1, err)
		}
		stats.RowsRead++
		metrics.RowsRead.Inc()

		if len(row) < models.NumCSVColumns {
			stats.ShortRows++
			metrics.RowsSkipped.WithLabelValues("short_row").Inc()
			p.logger.Debug("skipping short row", map[string]interface{}{
				"row":     stats.RowsRead,
				"columns": len(row),
			})
			continue
		}

		appNo := strings.TrimSpace(row[0])
		if appNo == "" {
			stats.EmptyKeys++
			metrics.RowsSkipped.WithLabelValues("empty_key").Inc()
			continue
		}
		if _, dup := seen[appNo]; dup {
			stats.Duplicates++
			metrics.RowsSkipped.WithLabelValues("duplicate").Inc()
			continue
		}
		seen[appNo] = struct{}{}

		rec := recordFromRow(appNo, row)
		if rec.Date == nil {
			stats.BadDates++
			metrics.FieldsNulled.WithLabelValues("date").Inc()
		}
		if rec.Time == nil {
			stats.BadTimes++
			metrics.FieldsNulled.WithLabelValues("time").Inc()
		}

		tuples = append(tuples, RenderTuple(rec))
		stats.Unique++
		metrics.RecordsEmitted.Inc()
	}

	return tuples, stats, nil
}

func recordFromRow(appNo string, row []string) *models.ApplicantRecord {
	return &models.ApplicantRecord{
		ApplicationNumber: appNo,
		Name:              strings.TrimSpace(row[1]),
		Phone:             strings.TrimSpace(row[2]),
		Program:           strings.TrimSpace(row[3]),
		Campus:            strings.TrimSpace(row[4]),
		Date:              NormalizeDate(row[5]),
		Time:              NormalizeTime(row[6]),
		Venue:             strings.TrimSpace(row[7]),
		Instructions:      strings.TrimSpace(row[8]),
		Status:            models.StatusRegistered,
	}
}
