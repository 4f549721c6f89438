// internal/common/metrics/metrics.go
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

var (
	RowsRead = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seeder_rows_read_total",
			Help: "Total number of CSV data rows read",
		},
	)

	RowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seeder_rows_skipped_total",
			Help: "Total number of rows skipped, by reason",
		},
		[]string{"reason"},
	)

	RecordsEmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seeder_records_emitted_total",
			Help: "Total number of unique applicant records rendered",
		},
	)

	FieldsNulled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seeder_fields_nulled_total",
			Help: "Total number of unparseable field values mapped to NULL",
		},
		[]string{"field"},
	)

	BatchesBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seeder_batches_built_total",
			Help: "Total number of INSERT statements built",
		},
	)
)

// Gather snapshots the seeder counter families from the default registry,
// flattening labeled series into name{label="value"} keys. A one-shot run has
// no scrape endpoint, so main logs this snapshot at the end of the run.
func Gather() (map[string]float64, error) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "seeder_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			out[seriesName(mf.GetName(), m)] = m.GetCounter().GetValue()
		}
	}
	return out, nil
}

func seriesName(name string, m *dto.Metric) string {
	if len(m.GetLabel()) == 0 {
		return name
	}

	labels := make([]string, 0, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	sort.Strings(labels)
	return name + "{" + strings.Join(labels, ",") + "}"
}
