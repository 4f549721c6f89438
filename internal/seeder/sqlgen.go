// internal/seeder/sqlgen.go
package seeder

import (
	"strings"

	"applicant-seeder/internal/models"
)

// DefaultBatchSize bounds the number of tuples per INSERT statement.
const DefaultBatchSize = 1000

// insertColumns is the applicants table column list, in tuple order. The
// Interview Venue CSV column lands in the location column.
var insertColumns = []string{
	"application_number",
	"name",
	"phone",
	"program",
	"campus",
	"date",
	"time",
	"location",
	"instructions",
	"status",
}

// updateColumns deliberately excludes status: re-running the script against
// existing rows must not reset a status that has already advanced past
// REGISTERED.
var updateColumns = []string{
	"name",
	"phone",
	"program",
	"campus",
	"date",
	"time",
	"location",
	"instructions",
}

// EscapeString doubles embedded single quotes, the standard SQL string
// escape. Nothing else is escaped; the output is a trusted seed script, not a
// defense against arbitrary input.
func EscapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// QuoteString wraps a string in single quotes with proper escaping.
func QuoteString(s string) string {
	return "'" + EscapeString(s) + "'"
}

// Literal renders an optional value: the bare NULL keyword when absent, a
// quoted literal otherwise.
func Literal(v *string) string {
	if v == nil {
		return "NULL"
	}
	return QuoteString(*v)
}

// RenderTuple renders a record as a parenthesized literal tuple with the 10
// fields in column order.
func RenderTuple(rec *models.ApplicantRecord) string {
	fields := []string{
		QuoteString(rec.ApplicationNumber),
		QuoteString(rec.Name),
		QuoteString(rec.Phone),
		QuoteString(rec.Program),
		QuoteString(rec.Campus),
		Literal(rec.Date),
		Literal(rec.Time),
		QuoteString(rec.Venue),
		QuoteString(rec.Instructions),
		QuoteString(rec.Status),
	}
	return "(" + strings.Join(fields, ", ") + ")"
}

// BuildStatements groups rendered tuples into batches of batchSize and builds
// one idempotent INSERT ... ON CONFLICT statement per batch, preserving tuple
// order.
func BuildStatements(tuples []string, table string, batchSize int) []string {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}

	var stmts []string
	for start := 0; start < len(tuples); start += batchSize {
		end := min(start+batchSize, len(tuples))
		stmts = append(stmts, buildStatement(tuples[start:end], table))
	}
	return stmts
}

func buildStatement(batch []string, table string) string {
	sets := make([]string, len(updateColumns))
	for i, col := range updateColumns {
		sets[i] = col + " = EXCLUDED." + col
	}

	var b strings.Builder
	b.WriteString("INSERT INTO " + table + " (" + strings.Join(insertColumns, ", ") + ") VALUES \n")
	b.WriteString(strings.Join(batch, ",\n"))
	b.WriteString("\nON CONFLICT (application_number) DO UPDATE SET \n")
	b.WriteString(strings.Join(sets, ", "))
	b.WriteString(";\n")
	return b.String()
}
