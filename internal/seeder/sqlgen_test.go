// internal/seeder/sqlgen_test.go
package seeder

import (
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"applicant-seeder/internal/common/metrics"
	"applicant-seeder/internal/models"
)

func TestQuoteString_EscapesSingleQuotes(t *testing.T) {
	assert.Equal(t, "'O''Brien'", QuoteString("O'Brien"))
	assert.Equal(t, "''", QuoteString(""))
	assert.Equal(t, "'it''s ''quoted'''", QuoteString("it's 'quoted'"))
}

func TestLiteral_NilRendersNULL(t *testing.T) {
	assert.Equal(t, "NULL", Literal(nil))
	assert.Equal(t, "'2024-03-21'", Literal(strPtr("2024-03-21")))
}

func TestRenderTuple(t *testing.T) {
	rec := &models.ApplicantRecord{
		ApplicationNumber: "APP001",
		Name:              "O'Brien",
		Phone:             "9876543210",
		Program:           "BSc Computer Science",
		Campus:            "Main Campus",
		Date:              strPtr("2024-03-21"),
		Time:              strPtr("14:30:00"),
		Venue:             "Hall A",
		Instructions:      "Bring ID proof",
		Status:            models.StatusRegistered,
	}

	want := "('APP001', 'O''Brien', '9876543210', 'BSc Computer Science', " +
		"'Main Campus', '2024-03-21', '14:30:00', 'Hall A', 'Bring ID proof', 'REGISTERED')"
	assert.Equal(t, want, RenderTuple(rec))
}

func TestRenderTuple_NullDateAndTime(t *testing.T) {
	rec := &models.ApplicantRecord{
		ApplicationNumber: "APP002",
		Status:            models.StatusRegistered,
	}

	tuple := RenderTuple(rec)
	assert.Contains(t, tuple, ", NULL, NULL, ")
	assert.Equal(t, 10, len(strings.Split(tuple, ", ")))
}

func TestBuildStatements_Batching(t *testing.T) {
	tuples := make([]string, 2500)
	for i := range tuples {
		tuples[i] = fmt.Sprintf("(r%d)", i)
	}

	stmts := BuildStatements(tuples, "applicants", 1000)
	require.Len(t, stmts, 3)

	counts := make([]int, len(stmts))
	for i, stmt := range stmts {
		counts[i] = strings.Count(stmt, "(r")
	}
	assert.Equal(t, []int{1000, 1000, 500}, counts)

	// First tuple of each batch follows source order
	assert.Contains(t, stmts[0], "(r0)")
	assert.Contains(t, stmts[1], "(r1000)")
	assert.Contains(t, stmts[2], "(r2000)")
}

func TestBuildStatements_Empty(t *testing.T) {
	assert.Empty(t, BuildStatements(nil, "applicants", 1000))
}

func TestBuildStatements_StatusNeverUpdated(t *testing.T) {
	tuples := make([]string, 1500)
	for i := range tuples {
		tuples[i] = fmt.Sprintf("(r%d)", i)
	}

	for _, stmt := range BuildStatements(tuples, "applicants", 1000) {
		parts := strings.SplitN(stmt, "DO UPDATE SET", 2)
		require.Len(t, parts, 2)
		assert.Contains(t, parts[0], "status")
		assert.NotContains(t, parts[1], "status")
	}
}

func TestBuildStatements_DoesNotTouchCounters(t *testing.T) {
	before := testutil.ToFloat64(metrics.BatchesBuilt)

	BuildStatements([]string{"('A1')", "('A2')"}, "applicants", 1)

	// Batch accounting is the caller's job; the builder stays pure
	assert.Equal(t, before, testutil.ToFloat64(metrics.BatchesBuilt))
}

func TestBuildStatements_StatementShape(t *testing.T) {
	stmts := BuildStatements([]string{"('A1')", "('A2')"}, "applicants", 1000)
	require.Len(t, stmts, 1)

	want := "INSERT INTO applicants (application_number, name, phone, program, campus, " +
		"date, time, location, instructions, status) VALUES \n" +
		"('A1'),\n" +
		"('A2')\n" +
		"ON CONFLICT (application_number) DO UPDATE SET \n" +
		"name = EXCLUDED.name, phone = EXCLUDED.phone, program = EXCLUDED.program, " +
		"campus = EXCLUDED.campus, date = EXCLUDED.date, time = EXCLUDED.time, " +
		"location = EXCLUDED.location, instructions = EXCLUDED.instructions;\n"
	assert.Equal(t, want, stmts[0])
}
