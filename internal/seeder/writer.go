// internal/seeder/writer.go
package seeder

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const scriptHeader = "-- Seed data for applicants table\n"

// RenderScript assembles the full seed script: a comment header followed by
// one statement per batch, each terminated by a blank line.
func RenderScript(stmts []string) string {
	var b strings.Builder
	b.WriteString(scriptHeader)
	for _, stmt := range stmts {
		b.WriteString(stmt)
		b.WriteString("\n")
	}
	return b.String()
}

// WriteScript writes the seed script to path, truncating any existing file.
func WriteScript(path string, stmts []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err = w.WriteString(RenderScript(stmts)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
