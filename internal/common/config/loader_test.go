// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "seeder:\n  input_file: applicants.csv\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "applicants.csv", cfg.Seeder.InputFile)
	assert.Equal(t, "seed_applicants.sql", cfg.Seeder.OutputFile)
	assert.Equal(t, "applicants", cfg.Seeder.Table)
	assert.Equal(t, 1000, cfg.Seeder.BatchSize)
	assert.False(t, cfg.Seeder.Apply)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
}

func TestLoadFromFile_ExplicitValues(t *testing.T) {
	path := writeConfig(t, `
seeder:
  input_file: export.csv
  output_file: out.sql
  table: interview_applicants
  batch_size: 250
logging:
  level: debug
  format: json
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "export.csv", cfg.Seeder.InputFile)
	assert.Equal(t, "out.sql", cfg.Seeder.OutputFile)
	assert.Equal(t, "interview_applicants", cfg.Seeder.Table)
	assert.Equal(t, 250, cfg.Seeder.BatchSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile_NegativeBatchSize(t *testing.T) {
	path := writeConfig(t, "seeder:\n  batch_size: -5\n")

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch_size")
}

func TestLoadFromFile_ApplyRequiresPostgres(t *testing.T) {
	path := writeConfig(t, "seeder:\n  apply: true\n")

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.postgres.host")
}

func TestPostgresConfig_GetDSN(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		Database: "applicants",
		User:     "seeder",
		Password: "secret",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=seeder password=secret dbname=applicants sslmode=disable",
		cfg.GetDSN())
}
