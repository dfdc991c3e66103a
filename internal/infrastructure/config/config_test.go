package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeParkName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple lowercase",
			input:    "thanepark",
			expected: "thanepark",
		},
		{
			name:     "uppercase converted",
			input:    "ThanePark",
			expected: "thanepark",
		},
		{
			name:     "spaces to underscores",
			input:    "thane park",
			expected: "thane_park",
		},
		{
			name:     "hyphens to underscores",
			input:    "thane-park",
			expected: "thane_park",
		},
		{
			name:     "special characters removed",
			input:    "thane@park!",
			expected: "thanepark",
		},
		{
			name:     "consecutive underscores collapsed",
			input:    "thane--park",
			expected: "thane_park",
		},
		{
			name:     "leading trailing underscores trimmed",
			input:    "-thane-park-",
			expected: "thane_park",
		},
		{
			name:     "empty string returns default",
			input:    "",
			expected: DefaultPark,
		},
		{
			name:     "only special chars returns default",
			input:    "!!!",
			expected: DefaultPark,
		},
		{
			name:     "complex mixed input",
			input:    "Sci-Fi City (East 2)",
			expected: "sci_fi_city_east_2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeParkName(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "reports", cfg.Report.Dir)
	assert.Equal(t, 0, cfg.History.MaxSnapshots)
	assert.Empty(t, cfg.Storage.Path)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/home/user/project/.thanepark", ConfigDir("/home/user/project"))
	assert.Equal(t, "/home/user/project/.thanepark/config.yaml", ConfigFilePath("/home/user/project"))
	assert.Equal(t, "/home/user/project/.thanepark/parks.yaml", ParksFilePath("/home/user/project"))
	assert.Equal(t, "/p/.thanepark/parks/sci_fi/thanepark.db", ParkDBPath("/p", "Sci-Fi"))
}

func TestLoad_NoConfigUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, Exists(dir))
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)

	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvHTTPAddr, "127.0.0.1:9000")
	t.Setenv(EnvDB, "/tmp/park.db")
	t.Setenv(EnvMaxSnapshots, "20")

	cfg, err = Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, "/tmp/park.db", cfg.Storage.Path)
	assert.Equal(t, 20, cfg.History.MaxSnapshots)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvLogFormat, "")
	require.NoError(t, os.Unsetenv(EnvLogFormat))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("THANEPARK_LOG_FORMAT=json\n"), 0600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "log: [unclosed"},
		{"bad format", "log:\n  format: xml\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"negative snapshots", "history:\n  max_snapshots: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
			require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(tt.yaml), 0644))

			_, err := Load(dir)
			require.Error(t, err)
		})
	}
}

func TestDBPath(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Storage.Path = "/explicit.db"
	path, err := cfg.DBPath(dir, "x")
	require.NoError(t, err)
	assert.Equal(t, "/explicit.db", path)

	require.NoError(t, WriteDefault(dir))
	cfg.Storage.Path = ""
	path, err = cfg.DBPath(dir, "East Wing")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".thanepark", "parks", "east_wing", "thanepark.db"), path)
}

func TestReportDir(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/base", "reports"), cfg.ReportDir("/base"))

	cfg.Report.Dir = "/abs/reports"
	assert.Equal(t, "/abs/reports", cfg.ReportDir("/base"))
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))
	require.Error(t, WriteDefault(dir))
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.History.MaxSnapshots = 50
	require.NoError(t, Write(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 50, loaded.History.MaxSnapshots)
}

func TestDefaultConfigYAML_DescribesSnapshotBound(t *testing.T) {
	assert.Contains(t, DefaultConfigYAML, "undo depth is one less")
	assert.NotContains(t, DefaultConfigYAML, "# undo depth per session")
}
