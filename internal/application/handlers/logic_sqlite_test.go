package handlers

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/thanepark/internal/domain/services"
	"github.com/ersonp/thanepark/internal/infrastructure/config"
	"github.com/ersonp/thanepark/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/thanepark/internal/infrastructure/report"
)

// openSession loads the park stored at dbPath into a fresh session.
func openSession(t *testing.T, dbPath, reportDir string) (*Logic, *sqlite.Repository) {
	t.Helper()
	ctx := context.Background()

	repo, err := sqlite.NewRepository(config.StorageConfig{Path: dbPath})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	require.NoError(t, repo.EnsureSchema(ctx))

	rides, err := repo.LoadRides(ctx)
	require.NoError(t, err)
	model, err := services.NewModel(rides, 0)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLogic(model, repo, report.NewHistoryWriter(reportDir), logger), repo
}

func TestLogic_SQLiteSessions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping sqlite session test in short mode")
	}

	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "thanepark.db")
	reportDir := filepath.Join(dir, "reports")

	first, _ := openSession(t, dbPath, reportDir)
	for _, in := range []string{
		"add n/Accelerator m/1 w/10 a/Adventure t/fast",
		"add n/Carousel m/40 w/1 a/Fantasyland",
		"shutdown 2",
		"delete 1",
		"undo",
	} {
		_, err := first.Execute(ctx, in)
		require.NoError(t, err, in)
	}

	second, repo := openSession(t, dbPath, reportDir)
	rides := second.Model().Rides()
	require.Len(t, rides, 2)
	assert.Equal(t, "Accelerator", rides[0].Name)
	assert.Equal(t, []string{"fast"}, rides[0].Tags)
	assert.Equal(t, "Carousel", rides[1].Name)
	assert.False(t, rides[1].IsOpen())

	// Undo history does not outlive the session.
	_, err := second.Execute(ctx, "undo")
	require.Error(t, err)

	res, err := second.Execute(ctx, "history more")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(reportDir, report.HistoryFile), res.ReportPath)

	entries, err := repo.ListCommands(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 7)
	assert.Equal(t, "history more", entries[0].Input)
	assert.False(t, entries[1].Succeeded)
	assert.NotEqual(t, first.SessionID(), second.SessionID())
	assert.Equal(t, first.SessionID(), entries[len(entries)-1].SessionID)
}
