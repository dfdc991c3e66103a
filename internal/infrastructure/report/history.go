package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// HistoryFile is the file name of the command history report.
const HistoryFile = "history.md"

// HistoryWriter writes the command history report into a directory.
type HistoryWriter struct {
	Dir string
	Now func() time.Time
}

// NewHistoryWriter creates a HistoryWriter for dir.
func NewHistoryWriter(dir string) *HistoryWriter {
	return &HistoryWriter{Dir: dir, Now: time.Now}
}

// WriteHistoryReport renders entries (most recent first) to Dir/history.md
// and returns the file path.
func (h *HistoryWriter) WriteHistoryReport(_ context.Context, entries []entities.CommandEntry) (path string, err error) {
	if err := os.MkdirAll(h.Dir, 0755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	path = filepath.Join(h.Dir, HistoryFile)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	if err := WriteHistory(f, entries, h.Now()); err != nil {
		return "", fmt.Errorf("formatting history: %w", err)
	}
	return path, nil
}

// WriteHistory renders entries as a markdown table. Times are shown both
// absolute and relative to now.
func WriteHistory(w io.Writer, entries []entities.CommandEntry, now time.Time) error {
	if _, err := fmt.Fprint(w, "# Command History\n\n"); err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err := fmt.Fprint(w, "You have not yet entered any commands.\n")
		return err
	}

	if _, err := fmt.Fprintf(w, "Total: %s commands\n\n", humanize.Comma(int64(len(entries)))); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "| Time | When | Command | Result | Feedback |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|------|------|---------|--------|----------|\n"); err != nil {
		return err
	}

	for _, e := range entries {
		result := "ok"
		if !e.Succeeded {
			result = "failed"
		}
		if _, err := fmt.Fprintf(w, "| %s | %s | `%s` | %s | %s |\n",
			e.ExecutedAt.Local().Format(time.DateTime),
			humanize.RelTime(e.ExecutedAt, now, "ago", "from now"),
			escapeMarkdown(e.Input),
			result,
			escapeMarkdown(e.Feedback),
		); err != nil {
			return err
		}
	}
	return nil
}
