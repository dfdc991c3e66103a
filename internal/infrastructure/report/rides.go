// Package report renders rides and the command log for files and terminals.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// Export formats.
const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// Formats lists the supported export formats.
var Formats = []string{FormatJSON, FormatCSV, FormatMarkdown}

// IsValidFormat reports whether format is supported by WriteRides.
func IsValidFormat(format string) bool {
	return slices.Contains(Formats, format)
}

// WriteRides writes rides to w in the given format.
func WriteRides(w io.Writer, format string, rides []entities.Ride) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, rides)
	case FormatCSV:
		return writeCSV(w, rides)
	case FormatMarkdown:
		return writeMarkdown(w, rides)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, rides []entities.Ride) error {
	if rides == nil {
		rides = []entities.Ride{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rides)
}

func writeCSV(w io.Writer, rides []entities.Ride) error {
	writer := csv.NewWriter(w)

	header := []string{"name", "maintenance", "wait_time", "address", "status", "tags"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range rides {
		row := []string{
			r.Name,
			strconv.Itoa(r.Maintenance),
			strconv.Itoa(r.WaitTime),
			r.Address,
			string(r.Status),
			strings.Join(r.Tags, ";"),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeMarkdown(w io.Writer, rides []entities.Ride) error {
	if _, err := fmt.Fprintf(w, "# Thane Park Rides\n\nTotal: %s rides\n\n", humanize.Comma(int64(len(rides)))); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| # | Name | Maintenance (days) | Wait (min) | Zone | Status | Tags |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|---|------|--------------------|------------|------|--------|------|\n"); err != nil {
		return err
	}

	for i, r := range rides {
		if _, err := fmt.Fprintf(w, "| %d | %s | %d | %d | %s | %s | %s |\n",
			i+1,
			escapeMarkdown(r.Name),
			r.Maintenance,
			r.WaitTime,
			escapeMarkdown(r.Address),
			r.Status,
			strings.Join(r.Tags, ", "),
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
