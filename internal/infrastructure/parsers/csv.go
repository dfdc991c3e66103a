package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVParser parses rides from CSV format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed rides.
// Expected columns: name, maintenance, wait_time, address, status, tags.
// Tags are separated by semicolons.
func (p *CSVParser) Parse(r io.Reader) ([]RawRide, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(strings.ToLower(col))] = i
	}

	requiredCols := []string{"name", "maintenance", "wait_time", "address"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawRides.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawRide, error) {
	var rides []RawRide
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		ride, err := p.parseRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}

	return rides, nil
}

// parseRecord converts a CSV record to a RawRide.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) (RawRide, error) {
	ride := RawRide{
		Name:    getColumn(record, colIndex, "name"),
		Address: getColumn(record, colIndex, "address"),
		Status:  getColumn(record, colIndex, "status"),
		LineNum: lineNum,
	}

	var err error
	if ride.Maintenance, err = intColumn(record, colIndex, "maintenance", lineNum); err != nil {
		return RawRide{}, err
	}
	if ride.WaitTime, err = intColumn(record, colIndex, "wait_time", lineNum); err != nil {
		return RawRide{}, err
	}

	if tags := getColumn(record, colIndex, "tags"); tags != "" {
		ride.Tags = strings.Split(tags, ";")
	}

	return ride, nil
}

func intColumn(record []string, colIndex map[string]int, col string, lineNum int) (int, error) {
	s := strings.TrimSpace(getColumn(record, colIndex, col))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s value %q: %w", lineNum, col, s, err)
	}
	return n, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
