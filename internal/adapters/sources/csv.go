package sources

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"launch-dashboard-service/internal/domain"
)

// Column headers of the launch records file.
const (
	ColumnSite     = "Launch Site"
	ColumnPayload  = "Payload Mass (kg)"
	ColumnClass    = "class"
	ColumnCategory = "Booster Version Category"
)

// ParseCSV reads launch records from a headered CSV stream.
// Columns are located by header name; extra columns are ignored.
func ParseCSV(r io.Reader) ([]domain.LaunchRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse csv: missing header: %w", domain.ErrMalformedRecord)
		}
		return nil, fmt.Errorf("parse csv: read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		// Exports written by spreadsheet tools may carry a BOM on the first cell.
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}

	cols := make(map[string]int, 4)
	for _, name := range []string{ColumnSite, ColumnPayload, ColumnClass, ColumnCategory} {
		i, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("parse csv: missing column %q: %w", name, domain.ErrMalformedRecord)
		}
		cols[name] = i
	}

	records := make([]domain.LaunchRecord, 0, 64)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: line %d: %w", line, err)
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("parse csv: line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string, cols map[string]int) (domain.LaunchRecord, error) {
	site := strings.TrimSpace(row[cols[ColumnSite]])
	if site == "" {
		return domain.LaunchRecord{}, fmt.Errorf("empty launch site: %w", domain.ErrMalformedRecord)
	}

	payloadText := strings.TrimSpace(row[cols[ColumnPayload]])
	payload, err := strconv.ParseFloat(payloadText, 64)
	if err != nil || !(payload >= 0) || math.IsInf(payload, 1) {
		return domain.LaunchRecord{}, fmt.Errorf("payload %q: %w", payloadText, domain.ErrMalformedRecord)
	}

	outcome, err := ParseOutcome(row[cols[ColumnClass]])
	if err != nil {
		return domain.LaunchRecord{}, err
	}

	return domain.LaunchRecord{
		Site:            site,
		PayloadMassKg:   payload,
		Outcome:         outcome,
		BoosterCategory: strings.TrimSpace(row[cols[ColumnCategory]]),
	}, nil
}

// ParseOutcome accepts the class column encodings "0"/"1" (and "0.0"/"1.0").
func ParseOutcome(s string) (domain.Outcome, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("class %q: %w", s, domain.ErrMalformedRecord)
	}
	switch v {
	case 0:
		return domain.OutcomeFailure, nil
	case 1:
		return domain.OutcomeSuccess, nil
	}
	return 0, fmt.Errorf("class %q is not 0 or 1: %w", s, domain.ErrMalformedRecord)
}

// CSVFileSource reads launch records from a local CSV file.
type CSVFileSource struct {
	Path string
}

func NewCSVFileSource(path string) *CSVFileSource {
	return &CSVFileSource{Path: path}
}

func (s *CSVFileSource) LoadLaunches(ctx context.Context) ([]domain.LaunchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load launches: open %q: %w", s.Path, err)
	}
	defer f.Close()

	records, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("load launches: %q: %w", s.Path, err)
	}
	return records, nil
}
