package snapshot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV reads snapshot records from r. The first row is the header and is
// skipped. Rows too short to describe a room are reported as diagnostics
// and do not stop the read.
func ReadCSV(r io.Reader) ([]Record, []Diagnostic, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		records     []Record
		diagnostics []Diagnostic
		header      = true
	)

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, diagnostics, fmt.Errorf("failed to read snapshot: %w", err)
		}

		if header {
			header = false
			continue
		}

		line, _ := reader.FieldPos(0)

		record, err := RecordFromFields(line, fields)
		if err != nil {
			diagnostics = append(diagnostics, Diagnostic{Line: line, Reason: err.Error()})
			continue
		}
		records = append(records, record)
	}

	return records, diagnostics, nil
}

// WriteCSV writes the header followed by one row per record
func WriteCSV(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(record.Fields()); err != nil {
			return fmt.Errorf("failed to write room %s: %w", record.RoomNumber, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	return nil
}
