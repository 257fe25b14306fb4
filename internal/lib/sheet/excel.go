package sheet

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Record is one JSON object with its keys in document order.
type Record struct {
	Keys   []string
	Values map[string]any
}

// DecodeRecords parses a JSON array of objects, keeping key order.
// Numbers are decoded as json.Number.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, invalidf("body must be a JSON array of objects")
	}

	records := make([]Record, 0, len(raw))
	for i, item := range raw {
		rec, err := decodeRecord(item)
		if err != nil {
			return nil, invalidf("element %d: %v", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeRecord(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return Record{}, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Record{}, errors.New("not an object")
	}

	rec := Record{Values: map[string]any{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Record{}, err
		}
		key := tok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return Record{}, err
		}
		if _, seen := rec.Values[key]; !seen {
			rec.Keys = append(rec.Keys, key)
		}
		rec.Values[key] = value
	}
	return rec, nil
}

// FromRecords writes records to a single-sheet XLSX workbook.
//
// The header row is the key list of the first record. Every record
// contributes the values stored under those keys.
func FromRecords(records []Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, invalidf("list of objects must not be empty")
	}
	header := records[0].Keys
	if len(header) == 0 {
		return nil, invalidf("first object has no properties")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerRow := make([]any, len(header))
	for i, key := range header {
		headerRow[i] = key
	}
	if err := f.SetSheetRow(defaultSheet, "A1", &headerRow); err != nil {
		return nil, errors.Wrap(err, "failed to write header row")
	}

	for i, rec := range records {
		row := make([]any, len(header))
		for j, key := range header {
			row[j] = cellValue(rec.Values[key])
		}

		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "failed to address row")
		}
		if err := f.SetSheetRow(defaultSheet, ref, &row); err != nil {
			return nil, errors.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode workbook")
	}
	return buf.Bytes(), nil
}

func cellValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case string, bool:
		return val
	default:
		out, err := json.Marshal(val)
		if err != nil {
			return nil
		}
		return string(out)
	}
}
