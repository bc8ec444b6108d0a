package dataframe

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// ColumnType classifies a column by the values sampled from it.
type ColumnType int

const (
	TypeString ColumnType = iota
	TypeInt
	TypeFloat
)

// typeSampleSize caps how many rows are inspected per column when
// inferring its type.
const typeSampleSize = 20

// Cell is one parsed value. Numeric cells keep the parsed number alongside
// the display text so formatting stays lossless for string columns.
type Cell struct {
	Raw  string
	Num  float64
	Type ColumnType
}

// Float returns the numeric value of the cell, if it has one.
func (c Cell) Float() (float64, bool) {
	if c.Type == TypeString {
		return 0, false
	}
	return c.Num, true
}

// String returns the display text of the cell.
func (c Cell) String() string {
	return c.Raw
}

// MarshalJSON emits numeric cells as JSON numbers and everything else as
// strings.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.Type != TypeString && json.Valid([]byte(c.Raw)) {
		return []byte(c.Raw), nil
	}
	return json.Marshal(c.Raw)
}

// Row maps a column name to its cell.
type Row map[string]Cell

// Frame is a parsed CSV file: ordered header, per-column types, and rows
// keyed by column name.
type Frame struct {
	Columns []string
	Types   map[string]ColumnType
	Rows    []Row
}

// HasColumn reports whether the frame contains the named column.
func (f *Frame) HasColumn(name string) bool {
	for _, c := range f.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns every cell of the named column in row order.
func (f *Frame) Column(name string) []Cell {
	cells := make([]Cell, 0, len(f.Rows))
	for _, row := range f.Rows {
		cells = append(cells, row[name])
	}
	return cells
}

// Read parses CSV data with a header row into a Frame. Records with a
// field count that differs from the header are an error.
func Read(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	frame := &Frame{
		Columns: headers,
		Types:   make(map[string]ColumnType, len(headers)),
	}
	for i, name := range headers {
		frame.Types[name] = inferColumnType(records, i)
	}

	for _, record := range records {
		row := make(Row, len(headers))
		for i, val := range record {
			if i >= len(headers) {
				break
			}
			row[headers[i]] = newCell(val, frame.Types[headers[i]])
		}
		frame.Rows = append(frame.Rows, row)
	}

	return frame, nil
}

// newCell parses a raw value according to the column's inferred type. A
// value that does not actually parse (mixed column past the sample window)
// falls back to a string cell.
func newCell(val string, colType ColumnType) Cell {
	switch colType {
	case TypeInt, TypeFloat:
		num, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return Cell{Raw: val, Type: TypeString}
		}
		return Cell{Raw: val, Num: num, Type: colType}
	default:
		return Cell{Raw: val, Type: TypeString}
	}
}

// inferColumnType samples up to typeSampleSize rows of a column and
// classifies it. Empty values are skipped; a column that is all empty is a
// string column.
func inferColumnType(rows [][]string, colIndex int) ColumnType {
	sampleSize := typeSampleSize
	if len(rows) < sampleSize {
		sampleSize = len(rows)
	}

	isInt := true
	isFloat := true
	sampled := false

	for i := 0; i < sampleSize; i++ {
		if colIndex >= len(rows[i]) {
			continue
		}
		val := rows[i][colIndex]
		if val == "" {
			continue
		}
		sampled = true

		if _, err := strconv.Atoi(val); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(val, 64); err != nil {
			isFloat = false
		}
	}

	if !sampled {
		return TypeString
	}
	if isInt {
		return TypeInt
	}
	if isFloat {
		return TypeFloat
	}
	return TypeString
}
