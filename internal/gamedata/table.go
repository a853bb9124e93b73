package gamedata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Table holds the rows of one exported param table. The export format is
// CSV with a fixed "ID,Name" prefix followed by one column per param
// field, as produced by the table dumper.
type Table struct {
	Stem string

	fields map[string]int
	rows   []Row
	byID   map[int]int
}

// Row is a single param row. Field accessors expect field names that
// exist in the table; verify generator requirements with LookupFields
// before iterating.
type Row struct {
	ID   int
	Name string

	table *Table
	cells []string
}

func readTable(stem string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 || header[0] != "ID" || header[1] != "Name" {
		return nil, fmt.Errorf("unexpected header, want ID,Name,... got %v", header)
	}

	t := &Table{
		Stem:   stem,
		fields: make(map[string]int, len(header)-2),
		byID:   make(map[int]int),
	}
	for i, name := range header[2:] {
		if name == "" {
			return nil, fmt.Errorf("empty field name in column %d", i+2)
		}
		if _, exists := t.fields[name]; exists {
			return nil, fmt.Errorf("duplicate field name %q", name)
		}
		t.fields[name] = i + 2
	}

	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		line++
		if len(record) != len(header) {
			return nil, fmt.Errorf("row %d has %d columns, want %d", line, len(record), len(header))
		}

		id, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d has invalid ID %q", line, record[0])
		}

		t.byID[id] = len(t.rows)
		t.rows = append(t.rows, Row{
			ID:    id,
			Name:  record[1],
			table: t,
			cells: record,
		})
	}

	return t, nil
}

func (t *Table) Rows() []Row {
	return t.rows
}

func (t *Table) RowByID(id int) (Row, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Row{}, false
	}
	return t.rows[i], true
}

func (t *Table) HasField(name string) bool {
	_, ok := t.fields[name]
	return ok
}

// LookupFields confirms every named field exists in the export, so a
// version mismatch between dumper and generator surfaces before any row
// is processed.
func (t *Table) LookupFields(names ...string) error {
	for _, name := range names {
		if !t.HasField(name) {
			return fmt.Errorf("param table %s has no field %q", t.Stem, name)
		}
	}
	return nil
}

func (r Row) cell(field string) string {
	i, ok := r.table.fields[field]
	if !ok {
		panic(fmt.Sprintf("gamedata: param table %s has no field %q", r.table.Stem, field))
	}
	return r.cells[i]
}

func (r Row) Str(field string) string {
	return r.cell(field)
}

// Int reads an integer cell. Dumper exports occasionally format whole
// numbers with a decimal part, so a float fallback truncates those.
func (r Row) Int(field string) int {
	cell := r.cell(field)
	if n, err := strconv.Atoi(cell); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return int(f)
	}
	return 0
}

func (r Row) Float(field string) float64 {
	f, err := strconv.ParseFloat(r.cell(field), 64)
	if err != nil {
		return 0
	}
	return f
}

func (r Row) Bool(field string) bool {
	switch r.cell(field) {
	case "1", "true", "True":
		return true
	}
	return false
}
