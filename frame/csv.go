package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/catenc/errs"
)

// ReadCSV reads a CSV stream into a Frame. The first record is the header.
//
// Column types are inferred: a column whose non-empty cells all parse as
// floating point becomes a FloatColumn, otherwise it becomes a StringColumn.
// Empty cells become null in either case.
//
// Returns errs.ErrInvalidFrame for an empty stream or a missing header.
func ReadCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty csv stream", errs.ErrInvalidFrame)
	}

	header := records[0]
	rows := records[1:]

	cols := make([]Column, 0, len(header))
	for j, name := range header {
		cells := make([]string, len(rows))
		for i, row := range rows {
			cells[i] = row[j]
		}
		cols = append(cols, inferColumn(name, cells))
	}

	return New(cols...)
}

// inferColumn probes the cells of one column: all non-empty cells numeric
// yields a FloatColumn, anything else a StringColumn.
func inferColumn(name string, cells []string) Column {
	numeric := true
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			numeric = false
			break
		}
	}

	if numeric {
		col := NewFloatColumn(name, make([]float64, len(cells)))
		for i, cell := range cells {
			if cell == "" {
				col.SetNull(i)
				continue
			}
			v, _ := strconv.ParseFloat(cell, 64)
			col.Set(i, v)
		}

		return col
	}

	col := NewStringColumn(name, cells)
	for i, cell := range cells {
		if cell == "" {
			col.SetNull(i)
		}
	}

	return col
}
