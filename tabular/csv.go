/*
 * pycontract
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package tabular reads CSV event traces into a monitor, the row-oriented
counterpart to submitting events one at a time from code. It is not part
of the monitor evaluation engine itself: a monitor never imports this
package, only a caller driving a CSV-backed run does. Reading the column
layout or encoding of a trace file is explicitly outside the engine's
scope; this package uses only the standard library's encoding/csv, since
no example in the retrieved corpus pulls in a third-party CSV or
spreadsheet library for this kind of row-to-struct decoding.
*/
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
)

/*
Row is one decoded CSV row, keyed by column name - the Go counterpart of
Python's csv.DictReader used by pycontract_csv.py's CSVSource.
*/
type Row map[string]string

/*
Reader iterates the rows of a CSV source, associating each with its
column names. By default the first row is taken as the header; Columns
may be set before the first call to Next to supply names explicitly
instead, for headerless files.
*/
type Reader struct {
	csv       *csv.Reader
	Columns   []string
	LineCount int

	started bool
}

/*
NewReader wraps r as a CSV row source.
*/
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return &Reader{csv: cr}
}

/*
Next reads and returns the next row, or io.EOF once the source is
exhausted. The first call reads the header row (from the file, unless
Columns was already set) before reading any data.
*/
func (r *Reader) Next() (Row, error) {
	if !r.started {
		r.started = true
		if r.Columns == nil {
			header, err := r.csv.Read()
			if err != nil {
				return nil, err
			}
			r.Columns = header
		}
	}

	record, err := r.csv.Read()
	if err != nil {
		return nil, err
	}
	r.LineCount++

	if len(record) != len(r.Columns) {
		return nil, fmt.Errorf("tabular: row %d has %d fields, want %d", r.LineCount, len(record), len(r.Columns))
	}

	row := make(Row, len(record))
	for i, col := range r.Columns {
		row[col] = record[i]
	}
	return row, nil
}

/*
ReadAll reads every remaining row.
*/
func (r *Reader) ReadAll() ([]Row, error) {
	var rows []Row
	for {
		row, err := r.Next()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
}
