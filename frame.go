package main

// frame module holds ordered tabular data used by the inference pipeline
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"fmt"
	"math"
	"strconv"
)

// Kind represents value kind of a frame column
type Kind int

const (
	Numeric     Kind = iota // float64 values, NaN marks null
	Categorical             // string values with null mask
)

// String returns human readable name of the kind
func (k Kind) String() string {
	if k == Categorical {
		return "categorical"
	}
	return "numeric"
}

// Series represents single named column of a frame
type Series struct {
	Name   string    // column name
	Kind   Kind      // column kind
	Floats []float64 // numeric values
	Labels []string  // categorical values
	Valid  []bool    // categorical null mask, false means null
}

// NewNumeric creates numeric series with given values
func NewNumeric(name string, values []float64) *Series {
	return &Series{Name: name, Kind: Numeric, Floats: values}
}

// NewZeros creates numeric series of n zeros
func NewZeros(name string, n int) *Series {
	return NewNumeric(name, make([]float64, n))
}

// Len returns number of cells in the series
func (s *Series) Len() int {
	if s.Kind == Categorical {
		return len(s.Labels)
	}
	return len(s.Floats)
}

// IsNull reports if i-th cell is null
func (s *Series) IsNull(i int) bool {
	if s.Kind == Categorical {
		return !s.Valid[i]
	}
	return math.IsNaN(s.Floats[i])
}

// AsCategorical returns copy of the series converted to categorical kind,
// nulls stay null
func (s *Series) AsCategorical() *Series {
	if s.Kind == Categorical {
		return s.Clone()
	}
	out := &Series{
		Name:   s.Name,
		Kind:   Categorical,
		Labels: make([]string, len(s.Floats)),
		Valid:  make([]bool, len(s.Floats)),
	}
	for i, v := range s.Floats {
		if math.IsNaN(v) {
			continue
		}
		out.Labels[i] = formatFloat(v)
		out.Valid[i] = true
	}
	return out
}

// Clone returns deep copy of the series
func (s *Series) Clone() *Series {
	out := &Series{Name: s.Name, Kind: s.Kind}
	if s.Floats != nil {
		out.Floats = append([]float64(nil), s.Floats...)
	}
	if s.Labels != nil {
		out.Labels = append([]string(nil), s.Labels...)
		out.Valid = append([]bool(nil), s.Valid...)
	}
	return out
}

// Frame represents ordered set of equally sized columns
type Frame struct {
	series []*Series
	index  map[string]int
	nrows  int
}

// NewFrame creates empty frame with given number of rows
func NewFrame(nrows int) *Frame {
	return &Frame{index: make(map[string]int), nrows: nrows}
}

// Len returns number of rows
func (f *Frame) Len() int {
	return f.nrows
}

// Width returns number of columns
func (f *Frame) Width() int {
	return len(f.series)
}

// Columns returns ordered list of column names
func (f *Frame) Columns() []string {
	out := make([]string, len(f.series))
	for i, s := range f.series {
		out[i] = s.Name
	}
	return out
}

// Series returns ordered list of frame columns
func (f *Frame) Series() []*Series {
	return f.series
}

// Column returns column for given name
func (f *Frame) Column(name string) (*Series, bool) {
	idx, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.series[idx], true
}

// Has checks if frame contains given column
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Add appends series to the frame, or replaces the column in place when
// a column with the same name already exists
func (f *Frame) Add(s *Series) error {
	if s.Len() != f.nrows {
		return fmt.Errorf("column %s has %d rows, frame has %d", s.Name, s.Len(), f.nrows)
	}
	if idx, ok := f.index[s.Name]; ok {
		f.series[idx] = s
		return nil
	}
	f.index[s.Name] = len(f.series)
	f.series = append(f.series, s)
	return nil
}

// Clone returns deep copy of the frame
func (f *Frame) Clone() *Frame {
	out := NewFrame(f.nrows)
	for _, s := range f.series {
		out.Add(s.Clone())
	}
	return out
}

// Row returns i-th row as mapping of column name to value, categorical
// cells are returned as strings and nulls as nil
func (f *Frame) Row(i int) map[string]any {
	row := make(map[string]any, len(f.series))
	for _, s := range f.series {
		switch {
		case s.IsNull(i):
			row[s.Name] = nil
		case s.Kind == Categorical:
			row[s.Name] = s.Labels[i]
		default:
			row[s.Name] = s.Floats[i]
		}
	}
	return row
}

// Matrix returns row-major numeric representation of the frame following
// column order, it fails if any column is not numeric
func (f *Frame) Matrix() ([][]float64, error) {
	for _, s := range f.series {
		if s.Kind != Numeric {
			return nil, fmt.Errorf("column %s is %s", s.Name, s.Kind)
		}
	}
	out := make([][]float64, f.nrows)
	for i := 0; i < f.nrows; i++ {
		row := make([]float64, len(f.series))
		for j, s := range f.series {
			row[j] = s.Floats[i]
		}
		out[i] = row
	}
	return out, nil
}

// FrameFromMatrix wraps row-major matrix with given column names
func FrameFromMatrix(columns []string, data [][]float64) (*Frame, error) {
	frame := NewFrame(len(data))
	for j, name := range columns {
		values := make([]float64, len(data))
		for i, row := range data {
			if len(row) != len(columns) {
				return nil, fmt.Errorf("row %d has %d values, expect %d", i, len(row), len(columns))
			}
			values[i] = row[j]
		}
		if err := frame.Add(NewNumeric(name, values)); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

// NullCount returns number of null cells in the frame
func (f *Frame) NullCount() int {
	var count int
	for _, s := range f.series {
		for i := 0; i < f.nrows; i++ {
			if s.IsNull(i) {
				count++
			}
		}
	}
	return count
}

// helper function to format float values the same way tabular tools
// print integral numbers, e.g. 1 instead of 1.0
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
