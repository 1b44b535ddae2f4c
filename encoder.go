package main

// encoder module provides one-hot encoding aligned to training schema
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// OneHot replaces every categorical column of the frame by indicator columns
// named <column>_<value>, one per distinct value. Numeric columns are kept
// first in their original order, indicator columns follow.
func OneHot(frame *Frame) *Frame {
	out := NewFrame(frame.Len())
	var dummies []*Series
	for _, s := range frame.Series() {
		if s.Kind != Categorical {
			out.Add(s)
			continue
		}
		dummies = append(dummies, dummySeries(s)...)
	}
	for _, s := range dummies {
		out.Add(s)
	}
	return out
}

// helper function to build indicator columns for categorical series,
// null cells produce zeros in every indicator
func dummySeries(s *Series) []*Series {
	index := make(map[string]*Series)
	var values []string
	for i, label := range s.Labels {
		if !s.Valid[i] {
			continue
		}
		col, ok := index[label]
		if !ok {
			col = NewZeros(fmt.Sprintf("%s_%s", s.Name, label), len(s.Labels))
			index[label] = col
			values = append(values, label)
		}
		col.Floats[i] = 1
	}
	sort.Strings(values)
	out := make([]*Series, 0, len(values))
	for _, v := range values {
		out = append(out, index[v])
	}
	return out
}

// Reindex aligns frame to given ordered list of columns: columns present in
// both are kept, missing ones are filled with zeros and extra ones are dropped
func Reindex(frame *Frame, columns []string) *Frame {
	out := NewFrame(frame.Len())
	for _, name := range columns {
		if s, ok := frame.Column(name); ok {
			out.Add(s)
			continue
		}
		out.Add(NewZeros(name, frame.Len()))
	}
	return out
}

// CategoricalEncoder one-hot encodes frame onto fixed training column list
type CategoricalEncoder struct{}

// Encode one-hot encodes categorical columns and reconciles the result with
// target columns. Output columns always equal target columns.
func (CategoricalEncoder) Encode(frame *Frame, target []string) (*Frame, error) {
	if err := validateColumns(target); err != nil {
		return nil, err
	}
	log.Debug().Int("columns", len(target)).Msg("encoding data")
	encoded := OneHot(frame)
	var unknown []string
	for _, name := range encoded.Columns() {
		if !InList(name, target) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		log.Trace().Strs("dropped", unknown).Msg("columns absent from encoder list")
	}
	return Reindex(encoded, target), nil
}

// helper function to validate encoder column list
func validateColumns(columns []string) error {
	if len(columns) == 0 {
		return fmt.Errorf("%w: encoder column list is empty", ErrEncodingMismatch)
	}
	seen := make(map[string]bool, len(columns))
	for _, name := range columns {
		if name == "" {
			return fmt.Errorf("%w: encoder column list contains empty name", ErrEncodingMismatch)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate column %s in encoder column list", ErrEncodingMismatch, name)
		}
		seen[name] = true
	}
	return nil
}
