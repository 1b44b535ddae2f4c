package main

// imputer module fills missing values with statistics learned at training
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// Imputer represents fitted transform which replaces nulls
type Imputer interface {
	NumFeatures() int
	Transform(X [][]float64) ([][]float64, error)
}

// ImputerStrategies lists strategies of fitted simple imputer
var ImputerStrategies = []string{"mean", "median", "most_frequent", "constant"}

// SimpleImputer replaces NaN values of every column by its fitted statistic
type SimpleImputer struct {
	Strategy     string    `json:"strategy"`                // strategy used at fit time
	Statistics   []float64 `json:"statistics"`              // per column fill values
	FeatureNames []string  `json:"feature_names,omitempty"` // columns seen at fit time
}

// DecodeSimpleImputer decodes and validates imputer artifact
func DecodeSimpleImputer(data []byte) (*SimpleImputer, error) {
	var imp SimpleImputer
	if err := json.Unmarshal(data, &imp); err != nil {
		return nil, fmt.Errorf("%w: unable to decode imputer, %v", ErrInvalidArtifact, err)
	}
	if imp.Strategy != "" && !InList(imp.Strategy, ImputerStrategies) {
		return nil, fmt.Errorf("%w: unsupported imputer strategy %s", ErrInvalidArtifact, imp.Strategy)
	}
	if len(imp.Statistics) == 0 {
		return nil, fmt.Errorf("%w: imputer has no statistics", ErrInvalidArtifact)
	}
	for j, v := range imp.Statistics {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: imputer statistic %d is not finite", ErrInvalidArtifact, j)
		}
	}
	if len(imp.FeatureNames) > 0 && len(imp.FeatureNames) != len(imp.Statistics) {
		return nil, fmt.Errorf("%w: imputer has %d feature names and %d statistics",
			ErrInvalidArtifact, len(imp.FeatureNames), len(imp.Statistics))
	}
	return &imp, nil
}

// NumFeatures returns number of columns imputer was fitted on
func (s *SimpleImputer) NumFeatures() int {
	return len(s.Statistics)
}

// Transform returns copy of X where NaN values are replaced by statistics
func (s *SimpleImputer) Transform(X [][]float64) ([][]float64, error) {
	out := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != len(s.Statistics) {
			return nil, fmt.Errorf("%w: row %d has %d features, imputer expects %d",
				ErrShapeMismatch, i, len(row), len(s.Statistics))
		}
		vals := make([]float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				v = s.Statistics[j]
			}
			vals[j] = v
		}
		out[i] = vals
	}
	return out, nil
}

// CheckColumns verifies that frame columns match names seen at fit time
func (s *SimpleImputer) CheckColumns(columns []string) error {
	if len(s.FeatureNames) == 0 {
		return nil
	}
	for j, name := range columns {
		if j >= len(s.FeatureNames) || s.FeatureNames[j] != name {
			return fmt.Errorf("%w: column %d is %s, imputer was fitted on %v",
				ErrShapeMismatch, j, name, s.FeatureNames)
		}
	}
	return nil
}

// MissingValueImputer applies fitted imputer to a numeric frame
type MissingValueImputer struct{}

// Impute applies imputer to the frame and keeps column names and order
func (MissingValueImputer) Impute(frame *Frame, imputer Imputer) (*Frame, error) {
	log.Debug().Int("columns", frame.Width()).Msg("imputing missing values")
	if imputer.NumFeatures() != frame.Width() {
		return nil, fmt.Errorf("%w: imputer expects %d columns, frame has %d",
			ErrShapeMismatch, imputer.NumFeatures(), frame.Width())
	}
	columns := frame.Columns()
	if checker, ok := imputer.(interface{ CheckColumns([]string) error }); ok {
		if err := checker.CheckColumns(columns); err != nil {
			return nil, err
		}
	}
	X, err := frame.Matrix()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	X, err = imputer.Transform(X)
	if err != nil {
		return nil, err
	}
	out, err := FrameFromMatrix(columns, X)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	if n := out.NullCount(); n > 0 {
		return nil, fmt.Errorf("%w: %d null values left after imputation", ErrInvalidArtifact, n)
	}
	return out, nil
}
