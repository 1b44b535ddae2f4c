package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper function to build numeric frame from columns and rows
func numericFrame(t *testing.T, columns []string, rows [][]float64) *Frame {
	frame, err := FrameFromMatrix(columns, rows)
	require.NoError(t, err)
	return frame
}

func TestImputeFillsNulls(t *testing.T) {
	nan := math.NaN()
	columns := []string{"Age", "Fare", "Child"}
	frame := numericFrame(t, columns, [][]float64{
		{nan, 7.25, 0},
		{38, nan, 0},
		{4, 16.7, 1},
	})
	imp := &SimpleImputer{Strategy: "median", Statistics: []float64{28, 14.45, 0}, FeatureNames: columns}

	out, err := MissingValueImputer{}.Impute(frame, imp)
	require.NoError(t, err)
	assert.Equal(t, columns, out.Columns())
	assert.Equal(t, 0, out.NullCount())

	X, err := out.Matrix()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{28, 7.25, 0}, {38, 14.45, 0}, {4, 16.7, 1}}, X)

	// input frame keeps its nulls
	assert.Equal(t, 2, frame.NullCount())
}

func TestImputeShapeMismatch(t *testing.T) {
	columns := []string{"a", "b", "c"}
	frame := numericFrame(t, columns, [][]float64{{1, 2, 3}})
	for _, n := range []int{2, 4} {
		imp := &SimpleImputer{Strategy: "mean", Statistics: make([]float64, n)}
		_, err := MissingValueImputer{}.Impute(frame, imp)
		assert.ErrorIs(t, err, ErrShapeMismatch, "statistics %d", n)
	}
}

func TestImputeFeatureNamesMismatch(t *testing.T) {
	frame := numericFrame(t, []string{"a", "b"}, [][]float64{{1, 2}})
	imp := &SimpleImputer{Strategy: "mean", Statistics: []float64{0, 0}, FeatureNames: []string{"b", "a"}}
	_, err := MissingValueImputer{}.Impute(frame, imp)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestImputeCategoricalColumn(t *testing.T) {
	frame := NewFrame(1)
	frame.Add(NewNumeric("a", []float64{1}).AsCategorical())
	imp := &SimpleImputer{Statistics: []float64{0}}
	_, err := MissingValueImputer{}.Impute(frame, imp)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDecodeSimpleImputer(t *testing.T) {
	imp, err := DecodeSimpleImputer([]byte(`{"strategy":"mean","statistics":[1.5,2],"feature_names":["a","b"]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, imp.NumFeatures())
	assert.Equal(t, []string{"a", "b"}, imp.FeatureNames)

	invalid := []string{
		`not json`,
		`{"strategy":"mean","statistics":[]}`,
		`{"strategy":"unknown","statistics":[1]}`,
		`{"strategy":"mean","statistics":[1,2],"feature_names":["a"]}`,
	}
	for _, data := range invalid {
		_, err := DecodeSimpleImputer([]byte(data))
		assert.ErrorIs(t, err, ErrInvalidArtifact, data)
	}
}
