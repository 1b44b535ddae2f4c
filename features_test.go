package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveChild(t *testing.T) {
	frame := NewFrame(4)
	frame.Add(NewNumeric("Age", []float64{10, 30, math.NaN(), 16}))
	frame.Add(NewNumeric("Fare", []float64{1, 2, 3, 4}))

	out := FeatureDeriver{}.Derive(frame)
	assert.Equal(t, []string{"Age", "Fare", ChildColumn}, out.Columns())
	child, ok := out.Column(ChildColumn)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 0, 0, 0}, child.Floats)

	// input frame is not modified
	assert.Equal(t, []string{"Age", "Fare"}, frame.Columns())
}

func TestDeriveChildWithoutAge(t *testing.T) {
	frame := NewFrame(2)
	frame.Add(NewNumeric("Fare", []float64{1, 2}))

	out := FeatureDeriver{}.Derive(frame)
	child, ok := out.Column(ChildColumn)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 0}, child.Floats)
}

func TestDeriveChildOverwritesExisting(t *testing.T) {
	frame := NewFrame(1)
	frame.Add(NewNumeric(ChildColumn, []float64{0}))
	frame.Add(NewNumeric("Age", []float64{4}))

	out := FeatureDeriver{}.Derive(frame)
	assert.Equal(t, []string{ChildColumn, "Age"}, out.Columns())
	child, _ := out.Column(ChildColumn)
	assert.Equal(t, []float64{1}, child.Floats)
}
