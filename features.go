package main

// features module creates domain knowledge features
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import "github.com/rs/zerolog/log"

const (
	// ChildColumn is name of derived column flagging children
	ChildColumn = "Child"
	// ChildAge is age below which passenger is considered a child
	ChildAge = 16
)

// FeatureDeriver adds domain knowledge features to the frame
type FeatureDeriver struct{}

// Derive returns copy of the frame with derived features appended
func (FeatureDeriver) Derive(frame *Frame) *Frame {
	log.Debug().Msg("feature engineering")
	out := frame.Clone()
	out.Add(childFeature(frame))
	return out
}

// helper function to build Child column, null or absent age is not a child
func childFeature(frame *Frame) *Series {
	child := NewZeros(ChildColumn, frame.Len())
	age, ok := frame.Column("Age")
	if !ok || age.Kind != Numeric {
		return child
	}
	for i, v := range age.Floats {
		// NaN comparison is always false
		if v < ChildAge {
			child.Floats[i] = 1
		}
	}
	return child
}
