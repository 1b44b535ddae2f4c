package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSingleRecord(t *testing.T) {
	store := testStore(t)
	asm := NewDatasetAssembler(testInitCols, []string{"Pclass"}, store, ".json")

	frame, err := asm.Assemble(context.Background(), RawBatch{{8.0, 1.0, "x"}}, testInfo, []string{"Name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Age", "Pclass_1", "Pclass_2", "Pclass_3", ChildColumn}, frame.Columns())
	assert.Equal(t, map[string]any{
		"Age":       8.0,
		"Pclass_1":  1.0,
		"Pclass_2":  0.0,
		"Pclass_3":  0.0,
		ChildColumn: 1.0,
	}, frame.Row(0))
	assert.Equal(t, []string{"encoders-v1.json", "imputer-v1.json"}, store.keys)
}

func TestAssembleImputesMissingAge(t *testing.T) {
	asm := NewDatasetAssembler(testInitCols, []string{"Pclass"}, testStore(t), ".json")
	batch := RawBatch{{nil, 3.0, "a"}, {40.0, nil, "b"}}

	frame, err := asm.Assemble(context.Background(), batch, testInfo, []string{"Name"})
	require.NoError(t, err)
	X, err := frame.Matrix()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{29.5, 0, 0, 1, 0},
		{40, 0, 0, 0, 0},
	}, X)
}

func TestAssembleMissingArtifact(t *testing.T) {
	store := testStore(t)
	delete(store.objects, "imputer-v1.json")
	asm := NewDatasetAssembler(testInitCols, []string{"Pclass"}, store, ".json")

	_, err := asm.Assemble(context.Background(), RawBatch{{8.0, 1.0, "x"}}, testInfo, []string{"Name"})
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestAssembleInvalidEncoders(t *testing.T) {
	store := testStore(t)
	store.objects["encoders-v1.json"] = []byte(`{"columns": "Age"}`)
	asm := NewDatasetAssembler(testInitCols, []string{"Pclass"}, store, ".json")

	_, err := asm.Assemble(context.Background(), RawBatch{{8.0, 1.0, "x"}}, testInfo, []string{"Name"})
	assert.ErrorIs(t, err, ErrEncodingMismatch)

	store.putJSON(t, "encoders-v1.json", []string{"Age", "Age"})
	_, err = asm.Assemble(context.Background(), RawBatch{{8.0, 1.0, "x"}}, testInfo, []string{"Name"})
	assert.ErrorIs(t, err, ErrEncodingMismatch)
}

func TestAssembleImputerWidthMismatch(t *testing.T) {
	store := testStore(t)
	imp := testImputer()
	imp.Statistics = imp.Statistics[:4]
	imp.FeatureNames = imp.FeatureNames[:4]
	store.putJSON(t, "imputer-v1.json", imp)
	asm := NewDatasetAssembler(testInitCols, []string{"Pclass"}, store, ".json")

	_, err := asm.Assemble(context.Background(), RawBatch{{8.0, 1.0, "x"}}, testInfo, []string{"Name"})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAssembleMissingObjects(t *testing.T) {
	store := testStore(t)
	asm := NewDatasetAssembler(testInitCols, []string{"Pclass"}, store, ".json")
	info := testInfo
	info.Objects.Imputer = ""

	_, err := asm.Assemble(context.Background(), RawBatch{{8.0, 1.0, "x"}}, info, []string{"Name"})
	assert.ErrorIs(t, err, ErrMetadataNotFound)
	assert.Empty(t, store.keys)
}
