package main

// dataset module assembles feature matrix from request rows
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// DatasetAssembler runs inference data pipeline in fixed order:
// projection, encoding, feature derivation and imputation
type DatasetAssembler struct {
	Projector SchemaProjector
	Encoder   CategoricalEncoder
	Deriver   FeatureDeriver
	Imputer   MissingValueImputer
	Artifacts ArtifactStore // storage of encoder and imputer artifacts
	Suffix    string        // artifact key suffix
}

// NewDatasetAssembler creates assembler for given input schema
func NewDatasetAssembler(initCols, catCols []string, store ArtifactStore, suffix string) *DatasetAssembler {
	return &DatasetAssembler{
		Projector: SchemaProjector{InitCols: initCols, CategoricalCols: catCols},
		Artifacts: store,
		Suffix:    suffix,
	}
}

// Assemble converts raw batch into numeric null free feature matrix whose
// columns are encoder columns followed by derived features
func (a *DatasetAssembler) Assemble(ctx context.Context, batch RawBatch, info ModelInfo, colsToRemove []string) (*Frame, error) {
	if info.Objects.Encoders == "" {
		return nil, fmt.Errorf("%w: model %s has no encoders object", ErrMetadataNotFound, info.Name)
	}
	if info.Objects.Imputer == "" {
		return nil, fmt.Errorf("%w: model %s has no imputer object", ErrMetadataNotFound, info.Name)
	}
	log.Debug().Msg("transforming data")
	frame, err := a.Projector.Project(batch, colsToRemove)
	if err != nil {
		return nil, err
	}
	columns, err := LoadEncoderColumns(ctx, a.Artifacts, ArtifactKey(info.Objects.Encoders, a.Suffix))
	if err != nil {
		return nil, err
	}
	frame, err = a.Encoder.Encode(frame, columns)
	if err != nil {
		return nil, err
	}
	frame = a.Deriver.Derive(frame)

	log.Debug().Msg("preparing data for inference")
	imputer, err := LoadImputer(ctx, a.Artifacts, ArtifactKey(info.Objects.Imputer, a.Suffix))
	if err != nil {
		return nil, err
	}
	return a.Imputer.Impute(frame, imputer)
}
