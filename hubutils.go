package main

// helper functions to load ML model artifacts
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ArtifactKey returns storage key for given artifact identifier
func ArtifactKey(id, suffix string) string {
	return id + suffix
}

// LoadEncoderColumns fetches encoder column list used at training time
func LoadEncoderColumns(ctx context.Context, store ArtifactStore, key string) ([]string, error) {
	log.Debug().Str("key", key).Msg("getting encoded columns from storage")
	data, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var columns []string
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("%w: unable to decode encoder columns %s, %v", ErrEncodingMismatch, key, err)
	}
	if err := validateColumns(columns); err != nil {
		return nil, err
	}
	return columns, nil
}

// LoadImputer fetches fitted imputer
func LoadImputer(ctx context.Context, store ArtifactStore, key string) (Imputer, error) {
	log.Debug().Str("key", key).Msg("getting imputer from storage")
	data, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return DecodeSimpleImputer(data)
}

// LoadModel fetches trained model
func LoadModel(ctx context.Context, store ArtifactStore, key string) (Model, error) {
	log.Debug().Str("key", key).Msg("loading the model object from storage")
	data, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return DecodeModel(data)
}
