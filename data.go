package main

// data module holds all data representations used in our package
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

// RawRecord represents single request row ordered according to init columns
type RawRecord []any

// RawBatch represents list of request rows
type RawBatch []RawRecord

// DefaultInitCols defines default input schema of request rows
var DefaultInitCols = []string{
	"PassengerId", "Pclass", "Name", "Sex", "Age", "SibSp",
	"Parch", "Ticket", "Fare", "Cabin", "Embarked",
}

// DefaultCategoricalCols defines columns we cast to categorical before encoding
var DefaultCategoricalCols = []string{"Pclass"}

// ModelObjects holds identifiers of model transformer artifacts
type ModelObjects struct {
	Encoders string `json:"encoders" bson:"encoders"` // encoder column list identifier
	Imputer  string `json:"imputer" bson:"imputer"`   // fitted imputer identifier
}

// ModelInfo represents meta-data record of the ML model
type ModelInfo struct {
	ID      string       `json:"_id,omitempty" bson:"_id,omitempty"` // document id
	Name    string       `json:"name" bson:"name"`                   // model name, used as artifact key
	Status  string       `json:"status" bson:"status"`               // model status, e.g. in_production
	Objects ModelObjects `json:"objects" bson:"objects"`             // model artifacts
}

// ModelConfig represents pipeline configuration
type ModelConfig struct {
	ColsToRemove    []string `json:"cols_to_remove" bson:"cols_to_remove"`     // columns to drop
	CategoricalCols []string `json:"categorical_cols" bson:"categorical_cols"` // columns to treat as categories
}

// ModelConfigRecord represents meta-data document holding model configuration
type ModelConfigRecord struct {
	ID          string      `json:"_id" bson:"_id"`
	ModelConfig ModelConfig `json:"model_config" bson:"model_config"`
}

// PredictResponse represents response of predict API
type PredictResponse struct {
	Predictions []float64 `json:"Predicted value"`
}

const (
	// ModelConfigID is document id of model configuration record
	ModelConfigID = "model_config"
	// InProduction represents status of the model which serves inference
	InProduction = "in_production"
)
