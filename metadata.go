package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/mgo.v2/bson"
)

// MetaData represents meta-data database object
type MetaData struct {
	Mongo  *MongoConnection
	DBName string
	DBColl string
}

// NewMetaData creates meta-data service for given MongoDB URI
func NewMetaData(uri, dbname, dbcoll string) *MetaData {
	return &MetaData{
		Mongo:  &MongoConnection{URI: uri},
		DBName: dbname,
		DBColl: dbcoll,
	}
}

// Query returns first document matching given spec into out
func (m *MetaData) Query(spec bson.M, out any) error {
	var records []bson.Raw
	if err := m.Mongo.MongoGet(m.DBName, m.DBColl, spec, 0, 1, &records); err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: no document in %s.%s matches %v", ErrMetadataNotFound, m.DBName, m.DBColl, spec)
	}
	if err := records[0].Unmarshal(out); err != nil {
		return fmt.Errorf("unable to decode document matching %v: %w", spec, err)
	}
	return nil
}

// ModelConfig returns model pipeline configuration
func (m *MetaData) ModelConfig(ctx context.Context) (ModelConfig, error) {
	var rec ModelConfigRecord
	err := m.Query(bson.M{"_id": ModelConfigID}, &rec)
	if err != nil {
		return ModelConfig{}, err
	}
	log.Debug().Interface("config", rec.ModelConfig).Msg("model config")
	return rec.ModelConfig, nil
}

// ProductionModel returns meta-data of the model which serves inference
func (m *MetaData) ProductionModel(ctx context.Context) (ModelInfo, error) {
	var rec ModelInfo
	err := m.Query(bson.M{"status": InProduction}, &rec)
	return rec, err
}

// Upsert inserts or updates meta-data document with given id, used to seed
// meta-data records in tests
func (m *MetaData) Upsert(id string, rec any) error {
	return m.Mongo.MongoUpsert(m.DBName, m.DBColl, bson.M{"_id": id}, rec)
}

// Remove removes documents matching given spec, used to clean up test records
func (m *MetaData) Remove(spec bson.M) error {
	return m.Mongo.MongoRemove(m.DBName, m.DBColl, spec)
}
