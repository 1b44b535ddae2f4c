package main

// config module
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Configuration stores server configuration parameters
type Configuration struct {
	// web server parts
	Base        string `json:"base"`          // base URL
	LogFile     string `json:"log_file"`      // server log file
	Port        int    `json:"port"`          // server port number
	Verbose     int    `json:"verbose"`       // verbose output
	MaxBodySize int64  `json:"max_body_size"` // max size of predict request body

	// server parts
	RootCAs       string   `json:"rootCAs"`      // server Root CAs path
	ServerCrt     string   `json:"server_cert"`  // server certificate
	ServerKey     string   `json:"server_key"`   // server certificate
	DomainNames   []string `json:"domain_names"` // LetsEncrypt domain names
	LimiterPeriod string   `json:"rate"`         // limiter rate value

	// MetaData parts
	DBURI  string `json:"db_uri"`  // meta-data server URI
	DBName string `json:"db_name"` // meta-data database name
	DBColl string `json:"db_coll"` // meta-data database collection

	// storage parts
	ArtifactURI    string `json:"artifact_uri"`    // encoders and imputers storage, e.g. s3://bucket
	ModelURI       string `json:"model_uri"`       // models storage, default artifact_uri
	ArtifactSuffix string `json:"artifact_suffix"` // artifact key suffix
	S3Endpoint     string `json:"s3_endpoint"`     // S3 endpoint, e.g. IBM COS endpoint
	S3Region       string `json:"s3_region"`       // S3 region
	S3AccessKey    string `json:"s3_access_key"`   // S3 HMAC access key
	S3SecretKey    string `json:"s3_secret_key"`   // S3 HMAC secret key
	GCSCredentials string `json:"gcs_credentials"` // GCS credentials file

	// pipeline parts
	InitCols []string `json:"init_cols"` // input columns of request records

	// metrics parts
	StatsdAddr    string `json:"statsd_addr"`    // statsd agent address
	MetricsPrefix string `json:"metrics_prefix"` // metrics namespace
}

// Config variable represents configuration object
var Config Configuration

// StoreOptions returns artifact store options from configuration
func (c *Configuration) StoreOptions() StoreOptions {
	return StoreOptions{
		S3Endpoint:     c.S3Endpoint,
		S3Region:       c.S3Region,
		S3AccessKey:    c.S3AccessKey,
		S3SecretKey:    c.S3SecretKey,
		GCSCredentials: c.GCSCredentials,
	}
}

// helper function to set default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("rate", "100-S")
	v.SetDefault("max_body_size", 10<<20)
	v.SetDefault("db_uri", "mongodb://localhost:27017")
	v.SetDefault("db_name", "models-db")
	v.SetDefault("db_coll", "models")
	v.SetDefault("artifact_uri", "file:///tmp/artifacts")
	v.SetDefault("artifact_suffix", ".json")
	v.SetDefault("s3_region", "us-east-1")
	v.SetDefault("init_cols", DefaultInitCols)
	v.SetDefault("metrics_prefix", "mlserve.")
}

// helper function to bind every configuration key to MLSERVE_<KEY> env,
// viper unmarshals only keys it already knows about
func bindEnvs(v *viper.Viper) error {
	rtype := reflect.TypeOf(Configuration{})
	for i := 0; i < rtype.NumField(); i++ {
		key := strings.Split(rtype.Field(i).Tag.Get("json"), ",")[0]
		if key == "" || key == "-" {
			continue
		}
		envs := []string{key}
		if key == "port" {
			envs = append(envs, "MLSERVE_PORT", "PORT")
		}
		if err := v.BindEnv(envs...); err != nil {
			return err
		}
	}
	return nil
}

// helper function to parse server configuration file, environment
// variables MLSERVE_<KEY> and PORT override file values
func parseConfig(configFile string) error {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("mlserve")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnvs(v); err != nil {
		return err
	}
	if configFile != "" {
		v.SetConfigFile(filepath.Clean(configFile))
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read %s: %w", configFile, err)
		}
	}
	var cfg Configuration
	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
	if err != nil {
		return fmt.Errorf("unable to parse %s: %w", configFile, err)
	}
	if cfg.ModelURI == "" {
		cfg.ModelURI = cfg.ArtifactURI
	}
	Config = cfg
	return nil
}
