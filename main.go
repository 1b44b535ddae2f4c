package main

// mlserve - Go implementation of inference server for tabular ML models
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
)

// version of the code
var version string

// helper function to return version string of the server
func info() string {
	goVersion := runtime.Version()
	tstamp := time.Now().Format("2006-01-02")
	return fmt.Sprintf("mlserve git=%s go=%s date=%s", version, goVersion, tstamp)
}

func main() {
	var config string
	flag.StringVar(&config, "config", "", "configuration file")
	var version bool
	flag.BoolVar(&version, "version", false, "print version information about the server")
	flag.Parse()
	if version {
		fmt.Println(info())
		os.Exit(0)
	}
	err := parseConfig(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to parse config %s, error %v\n", config, err)
		os.Exit(1)
	}

	// configure logger
	if err := initLogger(Config.LogFile, Config.Verbose); err != nil {
		fmt.Fprintf(os.Stderr, "unable to initialize logger, error %v\n", err)
		os.Exit(1)
	}
	cfg := Config
	if cfg.S3SecretKey != "" {
		cfg.S3SecretKey = "****"
	}
	log.Debug().Interface("config", cfg).Msg("configuration")

	// start inference server
	if err := Server(); err != nil {
		log.Fatal().Err(err).Msg("server failure")
	}
}
