package main

// logging module provides various logging methods
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// helper function to map verbosity level into log level
func logLevel(verbose int) zerolog.Level {
	switch {
	case verbose <= 0:
		return zerolog.InfoLevel
	case verbose == 1:
		return zerolog.DebugLevel
	}
	return zerolog.TraceLevel
}

// initLogger configures global logger, if log file is set we use rotate
// logs with daily files, otherwise console output
func initLogger(logFile string, verbose int) error {
	var writer io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if logFile != "" {
		rl, err := rotatelogs.New(LogName(logFile))
		if err != nil {
			return err
		}
		writer = rl
	}
	logger := zerolog.New(writer).With().Timestamp().Logger()
	if verbose > 0 {
		logger = logger.With().Caller().Logger()
	}
	log.Logger = logger.Level(logLevel(verbose))
	return nil
}

// helper function to log every single user request
func logRequest(r *http.Request, start time.Time, status int) {
	if status == 0 { // the status code was not set, i.e. everything is fine
		status = http.StatusOK
	}
	referer := r.Referer()
	if referer == "" {
		referer = "-"
	}
	uri, err := url.QueryUnescape(r.RequestURI)
	if err != nil {
		log.Warn().Err(err).Msg("unable to unescape request uri")
		uri = r.RequestURI
	}
	log.Info().
		Str("proto", r.Proto).
		Int("status", status).
		Str("remote_addr", r.RemoteAddr).
		Str("method", r.Method).
		Str("uri", uri).
		Int64("bytes_in", r.ContentLength).
		Str("referer", referer).
		Str("user_agent", r.Header.Get("User-Agent")).
		Str("x_forwarded_for", r.Header.Get("X-Forwarded-For")).
		Dur("request_time", time.Since(start)).
		Msg("request")
}
