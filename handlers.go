package main

// handlers module holds all HTTP handlers functions
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Inferencer represents inference pipeline used by predict API
type Inferencer interface {
	Infer(ctx context.Context, batch RawBatch) ([]float64, error)
}

// HTTPResponse rpresents HTTP JSON error response
type HTTPResponse struct {
	Method         string `json:"method"`           // HTTP method
	Path           string `json:"path"`             // URL path
	UserAgent      string `json:"user_agent"`       // http user-agent field
	XForwardedHost string `json:"x_forwarded_host"` // http.Request X-Forwarded-Host
	XForwardedFor  string `json:"x_forwarded_for"`  // http.Request X-Forwarded-For
	RemoteAddr     string `json:"remote_addr"`      // http.Request remote address
	HTTPCode       int    `json:"http_code"`        // HTTP error code
	Code           int    `json:"code"`             // server status code
	Reason         string `json:"reason"`           // error code reason
	Timestamp      string `json:"timestamp"`        // timestamp of the error
	Error          string `json:"error"`            // error message
	ElapsedTime    string `json:"elapsed_time"`     // elapsed time of HTTP request
}

// helper function to write JSON response
func writeJSON(w http.ResponseWriter, httpCode int, rec any) {
	data, err := json.Marshal(rec)
	if err != nil {
		log.Error().Err(err).Msg("unable to marshal response")
		httpCode = http.StatusInternalServerError
		data = []byte(fmt.Sprintf(`{"code": %d, "error": %q}`, JsonMarshal, err.Error()))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	w.Write(data)
}

// helper function to provide standard HTTP error reply
func httpError(w http.ResponseWriter, r *http.Request, start time.Time, code int, err error, httpCode int) {
	hrec := HTTPResponse{
		Method:         r.Method,
		Path:           r.RequestURI,
		RemoteAddr:     r.RemoteAddr,
		XForwardedFor:  r.Header.Get("X-Forwarded-For"),
		XForwardedHost: r.Header.Get("X-Forwarded-Host"),
		UserAgent:      r.Header.Get("User-agent"),
		Timestamp:      time.Now().String(),
		Code:           code,
		Reason:         errorMessage(code),
		HTTPCode:       httpCode,
		Error:          err.Error(),
		ElapsedTime:    time.Since(start).String(),
	}
	log.Error().Interface("response", hrec).Msg("request failed")
	writeJSON(w, httpCode, hrec)
}

// RootHandler provides static information about our service
func RootHandler(w http.ResponseWriter, r *http.Request) {
	rec := map[string]string{
		"Project": "Titanic survival inference service",
		"Server":  info(),
	}
	writeJSON(w, http.StatusOK, rec)
}

// DocsHandler renders service documentation
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	content, err := mdToHTML("static/md/docs.md")
	if err != nil {
		httpError(w, r, start, FileIOError, err, http.StatusInternalServerError)
		return
	}
	page := fmt.Sprintf("<html><head><title>mlserve docs</title></head><body>%s</body></html>", content)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// PredictHandler returns handler which runs inference over request records,
// request body is JSON array of records each following init columns
func PredictHandler(inf Inferencer, maxBodySize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		batch, err := decodeBatch(w, r, maxBodySize)
		if err != nil {
			httpError(w, r, start, BadRequest, err, http.StatusBadRequest)
			return
		}
		preds, err := inf.Infer(r.Context(), batch)
		if err != nil {
			code, httpCode := errorCode(err)
			httpError(w, r, start, code, err, httpCode)
			return
		}
		writeJSON(w, http.StatusOK, PredictResponse{Predictions: preds})
	}
}

// helper function to decode batch of records from HTTP request body
func decodeBatch(w http.ResponseWriter, r *http.Request, maxBodySize int64) (RawBatch, error) {
	if maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	}
	if r.Header.Get("Content-Encoding") == "gzip" {
		reader, err := gzip.NewReader(r.Body)
		if err != nil {
			return nil, fmt.Errorf("unable to read gzip body: %w", err)
		}
		r.Body = GzipReader{reader, r.Body}
	}
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	var batch RawBatch
	if err := decoder.Decode(&batch); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return nil, fmt.Errorf("unable to decode records, expect JSON array of arrays: %w", err)
	}
	if decoder.More() {
		return nil, errors.New("unexpected data after JSON array of records")
	}
	return batch, nil
}
