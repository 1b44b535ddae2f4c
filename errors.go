package main

// errors module
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrSchema is returned when expected or configured column is missing
	ErrSchema = errors.New("schema error")
	// ErrEncodingMismatch is returned when encoder column list is unusable
	ErrEncodingMismatch = errors.New("encoding mismatch")
	// ErrShapeMismatch is returned when fitted artifact disagrees with frame shape
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrArtifactNotFound is returned when artifact store has no such key
	ErrArtifactNotFound = errors.New("artifact not found")
	// ErrInvalidArtifact is returned when artifact can not be decoded
	ErrInvalidArtifact = errors.New("invalid artifact")
	// ErrMetadataNotFound is returned when metadata query matches no document
	ErrMetadataNotFound = errors.New("metadata not found")
	// ErrEmptyBatch is returned for requests without records
	ErrEmptyBatch = errors.New("empty batch")
)

const (
	GenericError          = iota + 100 // generic error
	DatabaseError                      // 101 database error
	BadRequest                         // 102 bad request
	JsonMarshal                        // 103 json.Marshal error
	MetaDataRecordError                // 104 Meta data record error
	MetaDataError                      // 105 generic Meta data error
	FileIOError                        // 106 file IO error
	SchemaError                        // 107 schema error
	EncodingMismatchError              // 108 encoding mismatch
	ShapeMismatchError                 // 109 shape mismatch
	ArtifactNotFoundError              // 110 artifact not found
	ArtifactError                      // 111 invalid artifact
)

// helper function to return human error message for given error code
func errorMessage(code int) string {
	switch code {
	case 0:
		return ""
	case GenericError:
		return "generic error"
	case DatabaseError:
		return "database error"
	case BadRequest:
		return "bad request"
	case JsonMarshal:
		return "JSON marshal error"
	case MetaDataRecordError:
		return "MetaData record error"
	case MetaDataError:
		return "MetaData error"
	case FileIOError:
		return "file IO error"
	case SchemaError:
		return "schema error"
	case EncodingMismatchError:
		return "encoding mismatch error"
	case ShapeMismatchError:
		return "shape mismatch error"
	case ArtifactNotFoundError:
		return "artifact not found error"
	case ArtifactError:
		return "artifact error"
	}
	return fmt.Sprintf("Not Implemented error for code %d", code)
}

// helper function to map pipeline error into server code and HTTP status
func errorCode(err error) (int, int) {
	switch {
	case errors.Is(err, ErrEmptyBatch):
		return BadRequest, http.StatusBadRequest
	case errors.Is(err, ErrSchema):
		return SchemaError, http.StatusBadRequest
	case errors.Is(err, ErrEncodingMismatch):
		return EncodingMismatchError, http.StatusInternalServerError
	case errors.Is(err, ErrShapeMismatch):
		return ShapeMismatchError, http.StatusInternalServerError
	case errors.Is(err, ErrArtifactNotFound):
		return ArtifactNotFoundError, http.StatusInternalServerError
	case errors.Is(err, ErrInvalidArtifact):
		return ArtifactError, http.StatusInternalServerError
	case errors.Is(err, ErrMetadataNotFound):
		return MetaDataRecordError, http.StatusInternalServerError
	}
	return GenericError, http.StatusInternalServerError
}

// helper function to get short error kind used in metrics tags
func errorKind(err error) string {
	code, _ := errorCode(err)
	switch code {
	case BadRequest:
		return "empty_batch"
	case SchemaError:
		return "schema"
	case EncodingMismatchError:
		return "encoding"
	case ShapeMismatchError:
		return "shape"
	case ArtifactNotFoundError:
		return "artifact_not_found"
	case ArtifactError:
		return "artifact"
	case MetaDataRecordError:
		return "metadata_not_found"
	}
	return "generic"
}
