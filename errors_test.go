package main

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	cases := []struct {
		err      error
		code     int
		httpCode int
		kind     string
	}{
		{ErrEmptyBatch, BadRequest, http.StatusBadRequest, "empty_batch"},
		{fmt.Errorf("%w: missing Cabin", ErrSchema), SchemaError, http.StatusBadRequest, "schema"},
		{fmt.Errorf("%w: duplicate", ErrEncodingMismatch), EncodingMismatchError, http.StatusInternalServerError, "encoding"},
		{fmt.Errorf("%w: 4 != 5", ErrShapeMismatch), ShapeMismatchError, http.StatusInternalServerError, "shape"},
		{fmt.Errorf("%w: key", ErrArtifactNotFound), ArtifactNotFoundError, http.StatusInternalServerError, "artifact_not_found"},
		{fmt.Errorf("%w: bad json", ErrInvalidArtifact), ArtifactError, http.StatusInternalServerError, "artifact"},
		{fmt.Errorf("%w: no document", ErrMetadataNotFound), MetaDataRecordError, http.StatusInternalServerError, "metadata_not_found"},
		{errors.New("connection refused"), GenericError, http.StatusInternalServerError, "generic"},
	}
	for _, c := range cases {
		code, httpCode := errorCode(c.err)
		assert.Equal(t, c.code, code, c.err.Error())
		assert.Equal(t, c.httpCode, httpCode, c.err.Error())
		assert.Equal(t, c.kind, errorKind(c.err))
		assert.NotEmpty(t, errorMessage(code))
	}
}
