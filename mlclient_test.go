package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "artifacts")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "titanic"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "titanic", "encoders.json"), []byte(`["Age"]`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.json"), []byte(`{}`), 0644))

	store, err := NewFileStore(dir)
	require.NoError(t, err)

	data, err := store.Get(context.Background(), "titanic/encoders.json")
	require.NoError(t, err)
	assert.Equal(t, `["Age"]`, string(data))

	columns, err := LoadEncoderColumns(context.Background(), store, ArtifactKey("titanic/encoders", ".json"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Age"}, columns)

	_, err = store.Get(context.Background(), "titanic/imputer.json")
	assert.ErrorIs(t, err, ErrArtifactNotFound)

	// keys are resolved inside store directory
	_, err = store.Get(context.Background(), "../secret.json")
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestNewFileStoreErrors(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)

	_, err = NewFileStore(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	fname := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(fname, nil, 0644))
	_, err = NewFileStore(fname)
	assert.Error(t, err)
}

func TestNewArtifactStore(t *testing.T) {
	dir := t.TempDir()
	for _, uri := range []string{dir, "file://" + dir} {
		store, err := NewArtifactStore(context.Background(), uri, StoreOptions{})
		require.NoError(t, err, uri)
		fs, ok := store.(*FileStore)
		require.True(t, ok)
		assert.Equal(t, dir, fs.Dir)
	}

	_, err := NewArtifactStore(context.Background(), "ftp://host/models", StoreOptions{})
	assert.Error(t, err)
}

func TestNewS3Store(t *testing.T) {
	opts := StoreOptions{
		S3Endpoint:  "http://localhost:9000",
		S3AccessKey: "access",
		S3SecretKey: "secret",
	}
	store, err := NewArtifactStore(context.Background(), "s3://models/titanic/", opts)
	require.NoError(t, err)
	s3store, ok := store.(*S3Store)
	require.True(t, ok)
	assert.Equal(t, "models", s3store.bucket)
	assert.Equal(t, "titanic", s3store.prefix)
}
