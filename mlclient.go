package main

// client functions for ML artifact storage backends
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// ArtifactStore represents object storage which returns artifacts by key
type ArtifactStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// StoreOptions holds credentials used by remote artifact stores
type StoreOptions struct {
	S3Endpoint     string // custom S3 endpoint, e.g. IBM COS or MinIO
	S3Region       string // S3 region
	S3AccessKey    string // S3 HMAC access key
	S3SecretKey    string // S3 HMAC secret key
	GCSCredentials string // GCS credentials file
}

// NewArtifactStore creates artifact store for given URI, supported schemes
// are file://, s3://bucket/prefix and gs://bucket/prefix
func NewArtifactStore(ctx context.Context, uri string, opts StoreOptions) (ArtifactStore, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("unable to parse artifact store uri %s: %w", uri, err)
	}
	prefix := strings.Trim(u.Path, "/")
	switch u.Scheme {
	case "", "file":
		dir := u.Host + u.Path
		if u.Scheme == "" {
			dir = uri
		}
		return NewFileStore(dir)
	case "s3":
		return NewS3Store(ctx, u.Host, prefix, opts)
	case "gs":
		return NewGCSStore(ctx, u.Host, prefix, opts)
	}
	return nil, fmt.Errorf("unsupported artifact store scheme '%s'", u.Scheme)
}

// FileStore keeps artifacts in local directory
type FileStore struct {
	Dir string
}

// NewFileStore creates file store for given directory
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("empty artifact directory")
	}
	finfo, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !finfo.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return &FileStore{Dir: dir}, nil
}

// Get reads artifact file for given key
func (f *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	// keys can not escape store directory
	fname := filepath.Join(f.Dir, filepath.Clean("/"+key))
	data, err := os.ReadFile(fname)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, key)
		}
		return nil, err
	}
	return data, nil
}

// S3Store keeps artifacts in S3 compatible bucket
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates S3 artifact store, static credentials are used when
// provided, otherwise default AWS credential chain
func NewS3Store(ctx context.Context, bucket, prefix string, opts StoreOptions) (*S3Store, error) {
	if bucket == "" {
		return nil, errors.New("bucket name cannot be empty")
	}
	region := opts.S3Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if opts.S3AccessKey != "" && opts.S3SecretKey != "" {
		provider := credentials.NewStaticCredentialsProvider(opts.S3AccessKey, opts.S3SecretKey, "")
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(provider))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	log.Info().Str("bucket", bucket).Str("prefix", prefix).Str("endpoint", opts.S3Endpoint).Msg("S3 artifact store")
	return &S3Store{client: client, bucket: bucket, prefix: prefix}, nil
}

// Get downloads artifact object for given key
func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	objKey := path.Join(s.prefix, key)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("%w: s3://%s/%s", ErrArtifactNotFound, s.bucket, objKey)
		}
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", s.bucket, objKey, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

// GCSStore keeps artifacts in Google Cloud Storage bucket
type GCSStore struct {
	client *storage.Client
	bucket string
	prefix string
}

// NewGCSStore creates GCS artifact store, credentials file is optional and
// application default credentials are used without it
func NewGCSStore(ctx context.Context, bucket, prefix string, opts StoreOptions) (*GCSStore, error) {
	if bucket == "" {
		return nil, errors.New("bucket name cannot be empty")
	}
	var clientOpts []option.ClientOption
	if opts.GCSCredentials != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.GCSCredentials))
	}
	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	log.Info().Str("bucket", bucket).Str("prefix", prefix).Msg("GCS artifact store")
	return &GCSStore{client: client, bucket: bucket, prefix: prefix}, nil
}

// Get downloads artifact object for given key
func (g *GCSStore) Get(ctx context.Context, key string) ([]byte, error) {
	objKey := path.Join(g.prefix, key)
	reader, err := g.client.Bucket(g.bucket).Object(objKey).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%w: gs://%s/%s", ErrArtifactNotFound, g.bucket, objKey)
		}
		return nil, fmt.Errorf("failed to read gs://%s/%s: %w", g.bucket, objKey, err)
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

// Close closes GCS client
func (g *GCSStore) Close() error {
	return g.client.Close()
}
