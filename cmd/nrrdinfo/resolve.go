package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/robert-malhotra/go-nrrd/source"
	miniosrc "github.com/robert-malhotra/go-nrrd/source/minio"
	s3src "github.com/robert-malhotra/go-nrrd/source/s3"
)

// Environment variables read when a minio:// input is given.
const (
	envMinioEndpoint  = "NRRD_MINIO_ENDPOINT"
	envMinioAccessKey = "NRRD_MINIO_ACCESS_KEY"
	envMinioSecretKey = "NRRD_MINIO_SECRET_KEY"
	envMinioSecure    = "NRRD_MINIO_SECURE"
)

// target is one command-line input split into a scheme, bucket and key.
type target struct {
	scheme string // "", "s3" or "minio"
	bucket string
	key    string
}

func parseTarget(arg string) (target, error) {
	scheme, rest, ok := strings.Cut(arg, "://")
	if !ok {
		return target{key: arg}, nil
	}
	switch scheme {
	case "s3", "minio":
	default:
		return target{}, fmt.Errorf("unsupported scheme %q in %q", scheme, arg)
	}
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return target{}, fmt.Errorf("%q: expected %s://bucket/key", arg, scheme)
	}
	return target{scheme: scheme, bucket: bucket, key: key}, nil
}

// resolver builds sources lazily so that object-store clients are only
// configured when an input needs them.
type resolver struct {
	getenv func(string) string
	s3     s3src.Client
	minio  *minio.Client
}

func newResolver() *resolver {
	return &resolver{getenv: os.Getenv}
}

func (r *resolver) source(ctx context.Context, t target) (source.Source, error) {
	switch t.scheme {
	case "s3":
		if r.s3 == nil {
			cfg, err := config.LoadDefaultConfig(ctx)
			if err != nil {
				return nil, fmt.Errorf("loading AWS config: %w", err)
			}
			r.s3 = s3.NewFromConfig(cfg)
		}
		return s3src.NewStore(r.s3, t.bucket, ""), nil
	case "minio":
		if r.minio == nil {
			client, err := r.newMinioClient()
			if err != nil {
				return nil, err
			}
			r.minio = client
		}
		return miniosrc.NewStore(r.minio, t.bucket, ""), nil
	default:
		return source.NewLocal(""), nil
	}
}

func (r *resolver) newMinioClient() (*minio.Client, error) {
	endpoint := r.getenv(envMinioEndpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("%s is not set", envMinioEndpoint)
	}
	secure := false
	if v := r.getenv(envMinioSecure); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envMinioSecure, err)
		}
		secure = b
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(r.getenv(envMinioAccessKey), r.getenv(envMinioSecretKey), ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("creating MinIO client: %w", err)
	}
	return client, nil
}
