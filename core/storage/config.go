package storage

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DriverSupabase talks to the Supabase Storage REST API.
	DriverSupabase = "supabase"
	// DriverS3 talks to any S3-compatible endpoint through minio-go.
	DriverS3 = "s3"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Driver selects the backend implementation (supabase, s3).
	Driver string `mapstructure:"driver" default:"supabase"`
	// URL is the base URL of the storage service (e.g. https://xyz.supabase.co).
	// For the s3 driver it is the endpoint host, with or without a scheme.
	URL string `mapstructure:"url" default:""`
	// Bucket is the name of the bucket holding the images.
	Bucket string `mapstructure:"bucket" default:"images"`
	// APIKey is the anonymous key sent as bearer token and apikey header.
	APIKey string `mapstructure:"api_key" default:""`
	// AccessKey is the access key ID for the s3 driver.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for the s3 driver.
	SecretKey string `mapstructure:"secret_key" default:""`
	// Region is the location of the bucket for the s3 driver.
	Region string `mapstructure:"region" default:""`
	// UseSSL indicates whether the s3 driver connects over TLS.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// TimeoutSeconds bounds the connect, read and write phases of each request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Timeout returns the per-phase timeout, falling back to DefaultTimeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks that the fields required by the selected driver are set.
func (c Config) Validate() error {
	var errs []error
	switch c.Driver {
	case DriverSupabase:
		if c.APIKey == "" {
			errs = append(errs, errors.New("storage.api_key is required"))
		}
	case DriverS3:
		if c.AccessKey == "" || c.SecretKey == "" {
			errs = append(errs, errors.New("storage.access_key and storage.secret_key are required"))
		}
	default:
		return fmt.Errorf("unknown storage driver %q (want %s or %s)", c.Driver, DriverSupabase, DriverS3)
	}
	if c.URL == "" {
		errs = append(errs, errors.New("storage.url is required"))
	}
	if c.Bucket == "" {
		errs = append(errs, errors.New("storage.bucket is required"))
	}
	return errors.Join(errs...)
}
