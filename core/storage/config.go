package storage

import (
	"strings"
	"time"
)

// Config holds the object store settings used for the report archive.
type Config struct {
	// Endpoint is host:port of the S3 compatible service. An http:// or https:// scheme is accepted.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL forces TLS. An https:// endpoint implies it.
	UseSSL bool   `mapstructure:"use_ssl" default:"false"`
	Bucket string `mapstructure:"bucket" default:"device-sync"`
	// Region is used when the bucket is created by the integrity fix.
	Region         string `mapstructure:"region" default:""`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
}

// host returns the endpoint without its scheme.
func (c Config) host() string {
	if rest, ok := strings.CutPrefix(c.Endpoint, "https://"); ok {
		return rest
	}
	return strings.TrimPrefix(c.Endpoint, "http://")
}

// secure reports whether connections use TLS.
func (c Config) secure() bool {
	return c.UseSSL || strings.HasPrefix(c.Endpoint, "https://")
}

// timeout returns the dial and header timeout, 30s when unset.
func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
