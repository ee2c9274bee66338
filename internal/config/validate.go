package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
func (c *Config) Validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case StoreDriverDynamoDB:
	case StoreDriverPostgres, StoreDriverSQLite:
		if strings.TrimSpace(c.SQL.DSN) == "" {
			return fmt.Errorf("sql.dsn is required for store driver %q", c.Store.Driver)
		}
	default:
		return fmt.Errorf("store.driver must be one of dynamodb, postgres, sqlite (got %q)", c.Store.Driver)
	}
	if c.Store.MaxAttempts <= 0 {
		return fmt.Errorf("store.max_attempts must be > 0 (got %d)", c.Store.MaxAttempts)
	}

	c.Uploads.Driver = strings.ToLower(strings.TrimSpace(c.Uploads.Driver))
	switch c.Uploads.Driver {
	case UploadDriverLocal:
		if strings.TrimSpace(c.Uploads.Dir) == "" {
			return fmt.Errorf("uploads.dir is required for the local driver")
		}
	case UploadDriverGCS:
		if strings.TrimSpace(c.Uploads.GCSBucket) == "" {
			return fmt.Errorf("uploads.gcs_bucket is required for the gcs driver")
		}
	default:
		return fmt.Errorf("uploads.driver must be local or gcs (got %q)", c.Uploads.Driver)
	}
	if !strings.HasPrefix(c.Uploads.PublicPath, "/") {
		return fmt.Errorf("uploads.public_path must start with / (got %q)", c.Uploads.PublicPath)
	}

	if c.OTel.SampleRatio < 0 || c.OTel.SampleRatio > 1 {
		return fmt.Errorf("otel.sample_ratio must be within [0,1] (got %v)", c.OTel.SampleRatio)
	}
	return nil
}

// Origins splits the comma separated CORS origins.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
