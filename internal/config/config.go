// Package config handles loading of pipeline configuration from
// environment variables (populated by the .env file in main.go).
package config

import (
	"os"
	"strings"

	"github.com/acme-corp/churn-ingest/pkg/errs"
)

// Config holds all settings for one pipeline run. Built once at startup and
// passed by reference into the components; nothing reads the environment
// after Load returns.
type Config struct {
	MongoURI   string
	DataSource string
	Database   string
	Collection string
	// CAFile is the trusted certificate bundle for the store connection.
	// Empty means the system roots.
	CAFile string
}

// Load reads the required environment variables. Every missing variable is
// reported in a single error, not just the first.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:   os.Getenv("MONGODB_URL"),
		DataSource: os.Getenv("DATA_SOURCE"),
		Database:   os.Getenv("MONGODB_DATABASE"),
		Collection: os.Getenv("MONGODB_COLLECTION"),
		CAFile:     os.Getenv("MONGODB_CA_FILE"),
	}

	required := []struct {
		name  string
		value string
	}{
		{"MONGODB_URL", cfg.MongoURI},
		{"DATA_SOURCE", cfg.DataSource},
		{"MONGODB_DATABASE", cfg.Database},
		{"MONGODB_COLLECTION", cfg.Collection},
	}

	var missing []string
	for _, v := range required {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return nil, errs.Newf(errs.KindConfig,
			"missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
