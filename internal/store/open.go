package store

import (
	"fmt"
	"strings"

	"github.com/stellarlinkco/interview-coach/internal/config"
)

const DefaultSQLitePath = "data/interview-coach.db"

// Open builds a Store from configuration. The default type is "memory":
// session history lives only for the current process.
func Open(cfg *config.Config) (Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("store: missing config")
	}

	storageType := strings.ToLower(strings.TrimSpace(cfg.Storage.Type))
	if storageType == "" {
		storageType = "memory"
	}

	switch storageType {
	case "memory":
		return NewSQLiteStore(":memory:")
	case "sqlite":
		path := strings.TrimSpace(cfg.Storage.Path)
		if path == "" {
			path = DefaultSQLitePath
		}
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("store: unsupported type %q", storageType)
	}
}
