package acl

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/guardkit/guardkit/pkg/kv"
)

// Storage modes selectable via Config.Storage.
const (
	// StorageSession keeps state in process memory; it is lost when the
	// process ends.
	StorageSession = "session"

	// StoragePersistent keeps state on the local filesystem; it survives
	// restarts.
	StoragePersistent = "persistent"

	// StorageDisabled turns persistence off entirely; Resume always
	// reports no prior state.
	StorageDisabled = "disabled"
)

// Config holds ACL service configuration.
type Config struct {
	// Storage selects the persistence mode: session, persistent or disabled.
	Storage string `env:"ACL_STORAGE" envDefault:"session"`

	// StorageKey is the slot the state record is written under.
	StorageKey string `env:"ACL_STORAGE_KEY" envDefault:"acl"`

	// StorageDir is the base directory used by the persistent mode.
	StorageDir string `env:"ACL_STORAGE_DIR" envDefault:".acl"`
}

// DefaultConfig returns the default ACL configuration.
func DefaultConfig() Config {
	return Config{
		Storage:    StorageSession,
		StorageKey: DefaultStorageKey,
		StorageDir: ".acl",
	}
}

// LoadConfig populates Config from environment variables, reading a
// .env file first when one is present.
func LoadConfig() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	return cfg, nil
}

// NewFromConfig creates a Service with the medium selected by
// cfg.Storage. Options are applied after the config-derived ones, so a
// WithStore option still wins over the configured mode.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	var medium kv.Store
	switch cfg.Storage {
	case StorageSession, "":
		medium = kv.NewMemoryStore()
	case StoragePersistent:
		fileStore, err := kv.NewFileStore(cfg.StorageDir)
		if err != nil {
			return nil, err
		}
		medium = fileStore
	case StorageDisabled:
		medium = kv.NoopStore{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStorage, cfg.Storage)
	}

	configOpts := []Option{
		WithStore(medium),
		WithStorageKey(cfg.StorageKey),
	}
	configOpts = append(configOpts, opts...)

	return New(configOpts...), nil
}
