package acl

import (
	"log/slog"

	"github.com/guardkit/guardkit/pkg/kv"
)

// Option is a functional option for configuring the Service.
type Option func(*Service)

// WithStore sets the storage medium used for persistence. Any kv.Store
// works here, including kv.NewRedisStore and kv.NewS3Store.
func WithStore(store kv.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.kv = store
		}
	}
}

// WithStorageKey sets the slot the state is persisted under.
func WithStorageKey(key string) Option {
	return func(s *Service) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger for persistence warnings.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithAbilities seeds the ability map at construction, before any
// Resume or mutation happens. Nothing is persisted yet.
func WithAbilities(abilities AbilityMap) Option {
	return func(s *Service) {
		s.store.SetAbilities(abilities)
	}
}
