package acl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/guardkit/guardkit/pkg/kv"
)

// DefaultStorageKey is the storage slot used unless overridden.
const DefaultStorageKey = "acl"

// Service is the consumer-facing surface of the access-control helper.
// It owns one Store and one storage medium; every mutation is written
// through to the medium best-effort, so the in-memory state stays
// authoritative even when the medium fails.
//
// One Service instance is meant to live for the whole process. Resume
// is the only rehydration point and is never called implicitly.
type Service struct {
	store *Store
	kv    kv.Store
	key   string
	log   *slog.Logger
}

// New creates a Service with the given options. Without options the
// service keeps its state in memory only (persistence disabled).
func New(opts ...Option) *Service {
	s := &Service{
		store: NewStore(),
		kv:    kv.NoopStore{},
		key:   DefaultStorageKey,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetAbilities replaces the entire ability map and persists the change.
func (s *Service) SetAbilities(ctx context.Context, abilities AbilityMap) {
	s.store.SetAbilities(abilities)
	s.persist(ctx)
}

// AddAbility grants ability to role and persists the change. The role
// entry is created when missing; repeated calls are idempotent.
func (s *Service) AddAbility(ctx context.Context, role, ability string) {
	s.store.AddAbility(role, ability)
	s.persist(ctx)
}

// AttachRole binds role to the current user and persists the change.
func (s *Service) AttachRole(ctx context.Context, role string) {
	s.store.AttachRole(role)
	s.persist(ctx)
}

// DetachRole unbinds role and persists the change. Detaching a role
// that is not attached is a no-op apart from the persisted write.
func (s *Service) DetachRole(ctx context.Context, role string) {
	s.store.DetachRole(role)
	s.persist(ctx)
}

// FlushRoles detaches every role and persists the change.
func (s *Service) FlushRoles(ctx context.Context) {
	s.store.FlushRoles()
	s.persist(ctx)
}

// Can reports whether any attached role grants ability. No I/O.
func (s *Service) Can(ability string) bool {
	return s.store.Can(ability)
}

// Roles returns a sorted snapshot of the attached role labels. No I/O.
func (s *Service) Roles() []string {
	return s.store.Roles()
}

// HasRole reports whether every given role is attached. No I/O.
func (s *Service) HasRole(roles ...string) bool {
	return s.store.HasRole(roles...)
}

// HasAnyRole reports whether at least one given role is attached. No I/O.
func (s *Service) HasAnyRole(roles ...string) bool {
	return s.store.HasAnyRole(roles...)
}

// Resume rehydrates the store from the medium and reports whether a
// record was found and applied. A missing key, a medium failure and a
// corrupt record all leave the in-memory state untouched and return
// false; none of them is surfaced as an error.
func (s *Service) Resume(ctx context.Context) bool {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			s.log.WarnContext(ctx, "acl: failed to read persisted state",
				slog.String("key", s.key), slog.Any("error", err))
		}
		return false
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Corrupt records degrade to "no prior state".
		s.log.WarnContext(ctx, "acl: discarding corrupt persisted state",
			slog.String("key", s.key), slog.Any("error", err))
		return false
	}

	s.store.restore(snap)
	return true
}

// FlushStorage removes the persisted record. In-memory state is not
// cleared; use FlushRoles and SetAbilities for that.
func (s *Service) FlushStorage(ctx context.Context) {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		s.log.WarnContext(ctx, "acl: failed to clear persisted state",
			slog.String("key", s.key), slog.Any("error", err))
	}
}

// persist writes the current state to the medium. Failures are logged
// and swallowed: a full or unavailable medium must never break the
// caller, it only means the next process starts empty.
func (s *Service) persist(ctx context.Context) {
	data, err := json.Marshal(s.store.export())
	if err != nil {
		s.log.WarnContext(ctx, "acl: failed to encode state",
			slog.String("key", s.key), slog.Any("error", err))
		return
	}

	if err := s.kv.Set(ctx, s.key, data); err != nil {
		s.log.WarnContext(ctx, "acl: failed to persist state",
			slog.String("key", s.key), slog.Any("error", err))
	}
}
