package acl

import (
	"slices"
	"sort"
	"sync"
)

// Store holds the ability map and the set of roles attached to the
// current user. It is pure in-memory state with no I/O; persistence is
// layered on top by Service.
//
// The store is safe for concurrent use. Overlapping mutations follow
// last-write-wins semantics with no versioning or conflict detection.
type Store struct {
	mu        sync.RWMutex
	abilities AbilityMap
	attached  map[string]struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		abilities: make(AbilityMap),
		attached:  make(map[string]struct{}),
	}
}

// SetAbilities replaces the entire ability map with a copy of the
// given mapping. An empty or nil mapping is valid and clears all
// defined abilities; attached roles are left untouched.
func (s *Store) SetAbilities(abilities AbilityMap) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.abilities = abilities.Clone()
	if s.abilities == nil {
		s.abilities = make(AbilityMap)
	}
}

// AddAbility grants ability to role, creating the role entry if it
// does not exist yet. Repeated calls with the same arguments are no-ops.
func (s *Store) AddAbility(role, ability string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.abilities[role], ability) {
		return
	}
	s.abilities[role] = append(s.abilities[role], ability)
}

// AttachRole binds role to the current user. Attaching is idempotent,
// and the role does not have to exist in the ability map: an attached
// role with no defined abilities simply grants nothing.
func (s *Store) AttachRole(role string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attached[role] = struct{}{}
}

// DetachRole removes role from the attached set. Detaching a role that
// is not attached is a no-op.
func (s *Store) DetachRole(role string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.attached, role)
}

// FlushRoles detaches every role.
func (s *Store) FlushRoles() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attached = make(map[string]struct{})
}

// Roles returns a sorted snapshot of the attached role labels. The
// returned slice is a copy; mutating it does not affect the store.
func (s *Store) Roles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rolesLocked()
}

// HasRole reports whether every given role is attached. With no
// arguments it is trivially true.
func (s *Store) HasRole(roles ...string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, role := range roles {
		if _, attached := s.attached[role]; !attached {
			return false
		}
	}
	return true
}

// HasAnyRole reports whether at least one given role is attached.
// With no arguments it is false.
func (s *Store) HasAnyRole(roles ...string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, role := range roles {
		if _, attached := s.attached[role]; attached {
			return true
		}
	}
	return false
}

// Can reports whether any attached role grants ability. A role absent
// from the ability map is treated as granting nothing, never as an
// error.
func (s *Store) Can(ability string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for role := range s.attached {
		if slices.Contains(s.abilities[role], ability) {
			return true
		}
	}
	return false
}

// rolesLocked collects the attached roles. Callers must hold mu.
func (s *Store) rolesLocked() []string {
	roles := make([]string, 0, len(s.attached))
	for role := range s.attached {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}
