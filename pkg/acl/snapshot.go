package acl

// snapshot is the persisted form of the store state, written as a
// single JSON record under the configured storage key.
type snapshot struct {
	Abilities AbilityMap `json:"abilities"`
	Roles     []string   `json:"roles"`
}

// export captures the current state as a snapshot.
func (s *Store) export() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return snapshot{
		Abilities: s.abilities.Clone(),
		Roles:     s.rolesLocked(),
	}
}

// restore replaces the whole state with the snapshot's contents.
func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.abilities = snap.Abilities.Clone()
	if s.abilities == nil {
		s.abilities = make(AbilityMap)
	}

	s.attached = make(map[string]struct{}, len(snap.Roles))
	for _, role := range snap.Roles {
		s.attached[role] = struct{}{}
	}
}
