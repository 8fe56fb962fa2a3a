package acl

import "slices"

// AbilityMap maps a role label to the abilities that role grants.
// An ability may appear under several roles; a duplicate within one
// role's list is harmless and never an error.
type AbilityMap map[string][]string

// Clone returns a deep copy of the map. Cloning a nil map returns nil.
func (m AbilityMap) Clone() AbilityMap {
	if m == nil {
		return nil
	}

	out := make(AbilityMap, len(m))
	for role, abilities := range m {
		out[role] = slices.Clone(abilities)
	}
	return out
}
