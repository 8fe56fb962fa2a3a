package acl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardkit/guardkit/pkg/acl"
)

func testAbilities() acl.AbilityMap {
	return acl.AbilityMap{
		"guest":  {"login"},
		"member": {"logout", "view_content"},
		"admin":  {"logout", "view_content", "manage_content"},
	}
}

func TestStore_AttachDetachRole(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()

	assert.False(t, store.HasRole("member"))

	store.AttachRole("member")
	assert.True(t, store.HasRole("member"))

	store.DetachRole("member")
	assert.False(t, store.HasRole("member"))

	// Detaching an absent role is a no-op, not an error.
	store.DetachRole("member")
	assert.False(t, store.HasRole("member"))
}

func TestStore_AttachRoleIdempotent(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()

	store.AttachRole("member")
	store.AttachRole("member")

	assert.Equal(t, []string{"member"}, store.Roles())
}

func TestStore_AttachUnknownRole(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()
	store.SetAbilities(testAbilities())

	// A role with no ability map entry attaches fine and grants nothing.
	store.AttachRole("ghost")
	assert.True(t, store.HasRole("ghost"))
	assert.False(t, store.Can("login"))
}

func TestStore_FlushRoles(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()

	store.AttachRole("member")
	store.AttachRole("admin")
	require.Len(t, store.Roles(), 2)

	store.FlushRoles()
	assert.Empty(t, store.Roles())
}

func TestStore_RolesSnapshot(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()

	store.AttachRole("member")
	store.AttachRole("admin")

	roles := store.Roles()
	assert.Equal(t, []string{"admin", "member"}, roles)

	// Mutating the returned slice must not leak into the store.
	roles[0] = "root"
	assert.Equal(t, []string{"admin", "member"}, store.Roles())
}

func TestStore_HasRole(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()
	store.AttachRole("member")
	store.AttachRole("admin")

	tests := []struct {
		name     string
		roles    []string
		expected bool
	}{
		{name: "no arguments is trivially true", roles: nil, expected: true},
		{name: "single attached role", roles: []string{"member"}, expected: true},
		{name: "single detached role", roles: []string{"guest"}, expected: false},
		{name: "all attached", roles: []string{"member", "admin"}, expected: true},
		{name: "one of two attached", roles: []string{"member", "guest"}, expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, store.HasRole(tt.roles...))
		})
	}
}

func TestStore_HasAnyRole(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()
	store.AttachRole("member")

	tests := []struct {
		name     string
		roles    []string
		expected bool
	}{
		{name: "no arguments is false", roles: nil, expected: false},
		{name: "attached role", roles: []string{"member"}, expected: true},
		{name: "detached role", roles: []string{"admin"}, expected: false},
		{name: "one of two attached", roles: []string{"admin", "member"}, expected: true},
		{name: "none attached", roles: []string{"admin", "guest"}, expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, store.HasAnyRole(tt.roles...))
		})
	}
}

func TestStore_Can(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()
	store.SetAbilities(testAbilities())
	store.AttachRole("member")

	tests := []struct {
		name     string
		ability  string
		expected bool
	}{
		{name: "granted by attached role", ability: "view_content", expected: true},
		{name: "granted to another role only", ability: "manage_content", expected: false},
		{name: "unknown ability", ability: "fly", expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, store.Can(tt.ability))
		})
	}
}

func TestStore_CanAcrossMultipleRoles(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()
	store.SetAbilities(testAbilities())

	store.AttachRole("guest")
	store.AttachRole("member")

	// Union across attached roles.
	assert.True(t, store.Can("login"))
	assert.True(t, store.Can("view_content"))
	assert.False(t, store.Can("manage_content"))
}

func TestStore_AddAbility(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()

	store.AddAbility("moderator", "ban_users")
	store.AddAbility("admin", "create_users")
	store.AttachRole("moderator")

	assert.True(t, store.Can("ban_users"))
	assert.False(t, store.Can("create_users"))
}

func TestStore_AddAbilityIdempotent(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()

	store.AddAbility("moderator", "ban_users")
	store.AddAbility("moderator", "ban_users")
	store.AttachRole("moderator")

	assert.True(t, store.Can("ban_users"))
}

func TestStore_SetAbilitiesReplaces(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()
	store.SetAbilities(testAbilities())
	store.AttachRole("member")
	require.True(t, store.Can("view_content"))

	// Full replace: the old map is gone, attached roles remain.
	store.SetAbilities(acl.AbilityMap{"member": {"logout"}})
	assert.False(t, store.Can("view_content"))
	assert.True(t, store.Can("logout"))
	assert.True(t, store.HasRole("member"))

	// An empty map is valid and clears everything.
	store.SetAbilities(nil)
	assert.False(t, store.Can("logout"))
}

func TestStore_SetAbilitiesCopiesInput(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()

	abilities := acl.AbilityMap{"member": {"view_content"}}
	store.SetAbilities(abilities)
	store.AttachRole("member")

	// Mutating the caller's map after the fact must not affect the store.
	abilities["member"][0] = "manage_content"
	assert.True(t, store.Can("view_content"))
	assert.False(t, store.Can("manage_content"))
}

func TestStore_EmptyAbilityListVsMissingRole(t *testing.T) {
	t.Parallel()
	store := acl.NewStore()
	store.SetAbilities(acl.AbilityMap{"empty": {}})

	store.AttachRole("empty")
	store.AttachRole("missing")

	// Both resolve to "grants nothing"; neither is an error.
	assert.False(t, store.Can("anything"))
}
