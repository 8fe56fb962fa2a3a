// Package acl tracks which roles are attached to the current user,
// which abilities each role grants, and answers "can the current user
// perform X?". State can optionally be persisted across restarts
// through a pluggable key-value medium.
//
// This is a UX helper, not a security boundary: it assumes any
// authoritative enforcement happens server-side and only exists so an
// application can hide or redirect what the user may not touch. It
// models exactly one implicit user per process and keeps no identity.
//
// # Architecture
//
// A Service composes two parts. The Store holds the ability map
// (role → abilities) and the attached-role set, pure in-memory with no
// I/O. The medium, any kv.Store, receives a JSON snapshot of the state
// under a single key after every mutation. Queries never touch the
// medium.
//
//	┌──────────┐  mutate/query  ┌─────────┐
//	│  Caller  │ ─────────────► │ Service │
//	└──────────┘                └─────────┘
//	                              │      │ save / load / flush
//	                       Store ◄┘      ▼
//	                                ┌──────────┐
//	                                │ kv.Store │ (memory, file, redis, s3, noop)
//	                                └──────────┘
//
// # Usage
//
//	import "github.com/guardkit/guardkit/pkg/acl"
//
//	svc, err := acl.NewFromConfig(acl.Config{
//	    Storage:    acl.StoragePersistent,
//	    StorageKey: "acl",
//	    StorageDir: ".acl",
//	})
//	if err != nil {
//	    // handle error
//	}
//
//	// Rehydrate state from a previous run. Never called implicitly.
//	if !svc.Resume(ctx) {
//	    svc.SetAbilities(ctx, acl.AbilityMap{
//	        "guest":  {"login"},
//	        "member": {"logout", "view_content"},
//	        "admin":  {"logout", "view_content", "manage_content"},
//	    })
//	}
//
//	svc.AttachRole(ctx, "member")
//	svc.Can("view_content")   // true
//	svc.Can("manage_content") // false
//
// A custom medium replaces the configured one:
//
//	svc := acl.New(
//	    acl.WithStore(kv.NewRedisStore(client)),
//	    acl.WithStorageKey("acl:current"),
//	)
//
// # Persistence semantics
//
// Every mutating call (SetAbilities, AddAbility, AttachRole,
// DetachRole, FlushRoles) writes the full state through to the medium.
// Persistence is best-effort: write failures are logged at warn level
// and swallowed, and the in-memory state remains authoritative for the
// rest of the process. Resume treats a missing key, a medium failure
// and a corrupt record identically — it returns false and leaves the
// state untouched. FlushStorage deletes the persisted record without
// clearing in-memory state.
//
// # Error Handling
//
// Unknown roles or abilities in queries are data, not errors: they
// resolve to false or empty results. The only errors the package
// returns are construction-time ones:
//
//   - ErrUnknownStorage – Config.Storage is not a known mode
//   - ErrInvalidConfig  – environment parsing failed
//
// Both can be matched with errors.Is.
package acl
