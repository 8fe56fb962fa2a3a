package acl

import "errors"

// Domain errors for ACL configuration.
var (
	// ErrUnknownStorage is returned when the configured storage mode is not recognized.
	ErrUnknownStorage = errors.New("acl.unknown_storage")

	// ErrInvalidConfig is returned when configuration cannot be loaded from the environment.
	ErrInvalidConfig = errors.New("acl.invalid_config")
)
