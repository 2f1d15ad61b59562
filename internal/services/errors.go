package services

import "errors"

var (
	// ErrTenantNotFound is returned when a tenant lookup by id or subdomain
	// finds nothing, or the tenant is inactive.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrCoreModuleImmutable is returned on any attempt to disable a core
	// module. The attempt leaves state unchanged.
	ErrCoreModuleImmutable = errors.New("core modules cannot be disabled")

	// ErrModuleUnknown is returned when a toggle names a module key the
	// registry does not know.
	ErrModuleUnknown = errors.New("unknown module key")

	// ErrInvalidSubdomain is returned when a tenant draft carries a
	// subdomain outside [a-z0-9-]+.
	ErrInvalidSubdomain = errors.New("invalid subdomain")

	// ErrEmployeeNotFound is returned when an employee lookup scoped to a
	// tenant finds nothing.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInsufficientBalance is returned by wallet withdrawals that would
	// overdraw the wallet.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")

	// ErrInvalidTransition is returned when a status change is not allowed
	// from the record's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidCredentials is returned by login with a bad email/password
	// pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
