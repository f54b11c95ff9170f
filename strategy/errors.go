package strategy

import "github.com/cockroachdb/errors"

// Sentinel errors returned by parsing and profile loading.
var (
	// ErrUnknownVariant is returned when a variant name does not match any
	// variant of the requested kind.
	ErrUnknownVariant = errors.New("strategy: unknown variant")

	// ErrInvalidProfile marks every error returned by LoadProfile and
	// ParseProfile.
	ErrInvalidProfile = errors.New("strategy: invalid profile")
)
