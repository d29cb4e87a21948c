package owner

import "errors"

var (
	// ErrInvalidOwnerType indicates an owner type code outside the registry.
	ErrInvalidOwnerType = errors.New("invalid owner type")

	// ErrOwnerNotFound indicates that an (owner id, owner type) pair resolved
	// to no row. A zero owner id always resolves to this: zero means "no
	// owner", never a valid id.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrAmbiguousOwnerType indicates the owner type was omitted and the
	// entity has no default type to fall back on.
	ErrAmbiguousOwnerType = errors.New("ambiguous owner type")
)
