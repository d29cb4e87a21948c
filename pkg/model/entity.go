package model

import "strings"

const (
	// AssignmentTableSuffix marks join tables recording entity assignments.
	AssignmentTableSuffix = "_asgn_t"
	// ArchiveTableSuffix marks archive copies of entity tables.
	ArchiveTableSuffix = "_arch_t"
)

// Entity is the minimal capability shared by every owner-capable model:
// a stable numeric identity and the table it lives in.
type Entity interface {
	EntityID() uint
	TableName() string
}

// DefaultOwner is implemented by entities whose kind implies an owner type.
// Users always represent OwnerTypeUser; service users carry a mutable type
// column. Entities without a natural owner type simply don't implement this.
type DefaultOwner interface {
	DefaultOwnerType() (OwnerType, bool)
}

// OwnerAssignable is implemented by entities carrying explicit
// (owner_id, owner_type_nbr) columns. AssignOwner and ClearOwner mutate the
// struct in memory only; persisting the change is the caller's concern.
type OwnerAssignable interface {
	AssignOwner(id uint, ownerType OwnerType)
	ClearOwner()
	OwnerRef() (id uint, ownerType OwnerType, ok bool)
}

// UserOwned is implemented by entities with a plain user_id column. A zero
// id means the row is not attached to a user.
type UserOwned interface {
	OwningUserID() uint
}

// APITokenHolder is implemented by entities that keep a denormalized copy of
// their key's client id.
type APITokenHolder interface {
	SetAPIToken(token string)
}

// ImmutableTable reports whether a table never owns app keys. Assignment and
// archive tables hold copies or links, not live entities, so credential
// issuance and destruction both skip them.
func ImmutableTable(name string) bool {
	return strings.HasSuffix(name, AssignmentTableSuffix) ||
		strings.HasSuffix(name, ArchiveTableSuffix)
}
