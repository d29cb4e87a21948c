// Package owner resolves polymorphic ownership.
//
// An (owner id, owner type) pair can point at a row in any of several tables.
// The Registry is the closed dispatch table mapping each OwnerType code to
// the model that resolves it and to its association strategy: either a direct
// foreign-key column on the child, or a row in an assignment table. The
// Resolver walks pairs back to concrete models and manages assignment rows.
package owner
