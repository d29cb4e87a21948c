package owner

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hostbay/console/pkg/model"
)

// Resolver walks (owner id, owner type) pairs back to concrete models and
// manages assignment rows for the owner types that use them.
//
// Resolver methods run against the handle they were built with and are not
// internally transactional. A caller moving a child between owners
// (Disassociate then Associate) wraps the pair in db.Transaction and uses
// WithDB to run both steps on the transaction handle.
type Resolver struct {
	db       *gorm.DB
	registry *Registry
}

// NewResolver creates a Resolver over the given connection and registry.
func NewResolver(db *gorm.DB, registry *Registry) *Resolver {
	return &Resolver{db: db, registry: registry}
}

// WithDB returns a copy of the resolver bound to another handle, typically a
// transaction.
func (r *Resolver) WithDB(db *gorm.DB) *Resolver {
	return &Resolver{db: db, registry: r.registry}
}

// Registry exposes the resolver's dispatch table.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// ResolveOwner loads the concrete owner for an (id, type) pair. A zero id is
// "no owner" and fails with ErrOwnerNotFound, as does a missing row; an
// unregistered type fails with ErrInvalidOwnerType.
func (r *Resolver) ResolveOwner(ownerID uint, ownerType model.OwnerType) (model.Entity, error) {
	info, err := r.registry.Lookup(ownerType)
	if err != nil {
		return nil, err
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("%s owner: %w", ownerType, ErrOwnerNotFound)
	}

	entity := info.New()
	tx := r.db.Where("id = ?", ownerID).First(entity)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s owner %d: %w", ownerType, ownerID, ErrOwnerNotFound)
		}
		return nil, tx.Error
	}
	return entity, nil
}

// OwnerTypeOf returns the owner type an entity represents when none was
// given explicitly. Entities without a default type fail with
// ErrAmbiguousOwnerType: more than one code could apply and there is no
// disambiguator.
func (r *Resolver) OwnerTypeOf(entity model.Entity) (model.OwnerType, error) {
	if d, ok := entity.(model.DefaultOwner); ok {
		if ownerType, ok := d.DefaultOwnerType(); ok {
			return ownerType, nil
		}
	}
	return 0, fmt.Errorf("%s: %w", entity.TableName(), ErrAmbiguousOwnerType)
}

// Associate attaches child to the owner (toID, toType).
//
// For direct-column types the child's owner columns are set in memory and
// the caller persists the change; true means the mutation happened. For
// associative types one assignment row is inserted and true means exactly
// one row landed. Re-associating an already-assigned child of an associative
// type is not checked here; callers Disassociate first.
func (r *Resolver) Associate(child model.Entity, toID uint, toType model.OwnerType) (bool, error) {
	info, err := r.registry.Lookup(toType)
	if err != nil {
		return false, err
	}

	if !info.Associative() {
		assignable, ok := child.(model.OwnerAssignable)
		if !ok {
			return false, fmt.Errorf("%s rows cannot take a direct owner assignment", child.TableName())
		}
		assignable.AssignOwner(toID, toType)
		return true, nil
	}

	tx := r.db.Exec(
		fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (?, ?)",
			info.AssociativeTable, info.ForeignKey, info.OwnerClassKey),
		toID, child.EntityID(),
	)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// Disassociate detaches child from the owner (fromID, fromType). For
// direct-column types the child's owner columns are cleared in memory; for
// associative types matching assignment rows are deleted and true means at
// least one row went away.
func (r *Resolver) Disassociate(child model.Entity, fromID uint, fromType model.OwnerType) (bool, error) {
	info, err := r.registry.Lookup(fromType)
	if err != nil {
		return false, err
	}

	if !info.Associative() {
		assignable, ok := child.(model.OwnerAssignable)
		if !ok {
			return false, fmt.Errorf("%s rows cannot take a direct owner assignment", child.TableName())
		}
		assignable.ClearOwner()
		return true, nil
	}

	tx := r.db.Exec(
		fmt.Sprintf("DELETE FROM %s WHERE %s = ? AND %s = ?",
			info.AssociativeTable, info.ForeignKey, info.OwnerClassKey),
		fromID, child.EntityID(),
	)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
