// Package lifecycle sequences credential issuance around entity
// persistence. The surrounding service layer calls EntityCreated right
// after it persists a new entity and EntityDeleted right after it removes
// one, making the create-entity/issue-key and delete-entity/revoke-keys
// pairs explicit two-step calls instead of ORM callbacks.
package lifecycle

import (
	"context"
	"log"

	"github.com/hostbay/console/pkg/keymaster"
	"github.com/hostbay/console/pkg/model"
)

// Hooks wires entity lifecycle events to the key master.
type Hooks struct {
	keys *keymaster.KeyMaster
}

// NewHooks creates lifecycle hooks over a key master.
func NewHooks(keys *keymaster.KeyMaster) *Hooks {
	return &Hooks{keys: keys}
}

// EntityCreated issues the entity's app key. Entities whose kind owns no
// keys come back (nil, nil); that is expected, not a failure.
func (h *Hooks) EntityCreated(ctx context.Context, entity model.Entity) (*model.AppKey, error) {
	key, err := h.keys.CreateKeyForEntity(ctx, entity)
	if err != nil {
		return nil, err
	}
	if key != nil {
		log.Printf("issued app key %d for %s %d", key.ID, entity.TableName(), entity.EntityID())
	}
	return key, nil
}

// EntityDeleted revokes every key the entity owned.
func (h *Hooks) EntityDeleted(ctx context.Context, entity model.Entity) (int64, error) {
	count, err := h.keys.DestroyKeys(ctx, entity)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Printf("revoked %d app key(s) for %s %d", count, entity.TableName(), entity.EntityID())
	}
	return count, nil
}
