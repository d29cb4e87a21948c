package keymaster

import (
	"context"
	"fmt"

	"github.com/hostbay/console/pkg/model"
	"github.com/hostbay/console/pkg/owner"
)

// Keys returns the keys bound to an owner pair, optionally filtered by key
// class. This is the reverse accessor entities delegate to when listing
// their credentials.
func (km *KeyMaster) Keys(ctx context.Context, ownerID uint, ownerType model.OwnerType, classes ...model.KeyClass) ([]model.AppKey, error) {
	tx := km.db.WithContext(ctx).
		Where("owner_id = ? AND owner_type_nbr = ?", ownerID, ownerType)
	if len(classes) > 0 {
		tx = tx.Where("key_class_nbr IN ?", classes)
	}

	var keys []model.AppKey
	if err := tx.Find(&keys).Error; err != nil {
		return nil, fmt.Errorf("listing app keys for %s owner %d: %w", ownerType, ownerID, err)
	}
	return keys, nil
}

// UserKeys returns the keys an entity holds under its own id and natural
// owner type. Entities without a natural type hold no keys of their own and
// get an empty result.
func (km *KeyMaster) UserKeys(ctx context.Context, entity model.Entity) ([]model.AppKey, error) {
	ownerType, err := km.resolver.OwnerTypeOf(entity)
	if err != nil {
		return nil, nil
	}
	return km.Keys(ctx, entity.EntityID(), ownerType)
}

// Owner walks a key back to the concrete entity that owns it. Unowned keys
// fail with owner.ErrOwnerNotFound.
func (km *KeyMaster) Owner(key *model.AppKey) (model.Entity, error) {
	ownerID, ownerType, ok := key.Owner()
	if !ok {
		return nil, fmt.Errorf("app key %d is unowned: %w", key.ID, owner.ErrOwnerNotFound)
	}
	return km.resolver.ResolveOwner(ownerID, ownerType)
}
