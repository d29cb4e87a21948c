package keymaster

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hostbay/console/pkg/model"
	"github.com/hostbay/console/pkg/owner"
)

// ErrKeyNotFound indicates no app key exists for the requested owner pair.
var ErrKeyNotFound = errors.New("app key not found")

// Fields carries the optional attributes of a new key. Zero values are
// ignored; KeyClass overrides the class otherwise derived from the owner
// type.
type Fields struct {
	Label    string
	Active   *bool
	KeyClass model.KeyClass
}

// KeyMaster manages the app key lifecycle against a shared store. Atomicity
// of concurrent creation rests on the store's unique index over
// (owner_id, owner_type_nbr, key_class_nbr); the KeyMaster holds no locks
// and surfaces store rejections to the caller untouched.
type KeyMaster struct {
	db       *gorm.DB
	resolver *owner.Resolver
	signer   *Signer
}

// New creates a KeyMaster.
func New(db *gorm.DB, resolver *owner.Resolver, signer *Signer) *KeyMaster {
	return &KeyMaster{db: db, resolver: resolver, signer: signer}
}

// Resolver exposes the ownership resolver the KeyMaster was built with.
func (km *KeyMaster) Resolver() *owner.Resolver {
	return km.resolver
}

// KeyClassForOwnerType maps an owner type to the class its keys carry.
// Owner types without a dedicated class fall back to KeyClassOther.
func KeyClassForOwnerType(ownerType model.OwnerType) model.KeyClass {
	switch ownerType {
	case model.OwnerTypeUser:
		return model.KeyClassUser
	case model.OwnerTypeApplication:
		return model.KeyClassApplication
	case model.OwnerTypeService:
		return model.KeyClassService
	case model.OwnerTypeServiceUser:
		return model.KeyClassServiceUser
	default:
		return model.KeyClassOther
	}
}

// CreateKey mints a new app key for the owner (ownerID, ownerType). The
// owner must resolve: a missing owner fails with owner.ErrOwnerNotFound and
// an unregistered type with owner.ErrInvalidOwnerType. Store rejections,
// including the unique-index violation under concurrent creation, propagate
// wrapped and are never retried here.
func (km *KeyMaster) CreateKey(ctx context.Context, ownerID uint, ownerType model.OwnerType, fields Fields) (*model.AppKey, error) {
	if _, err := km.resolver.ResolveOwner(ownerID, ownerType); err != nil {
		return nil, err
	}

	keyClass := fields.KeyClass
	if keyClass == 0 {
		keyClass = KeyClassForOwnerType(ownerType)
	}

	key := &model.AppKey{
		KeyClassNbr: keyClass,
		Label:       fields.Label,
		Active:      true,
	}
	if fields.Active != nil {
		key.Active = *fields.Active
	}
	key.BindOwner(ownerID, ownerType)

	if err := km.db.WithContext(ctx).Create(key).Error; err != nil {
		return nil, fmt.Errorf("creating app key for %s owner %d: %w", ownerType, ownerID, err)
	}
	return key, nil
}

// CreateKeyForEntity mints a key for an entity, deriving the owner type from
// the entity's kind unless an override is given. Entities whose kind has no
// registered owner type, and rows in assignment or archive tables, get no
// key: that is the (nil, nil) "not applicable" outcome, not a failure.
//
// When the entity keeps a denormalized API token, the fresh client id is
// written back to it.
func (km *KeyMaster) CreateKeyForEntity(ctx context.Context, entity model.Entity, override ...model.OwnerType) (*model.AppKey, error) {
	if model.ImmutableTable(entity.TableName()) {
		return nil, nil
	}

	var ownerType model.OwnerType
	if len(override) > 0 {
		ownerType = override[0]
	} else {
		derived, err := km.resolver.OwnerTypeOf(entity)
		if err != nil {
			if errors.Is(err, owner.ErrAmbiguousOwnerType) {
				return nil, nil
			}
			return nil, err
		}
		ownerType = derived
	}
	if !km.resolver.Registry().Contains(ownerType) {
		return nil, nil
	}

	key, err := km.CreateKey(ctx, entity.EntityID(), ownerType, Fields{})
	if err != nil {
		return nil, err
	}

	if holder, ok := entity.(model.APITokenHolder); ok {
		holder.SetAPIToken(key.ClientID)
		tx := km.db.WithContext(ctx).Model(entity).Update("api_token_text", key.ClientID)
		if tx.Error != nil {
			return nil, fmt.Errorf("writing api token back to %s %d: %w", entity.TableName(), entity.EntityID(), tx.Error)
		}
	}
	return key, nil
}

// DestroyKeys deletes every app key owned by the entity and returns how many
// went away. The owner pair is computed by a fixed precedence: assignment
// and archive tables never own keys; kinds with an inherent owner type use
// their own id; then explicit owner columns; then a plain user_id column as
// a user owner; otherwise there is nothing to destroy.
func (km *KeyMaster) DestroyKeys(ctx context.Context, entity model.Entity) (int64, error) {
	ownerID, ownerType, ok := ownerPairOf(entity)
	if !ok {
		return 0, nil
	}
	return km.RevokeKeys(ctx, ownerID, ownerType)
}

// RevokeKeys deletes every app key bound to an explicit owner pair. It is
// the primitive DestroyKeys delegates to once the pair is known.
func (km *KeyMaster) RevokeKeys(ctx context.Context, ownerID uint, ownerType model.OwnerType) (int64, error) {
	tx := km.db.WithContext(ctx).
		Where("owner_id = ? AND owner_type_nbr = ?", ownerID, ownerType).
		Delete(&model.AppKey{})
	if tx.Error != nil {
		return 0, fmt.Errorf("destroying app keys for %s owner %d: %w", ownerType, ownerID, tx.Error)
	}
	return tx.RowsAffected, nil
}

// GetKey returns the key for an owner pair, or ErrKeyNotFound. At most one
// key per (owner, class) is expected; the unique index enforces it and this
// lookup never dedupes.
func (km *KeyMaster) GetKey(ctx context.Context, ownerID uint, ownerType model.OwnerType) (*model.AppKey, error) {
	var key model.AppKey
	tx := km.db.WithContext(ctx).
		Where("owner_id = ? AND owner_type_nbr = ?", ownerID, ownerType).
		First(&key)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s owner %d: %w", ownerType, ownerID, ErrKeyNotFound)
		}
		return nil, tx.Error
	}
	return &key, nil
}

// ownerPairOf applies the destruction precedence rule.
func ownerPairOf(entity model.Entity) (uint, model.OwnerType, bool) {
	if model.ImmutableTable(entity.TableName()) {
		return 0, 0, false
	}
	if d, ok := entity.(model.DefaultOwner); ok {
		if ownerType, ok := d.DefaultOwnerType(); ok {
			return entity.EntityID(), ownerType, true
		}
	}
	if assignable, ok := entity.(model.OwnerAssignable); ok {
		if ownerID, ownerType, ok := assignable.OwnerRef(); ok {
			return ownerID, ownerType, true
		}
	}
	if owned, ok := entity.(model.UserOwned); ok {
		if userID := owned.OwningUserID(); userID != 0 {
			return userID, model.OwnerTypeUser, true
		}
	}
	return 0, 0, false
}
