package owner

import (
	"fmt"

	"github.com/hostbay/console/pkg/model"
)

// Info describes how one owner type resolves to a concrete model.
//
// Exactly one association strategy is populated per type: OwnerClassKey for
// direct-column ownership (the child carries the owner's id), or
// AssociativeTable+ForeignKey for assignment-table ownership. The two are
// mutually exclusive.
type Info struct {
	// Type is the owner type code this entry resolves.
	Type model.OwnerType

	// New returns a fresh model of the resolving kind, ready for a lookup.
	New func() model.Entity

	// OwnerClassKey names the child column holding this owner's id when no
	// assignment table is involved. For associative types it names the child
	// column on the assignment row instead.
	OwnerClassKey string

	// AssociativeTable names the assignment table, when one is used.
	AssociativeTable string

	// ForeignKey names the assignment-table column holding the owner's id.
	ForeignKey string
}

// Associative reports whether this owner type links through an assignment
// table rather than a direct column.
func (i Info) Associative() bool {
	return i.AssociativeTable != ""
}

// Registry is the closed set of owner types the process knows about. It is
// built once at startup and only read afterwards, so concurrent lookups need
// no locking.
type Registry struct {
	infos map[model.OwnerType]Info
}

// NewRegistry builds a registry from the supplied entries, rejecting
// duplicates and entries without a usable association strategy.
func NewRegistry(infos ...Info) (*Registry, error) {
	byType := make(map[model.OwnerType]Info, len(infos))
	for _, info := range infos {
		if _, ok := byType[info.Type]; ok {
			return nil, fmt.Errorf("owner type %s registered twice", info.Type)
		}
		if info.New == nil {
			return nil, fmt.Errorf("owner type %s has no model factory", info.Type)
		}
		if info.Associative() && info.ForeignKey == "" {
			return nil, fmt.Errorf("owner type %s has an assignment table but no foreign key", info.Type)
		}
		if info.Associative() && info.OwnerClassKey == "" {
			return nil, fmt.Errorf("owner type %s has an assignment table but no child column", info.Type)
		}
		if !info.Associative() && info.OwnerClassKey == "" {
			return nil, fmt.Errorf("owner type %s has neither a direct column nor an assignment table", info.Type)
		}
		byType[info.Type] = info
	}
	return &Registry{infos: byType}, nil
}

// Lookup returns the Info for an owner type, or ErrInvalidOwnerType for any
// code outside the registered set.
func (r *Registry) Lookup(ownerType model.OwnerType) (Info, error) {
	info, ok := r.infos[ownerType]
	if !ok {
		return Info{}, fmt.Errorf("owner type %d: %w", ownerType, ErrInvalidOwnerType)
	}
	return info, nil
}

// Contains reports whether an owner type is registered.
func (r *Registry) Contains(ownerType model.OwnerType) bool {
	_, ok := r.infos[ownerType]
	return ok
}

// Types returns the registered owner type codes.
func (r *Registry) Types() []model.OwnerType {
	types := make([]model.OwnerType, 0, len(r.infos))
	for t := range r.infos {
		types = append(types, t)
	}
	return types
}

// Default returns the registry for the console schema. Application keys are
// owned by the hosted instance they run on; service, console and dashboard
// keys are owned by rows in the service user table; cluster ownership links
// through the cluster/server assignment table.
func Default() *Registry {
	registry, err := NewRegistry(
		Info{
			Type:          model.OwnerTypeUser,
			New:           func() model.Entity { return &model.User{} },
			OwnerClassKey: "user_id",
		},
		Info{
			Type:          model.OwnerTypeApplication,
			New:           func() model.Entity { return &model.Instance{} },
			OwnerClassKey: "instance_id",
		},
		Info{
			Type:          model.OwnerTypeService,
			New:           func() model.Entity { return &model.ServiceUser{} },
			OwnerClassKey: "service_user_id",
		},
		Info{
			Type:          model.OwnerTypeInstance,
			New:           func() model.Entity { return &model.Instance{} },
			OwnerClassKey: "instance_id",
		},
		Info{
			Type:          model.OwnerTypeServer,
			New:           func() model.Entity { return &model.Server{} },
			OwnerClassKey: "server_id",
		},
		Info{
			Type:             model.OwnerTypeCluster,
			New:              func() model.Entity { return &model.Cluster{} },
			OwnerClassKey:    "server_id",
			AssociativeTable: model.ClusterServer{}.TableName(),
			ForeignKey:       "cluster_id",
		},
		Info{
			Type:          model.OwnerTypeServiceUser,
			New:           func() model.Entity { return &model.ServiceUser{} },
			OwnerClassKey: "service_user_id",
		},
		Info{
			Type:          model.OwnerTypeConsole,
			New:           func() model.Entity { return &model.ServiceUser{} },
			OwnerClassKey: "service_user_id",
		},
		Info{
			Type:          model.OwnerTypeDashboard,
			New:           func() model.Entity { return &model.ServiceUser{} },
			OwnerClassKey: "service_user_id",
		},
	)
	if err != nil {
		panic(err)
	}
	return registry
}
