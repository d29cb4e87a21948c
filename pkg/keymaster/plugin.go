package keymaster

import (
	"errors"
	"reflect"

	"gorm.io/gorm"

	"github.com/hostbay/console/pkg/model"
)

type options struct {
	// The signer used to derive credentials for new keys
	signer *Signer
}

// ApplyOption applies a given set of supplied options
type ApplyOption func(o *options)

// WithSigner supplies the signer used to derive credentials on insert.
func WithSigner(signer *Signer) ApplyOption {
	return func(o *options) {
		o.signer = signer
	}
}

type keymasterPlugin struct {
	opt *options
}

var appKeyType = reflect.TypeOf(model.AppKey{})

// NewPlugin constructs the app key plugin. On insert it derives the client
// id/secret pair for key rows that don't have one yet and defaults the key
// class; before every insert and update it enforces the owner rule: a key
// with no owner id carries no owner type either.
func NewPlugin(opts ...ApplyOption) gorm.Plugin {
	dst := new(options)

	for _, apply := range opts {
		apply(dst)
	}

	return keymasterPlugin{
		opt: dst,
	}
}

func (p keymasterPlugin) Name() string {
	return "keymaster"
}

func (p keymasterPlugin) Initialize(db *gorm.DB) (err error) {
	if p.opt.signer == nil {
		return errors.New("keymaster plugin: no signer configured")
	}

	db.Callback().Create().Before("gorm:create").Register("keymaster:before_create", p.beforeCreate)
	db.Callback().Update().Before("gorm:update").Register("keymaster:before_update", p.beforeUpdate)

	return
}

func (p keymasterPlugin) beforeCreate(db *gorm.DB) {
	p.processKeys(db, func(key *model.AppKey) {
		enforceOwnerRule(key)

		if key.KeyClassNbr == 0 {
			key.KeyClassNbr = model.KeyClassOther
		}

		// Credentials are derived exactly once, on first insert. Rows that
		// arrive with material already set keep it.
		if key.ClientID != "" || key.ClientSecret != "" {
			return
		}
		if key.ServerSecret == "" {
			key.ServerSecret = p.opt.signer.ServerSecret()
		}
		clientID, clientSecret, err := p.opt.signer.Mint(key.ServerSecret)
		if err != nil {
			_ = db.AddError(err)
			return
		}
		key.ClientID = clientID
		key.ClientSecret = clientSecret
	})
}

func (p keymasterPlugin) beforeUpdate(db *gorm.DB) {
	p.processKeys(db, enforceOwnerRule)
}

func (p keymasterPlugin) processKeys(db *gorm.DB, fn func(*model.AppKey)) {
	if db.Statement.Schema == nil || db.Statement.Schema.ModelType != appKeyType {
		return
	}

	switch db.Statement.ReflectValue.Kind() {
	case reflect.Struct:
		p.processKey(db.Statement.ReflectValue, fn)
	case reflect.Slice, reflect.Array:
		for i := 0; i < db.Statement.ReflectValue.Len(); i++ {
			p.processKey(db.Statement.ReflectValue.Index(i), fn)
		}
	}
}

func (p keymasterPlugin) processKey(reflectValue reflect.Value, fn func(*model.AppKey)) {
	if reflectValue.Kind() == reflect.Ptr {
		reflectValue = reflectValue.Elem()
	}
	if !reflectValue.CanAddr() {
		return
	}
	if key, ok := reflectValue.Addr().Interface().(*model.AppKey); ok {
		fn(key)
	}
}

// enforceOwnerRule clears a dangling owner type: ownerType is meaningful
// only while ownerId is set.
func enforceOwnerRule(key *model.AppKey) {
	if key.OwnerID == nil || *key.OwnerID == 0 {
		key.OwnerID = nil
		key.OwnerTypeNbr = nil
	}
}
