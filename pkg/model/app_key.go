package model

import "time"

// AppKey represents one issued API credential pair bound to an owner.
//
// ClientID and ClientSecret are derived exactly once, when the row is first
// created, by the keymaster plugin; they are never regenerated afterwards.
// OwnerTypeNbr is meaningful only while OwnerID is set: clearing the owner
// clears the type as well, so a bare type code can never dangle.
type AppKey struct {
	ID           uint       `gorm:"column:id;primaryKey" json:"id"`
	KeyClassNbr  KeyClass   `gorm:"column:key_class_nbr;not null;uniqueIndex:idx_owner_key_class" json:"key_class_nbr"`
	ClientID     string     `gorm:"column:client_id;not null" json:"client_id"`
	ClientSecret string     `gorm:"column:client_secret;not null" json:"-"`
	ServerSecret string     `gorm:"column:server_secret;not null" json:"-"`
	OwnerID      *uint      `gorm:"column:owner_id;uniqueIndex:idx_owner_key_class" json:"owner_id"`
	OwnerTypeNbr *OwnerType `gorm:"column:owner_type_nbr;uniqueIndex:idx_owner_key_class" json:"owner_type_nbr"`
	Label        string     `gorm:"column:label" json:"label"`
	Active       bool       `gorm:"column:active_ind;default:true" json:"active"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AppKey) TableName() string {
	return "app_key_t"
}

// Owner returns the (id, type) pair the key is bound to, or ok=false for an
// unowned key.
func (k AppKey) Owner() (uint, OwnerType, bool) {
	if k.OwnerID == nil || *k.OwnerID == 0 || k.OwnerTypeNbr == nil {
		return 0, 0, false
	}
	return *k.OwnerID, *k.OwnerTypeNbr, true
}

// BindOwner points the key at an owner.
func (k *AppKey) BindOwner(id uint, ownerType OwnerType) {
	k.OwnerID = &id
	k.OwnerTypeNbr = &ownerType
}
