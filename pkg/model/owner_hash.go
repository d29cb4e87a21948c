package model

import "time"

// OwnerHash maps an opaque hash to an (owner id, owner type) pair, letting
// external systems reference owners without leaking numeric ids.
type OwnerHash struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	HashText     string    `gorm:"column:hash_text;uniqueIndex" json:"hash"`
	OwnerID      uint      `gorm:"column:owner_id" json:"owner_id"`
	OwnerTypeNbr OwnerType `gorm:"column:owner_type_nbr" json:"owner_type_nbr"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OwnerHash) TableName() string {
	return "owner_hash_t"
}

func (h OwnerHash) EntityID() uint {
	return h.ID
}

func (h *OwnerHash) AssignOwner(id uint, ownerType OwnerType) {
	h.OwnerID = id
	h.OwnerTypeNbr = ownerType
}

func (h *OwnerHash) ClearOwner() {
	h.OwnerID = 0
	h.OwnerTypeNbr = 0
}

func (h OwnerHash) OwnerRef() (uint, OwnerType, bool) {
	if h.OwnerID == 0 {
		return 0, 0, false
	}
	return h.OwnerID, h.OwnerTypeNbr, true
}
