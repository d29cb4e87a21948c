package model

import "time"

// Mount is a filesystem mount point. Mounts carry explicit owner columns so
// they can belong to any owner kind.
type Mount struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	MountID      string    `gorm:"column:mount_id_text;uniqueIndex" json:"mount_id"`
	RootPath     string    `gorm:"column:root_path_text" json:"root_path"`
	OwnerID      uint      `gorm:"column:owner_id" json:"owner_id"`
	OwnerTypeNbr OwnerType `gorm:"column:owner_type_nbr" json:"owner_type_nbr"`
	Active       bool      `gorm:"column:active_ind;default:true" json:"active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Mount) TableName() string {
	return "mount_t"
}

func (m Mount) EntityID() uint {
	return m.ID
}

func (m *Mount) AssignOwner(id uint, ownerType OwnerType) {
	m.OwnerID = id
	m.OwnerTypeNbr = ownerType
}

func (m *Mount) ClearOwner() {
	m.OwnerID = 0
	m.OwnerTypeNbr = 0
}

func (m Mount) OwnerRef() (uint, OwnerType, bool) {
	if m.OwnerID == 0 {
		return 0, 0, false
	}
	return m.OwnerID, m.OwnerTypeNbr, true
}
