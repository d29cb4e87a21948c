package model

import "time"

// Instance is a hosted application instance. It belongs to the user that
// provisioned it and runs on one cluster.
type Instance struct {
	ID         uint      `gorm:"column:id;primaryKey" json:"id"`
	InstanceID string    `gorm:"column:instance_id_text;uniqueIndex" json:"instance_id"`
	UserID     uint      `gorm:"column:user_id;not null" json:"user_id"`
	ClusterID  uint      `gorm:"column:cluster_id" json:"cluster_id"`
	StateNbr   int       `gorm:"column:state_nbr" json:"state_nbr"`
	Active     bool      `gorm:"column:active_ind;default:true" json:"active"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Instance) TableName() string {
	return "instance_t"
}

func (i Instance) EntityID() uint {
	return i.ID
}

func (i Instance) OwningUserID() uint {
	return i.UserID
}

// DefaultOwnerType is fixed: an instance's own keys are bound to it, not to
// the user that provisioned it.
func (Instance) DefaultOwnerType() (OwnerType, bool) {
	return OwnerTypeInstance, true
}

// ArchivedInstance is the archive copy of a deprovisioned instance. Archive
// rows never own app keys.
type ArchivedInstance struct {
	ID         uint      `gorm:"column:id;primaryKey" json:"id"`
	InstanceID string    `gorm:"column:instance_id_text" json:"instance_id"`
	UserID     uint      `gorm:"column:user_id" json:"user_id"`
	ClusterID  uint      `gorm:"column:cluster_id" json:"cluster_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ArchivedInstance) TableName() string {
	return "instance_arch_t"
}

func (a ArchivedInstance) EntityID() uint {
	return a.ID
}

func (a ArchivedInstance) OwningUserID() uint {
	return a.UserID
}
