package model

import "time"

// Snapshot is a point-in-time export of an instance, attached to the user
// that requested it.
type Snapshot struct {
	ID         uint      `gorm:"column:id;primaryKey" json:"id"`
	SnapshotID string    `gorm:"column:snapshot_id_text;uniqueIndex" json:"snapshot_id"`
	UserID     uint      `gorm:"column:user_id;not null" json:"user_id"`
	InstanceID uint      `gorm:"column:instance_id" json:"instance_id"`
	SizeBytes  int64     `gorm:"column:byte_count_nbr" json:"size_bytes"`
	Active     bool      `gorm:"column:active_ind;default:true" json:"active"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Snapshot) TableName() string {
	return "snapshot_t"
}

func (s Snapshot) EntityID() uint {
	return s.ID
}

func (s Snapshot) OwningUserID() uint {
	return s.UserID
}
