package model

import "time"

// ServiceUser is a machine account. Unlike users, its owner type is a
// mutable column so platform accounts (console, dashboard) can share the
// table with plain service users.
type ServiceUser struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	Email        string    `gorm:"column:email_addr_text;uniqueIndex" json:"email"`
	FirstName    string    `gorm:"column:first_name_text" json:"first_name"`
	LastName     string    `gorm:"column:last_name_text" json:"last_name"`
	OwnerTypeNbr OwnerType `gorm:"column:owner_type_nbr;default:6" json:"owner_type_nbr"`
	Active       bool      `gorm:"column:active_ind;default:true" json:"active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ServiceUser) TableName() string {
	return "service_user_t"
}

func (s ServiceUser) EntityID() uint {
	return s.ID
}

// DefaultOwnerType is whatever the row is configured with, normally
// OwnerTypeServiceUser.
func (s ServiceUser) DefaultOwnerType() (OwnerType, bool) {
	return s.OwnerTypeNbr, true
}
