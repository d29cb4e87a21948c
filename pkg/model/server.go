package model

import "time"

// Server is a single host. Cluster membership lives in the assignment table,
// not here.
type Server struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	ServerID  string    `gorm:"column:server_id_text;uniqueIndex" json:"server_id"`
	Host      string    `gorm:"column:host_text" json:"host"`
	Port      int       `gorm:"column:port_nbr" json:"port"`
	Active    bool      `gorm:"column:active_ind;default:true" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Server) TableName() string {
	return "server_t"
}

func (s Server) EntityID() uint {
	return s.ID
}

// DefaultOwnerType is fixed for servers.
func (Server) DefaultOwnerType() (OwnerType, bool) {
	return OwnerTypeServer, true
}
