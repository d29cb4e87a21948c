package model

import "time"

// Cluster is a named group of servers that hosts instances. Servers are
// attached through cluster_server_asgn_t rather than a column on the server.
type Cluster struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	ClusterID string    `gorm:"column:cluster_id_text;uniqueIndex" json:"cluster_id"`
	Subdomain string    `gorm:"column:subdomain_text" json:"subdomain"`
	Active    bool      `gorm:"column:active_ind;default:true" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Cluster) TableName() string {
	return "cluster_t"
}

func (c Cluster) EntityID() uint {
	return c.ID
}

// DefaultOwnerType is fixed for clusters.
func (Cluster) DefaultOwnerType() (OwnerType, bool) {
	return OwnerTypeCluster, true
}
