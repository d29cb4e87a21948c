package model

import "time"

// ClusterServer records the assignment of a server to a cluster. The pair is
// the whole identity; rows are created and deleted through the ownership
// resolver, never updated.
type ClusterServer struct {
	ClusterID uint      `gorm:"column:cluster_id;primaryKey" json:"cluster_id"`
	ServerID  uint      `gorm:"column:server_id;primaryKey" json:"server_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ClusterServer) TableName() string {
	return "cluster_server_asgn_t"
}
