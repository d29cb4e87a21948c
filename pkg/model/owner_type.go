package model

//go:generate go run github.com/dmarkham/enumer -type OwnerType -trimprefix OwnerType -transform snake -yaml -output owner_type.gen.go

// OwnerType discriminates the kind of entity an app key or assignment row
// belongs to. The set is closed; new kinds are added by appending codes here
// and registering them in the owner package.
type OwnerType int

const (
	OwnerTypeUser OwnerType = iota
	OwnerTypeApplication
	OwnerTypeService
	OwnerTypeInstance
	OwnerTypeServer
	OwnerTypeCluster
	OwnerTypeServiceUser
)

// Reserved platform owners live well clear of the entity codes.
const (
	OwnerTypeConsole   OwnerType = 1000
	OwnerTypeDashboard OwnerType = 1001
)
