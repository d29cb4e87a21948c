package model

import "time"

// User is a console user, the primary owner kind. APIToken carries a
// denormalized copy of the user's app key client id for quick lookups.
type User struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Email       string    `gorm:"column:email_addr_text;uniqueIndex" json:"email"`
	FirstName   string    `gorm:"column:first_name_text" json:"first_name"`
	LastName    string    `gorm:"column:last_name_text" json:"last_name"`
	DisplayName string    `gorm:"column:display_name_text" json:"display_name"`
	APIToken    string    `gorm:"column:api_token_text" json:"-"`
	Active      bool      `gorm:"column:active_ind;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "user_t"
}

func (u User) EntityID() uint {
	return u.ID
}

// DefaultOwnerType is fixed for users.
func (User) DefaultOwnerType() (OwnerType, bool) {
	return OwnerTypeUser, true
}

func (u *User) SetAPIToken(token string) {
	u.APIToken = token
}
