package user

// Role is the access role a user holds in the review system.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEngineer Role = "engineer"
	RoleReviewer Role = "reviewer"
	RoleViewer   Role = "viewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEngineer, RoleReviewer, RoleViewer:
		return true
	}
	return false
}

// User is a member of the identity directory. Other entities reference
// users by ID only.
type User struct {
	ID     string  `gorm:"primaryKey;size:64" json:"id"`
	Name   string  `gorm:"size:100;not null" json:"name"`
	Email  string  `gorm:"size:255;not null" json:"email"`
	Role   Role    `gorm:"size:20;not null" json:"role"`
	Avatar *string `gorm:"size:16" json:"avatar,omitempty"`
}

func (User) TableName() string {
	return "users"
}
