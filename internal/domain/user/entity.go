// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Role values
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents the user entity. The role string is the source of
// truth for authorization; the legacy is_admin flag is retained because
// migrated data carries both, and either grants admin access.
type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null;size:255" json:"name"`
	Email       string     `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password    string     `gorm:"not null;size:255" json:"-"`
	Role        string     `gorm:"size:20;default:'user'" json:"role"`
	IsAdmin     bool       `gorm:"default:false" json:"is_admin"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// BeforeCreate normalizes the email before insertion
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.Email = strings.ToLower(u.Email)
	return nil
}

// HasAdminAccess reports whether the user may use the admin surface
func (u *User) HasAdminAccess() bool {
	return u.Role == RoleAdmin || u.IsAdmin
}
