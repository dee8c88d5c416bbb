// internal/domain/newsletter/entity.go
package newsletter

import (
	"time"
)

// Subscriber represents a newsletter signup
type Subscriber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name
func (Subscriber) TableName() string {
	return "newsletter_subscribers"
}
