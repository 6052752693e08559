package entity

import "time"

// User is the account record. Dating-facing attributes live on Profile;
// a user owns at most one profile, bound after profile creation.
type User struct {
	ID        uint   `gorm:"primaryKey;column:id" json:"id"`
	Name      string `gorm:"not null;column:name" json:"name"`
	Email     string `gorm:"unique;not null;column:email" json:"email"`
	Username  string `gorm:"unique;column:username" json:"username"`
	Password  string `gorm:"not null;column:password" json:"-"`
	ProfileID *uint  `gorm:"column:profile_id" json:"profile_id,omitempty"`

	ResetToken        *string    `gorm:"column:reset_token" json:"-"`
	ResetTokenExpires *time.Time `gorm:"column:reset_token_expires" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}
