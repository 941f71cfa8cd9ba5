package domain

import "time"

// Review Model
type Review struct {
	ID          uint      `gorm:"primaryKey" json:"id"`       // Primary key
	Destination string    `gorm:"index;not null" json:"destination"` // Reviewed destination
	Rating      int       `gorm:"not null" json:"rating"`     // Caller-supplied scale
	Comment     string    `gorm:"type:text" json:"comment"`
	UserID      uint      `gorm:"not null" json:"user_id"` // Authoring user
	CreatedAt   time.Time `json:"created_at"`
}

// ReviewWithAuthor is the read-side shape of a review joined with the
// authoring username.
type ReviewWithAuthor struct {
	ID          uint      `json:"id"`
	Destination string    `json:"destination"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username"` // Joined from users
	CreatedAt   time.Time `json:"created_at"`
}
