package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`            // Primary key
	Username string `gorm:"unique;not null" json:"username"` // Unique username, immutable after creation
	Password string `gorm:"not null" json:"-"`               // Bcrypt hash, never serialized
	Email    string `gorm:"default:null" json:"email"`       // Optional contact email
	FullName string `gorm:"default:null" json:"full_name"`   // Optional display name
}
