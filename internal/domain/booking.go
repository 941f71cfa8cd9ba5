package domain

import "time"

// Booking Model
type Booking struct {
	ID               uint       `gorm:"primaryKey" json:"id"`            // Primary key
	Reference        string     `gorm:"uniqueIndex;size:36" json:"reference"` // Confirmation code handed to the guest
	HotelName        string     `gorm:"not null" json:"hotel_name"`      // Hotel being booked
	NumberOfRooms    int        `gorm:"not null" json:"number_of_rooms"` // Rooms requested
	NumberOfAdults   int        `gorm:"not null" json:"number_of_adults"`
	NumberOfChildren int        `gorm:"default:0" json:"number_of_children"`
	CostPerRoom      float64    `gorm:"not null" json:"cost_per_room"`   // Nightly rate per room
	TotalCost        float64    `gorm:"not null" json:"total_cost"`      // Derived: rooms * cost_per_room * adults
	PhoneNumber      string     `gorm:"default:null" json:"phone_number"`
	Email            string     `gorm:"default:null" json:"email"`
	UserID           uint       `gorm:"index;not null" json:"user_id"` // Owning user
	UserName         string     `gorm:"not null" json:"user_name"`     // Denormalized owner username
	CheckIn          *time.Time `json:"check_in,omitempty"`            // Optional stay window
	CheckOut         *time.Time `json:"check_out,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
