package models

import "time"

// Booking links a user to a room. A user holds at most one booking.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"userId"`
	RoomID    uint      `gorm:"not null;index" json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Room *Room `gorm:"foreignKey:RoomID" json:"Room,omitempty"`
}

// BookingView is the projection returned to the booking owner: the booking id
// and the full room record, nothing else.
type BookingView struct {
	ID   uint
	Room Room
}

// BookingEvent is published after a booking is created or moved.
type BookingEvent struct {
	BookingID  uint      `json:"bookingId"`
	UserID     uint      `json:"userId"`
	RoomID     uint      `json:"roomId"`
	OccurredAt time.Time `json:"occurredAt"`
}
