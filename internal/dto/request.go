package dto

type BookingRequest struct {
	RoomID *uint `json:"roomId" validate:"required"`
}
