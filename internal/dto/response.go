package dto

import (
	"time"

	"github.com/Eursukkul/hotel-booking-service/internal/models"
	"github.com/jinzhu/copier"
)

type BookingIDResponse struct {
	BookingID uint `json:"bookingId"`
}

type RoomResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   uint      `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BookingWithRoomResponse struct {
	ID   uint         `json:"id"`
	Room RoomResponse `json:"Room"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingWithRoomResponse(v *models.BookingView) (BookingWithRoomResponse, error) {
	resp := BookingWithRoomResponse{ID: v.ID}
	if err := copier.Copy(&resp.Room, &v.Room); err != nil {
		return BookingWithRoomResponse{}, err
	}
	return resp, nil
}
