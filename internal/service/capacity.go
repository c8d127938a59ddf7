package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/hotel-booking-service/internal/repository"
	"gorm.io/gorm"
)

type CapacityChecker interface {
	CheckRoomAvailability(ctx context.Context, tx *gorm.DB, roomID uint) error
}

type capacityChecker struct {
	roomRepo    repository.RoomRepository
	bookingRepo repository.BookingRepository
}

func NewCapacityChecker(roomRepo repository.RoomRepository, bookingRepo repository.BookingRepository) CapacityChecker {
	return &capacityChecker{roomRepo: roomRepo, bookingRepo: bookingRepo}
}

// CheckRoomAvailability locks the room row and compares its occupancy against
// capacity. The lock is held until tx ends, so whatever mutation the caller
// performs in tx cannot race another admission to the same room.
func (c *capacityChecker) CheckRoomAvailability(ctx context.Context, tx *gorm.DB, roomID uint) error {
	room, err := c.roomRepo.FindByIDForUpdate(ctx, tx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("find room %d: %w", roomID, err)
	}

	taken, err := c.bookingRepo.CountByRoom(ctx, tx, roomID)
	if err != nil {
		return fmt.Errorf("count bookings for room %d: %w", roomID, err)
	}

	if taken >= int64(room.Capacity) {
		return ErrFullCapacity
	}
	return nil
}
