package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Eursukkul/hotel-booking-service/internal/models"
	"github.com/Eursukkul/hotel-booking-service/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	RoutingBookingCreated = "booking.created"
	RoutingBookingChanged = "booking.changed"
)

var tracer = otel.Tracer("github.com/Eursukkul/hotel-booking-service/internal/service")

type BookingService interface {
	GetCurrentBooking(ctx context.Context, userID uint) (*models.BookingView, error)
	CreateReservation(ctx context.Context, userID, roomID uint) (*models.Booking, error)
	ChangeReservation(ctx context.Context, bookingID, roomID, userID uint) (*models.Booking, error)
}

// EventPublisher is satisfied by *rabbitmq.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type bookingService struct {
	tx          repository.Transactor
	bookingRepo repository.BookingRepository
	eligibility EligibilityChecker
	capacity    CapacityChecker
	publisher   EventPublisher
}

// NewBookingService wires the admission and query operations. A nil publisher
// disables booking notifications.
func NewBookingService(
	tx repository.Transactor,
	bookingRepo repository.BookingRepository,
	eligibility EligibilityChecker,
	capacity CapacityChecker,
	publisher EventPublisher,
) BookingService {
	return &bookingService{
		tx:          tx,
		bookingRepo: bookingRepo,
		eligibility: eligibility,
		capacity:    capacity,
		publisher:   publisher,
	}
}

func (s *bookingService) GetCurrentBooking(ctx context.Context, userID uint) (*models.BookingView, error) {
	ctx, span := tracer.Start(ctx, "BookingService.GetCurrentBooking",
		trace.WithAttributes(attribute.Int64("user.id", int64(userID))))
	defer span.End()

	booking, err := s.bookingRepo.FindByUserIDWithRoom(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = ErrBookingNotFound
		} else {
			err = fmt.Errorf("find booking for user %d: %w", userID, err)
		}
		recordError(span, err)
		return nil, err
	}

	view := &models.BookingView{ID: booking.ID}
	if booking.Room != nil {
		view.Room = *booking.Room
	}
	return view, nil
}

func (s *bookingService) CreateReservation(ctx context.Context, userID, roomID uint) (*models.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingService.CreateReservation",
		trace.WithAttributes(attribute.Int64("user.id", int64(userID)), attribute.Int64("room.id", int64(roomID))))
	defer span.End()

	var result *models.Booking

	err := s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		// 1. Ticket must allow a hotel stay
		if err := s.eligibility.CheckEligibility(ctx, tx, userID); err != nil {
			return err
		}

		// 2. Lock the room and check occupancy
		if err := s.capacity.CheckRoomAvailability(ctx, tx, roomID); err != nil {
			return err
		}

		// 3. One booking per user
		_, err := s.bookingRepo.FindByUserID(ctx, tx, userID)
		if err == nil {
			return ErrAlreadyBooked
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("find booking for user %d: %w", userID, err)
		}

		booking := &models.Booking{UserID: userID, RoomID: roomID}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			// a concurrent create for the same user lost the race on the unique index
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyBooked
			}
			return fmt.Errorf("create booking: %w", err)
		}
		result = booking
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	s.publish(ctx, RoutingBookingCreated, result)
	return result, nil
}

func (s *bookingService) ChangeReservation(ctx context.Context, bookingID, roomID, userID uint) (*models.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingService.ChangeReservation",
		trace.WithAttributes(
			attribute.Int64("booking.id", int64(bookingID)),
			attribute.Int64("room.id", int64(roomID)),
			attribute.Int64("user.id", int64(userID)),
		))
	defer span.End()

	var result *models.Booking

	err := s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		if err := s.capacity.CheckRoomAvailability(ctx, tx, roomID); err != nil {
			return err
		}

		current, err := s.bookingRepo.FindByUserID(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("find booking for user %d: %w", userID, err)
		}
		if current.ID != bookingID {
			return ErrNotBookingOwner
		}

		if err := s.bookingRepo.UpdateRoom(ctx, tx, bookingID, roomID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("update booking %d: %w", bookingID, err)
		}

		current.RoomID = roomID
		result = current
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	s.publish(ctx, RoutingBookingChanged, result)
	return result, nil
}

// publish is best effort; the booking is already committed.
func (s *bookingService) publish(ctx context.Context, routingKey string, b *models.Booking) {
	if s.publisher == nil {
		return
	}
	msg := models.BookingEvent{
		BookingID:  b.ID,
		UserID:     b.UserID,
		RoomID:     b.RoomID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, routingKey, msg); err != nil {
		log.Printf("[BookingService] failed to publish %s for booking %d: %v", routingKey, b.ID, err)
	}
}

func recordError(span trace.Span, err error) {
	if kind, ok := KindOf(err); ok {
		span.SetAttributes(attribute.String("booking.rejected", kind.String()))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
