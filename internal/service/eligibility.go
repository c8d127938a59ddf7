package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Eursukkul/hotel-booking-service/internal/models"
	"github.com/Eursukkul/hotel-booking-service/internal/repository"
	"gorm.io/gorm"
)

type EligibilityChecker interface {
	CheckEligibility(ctx context.Context, tx *gorm.DB, userID uint) error
}

type eligibilityChecker struct {
	enrollmentRepo repository.EnrollmentRepository
	ticketRepo     repository.TicketRepository
}

func NewEligibilityChecker(enrollmentRepo repository.EnrollmentRepository, ticketRepo repository.TicketRepository) EligibilityChecker {
	return &eligibilityChecker{enrollmentRepo: enrollmentRepo, ticketRepo: ticketRepo}
}

// CheckEligibility requires the user to be enrolled and to hold a paid,
// in-person ticket whose type includes the hotel.
func (c *eligibilityChecker) CheckEligibility(ctx context.Context, tx *gorm.DB, userID uint) error {
	enrollment, err := c.enrollmentRepo.FindByUserID(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEnrollmentNotFound
		}
		return fmt.Errorf("find enrollment for user %d: %w", userID, err)
	}

	ticket, err := c.ticketRepo.FindByEnrollmentID(ctx, tx, enrollment.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("find ticket for enrollment %d: %w", enrollment.ID, err)
	}

	if reason := ineligibility(ticket); reason != "" {
		log.Printf("[Eligibility] user %d cannot book: %s", userID, reason)
		return ErrNotEligible
	}
	return nil
}

// ineligibility returns why the ticket does not grant a hotel booking, or ""
// when it does. ticket may be nil.
func ineligibility(ticket *models.Ticket) string {
	switch {
	case ticket == nil:
		return "no ticket"
	case ticket.Status != models.TicketPaid:
		return "ticket not paid"
	case ticket.TicketType == nil:
		return "ticket type missing"
	case ticket.TicketType.IsRemote:
		return "remote ticket"
	case !ticket.TicketType.IncludesHotel:
		return "ticket does not include hotel"
	default:
		return ""
	}
}
