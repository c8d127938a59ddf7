package repository

import (
	"context"

	"github.com/Eursukkul/hotel-booking-service/internal/models"
	"gorm.io/gorm"
)

type TicketRepository interface {
	FindByEnrollmentID(ctx context.Context, tx *gorm.DB, enrollmentID uint) (*models.Ticket, error)
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

// FindByEnrollmentID loads the enrollment's ticket together with its type.
func (r *ticketRepository) FindByEnrollmentID(ctx context.Context, tx *gorm.DB, enrollmentID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := tx.WithContext(ctx).
		Preload("TicketType").
		Where("enrollment_id = ?", enrollmentID).
		First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
