package repository

import (
	"context"

	"github.com/Eursukkul/hotel-booking-service/internal/models"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.Enrollment, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) FindByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := tx.WithContext(ctx).Where("user_id = ?", userID).First(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}
