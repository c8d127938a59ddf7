package models

import "time"

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

type Enrollment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CPF       string    `gorm:"column:cpf;not null" json:"cpf"`
	Birthday  time.Time `gorm:"not null" json:"birthday"`
	Phone     string    `gorm:"not null" json:"phone"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TicketType struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Price         int       `gorm:"not null" json:"price"`
	IsRemote      bool      `gorm:"not null" json:"isRemote"`
	IncludesHotel bool      `gorm:"not null" json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Ticket struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	TicketTypeID uint         `gorm:"not null" json:"ticketTypeId"`
	EnrollmentID uint         `gorm:"not null;uniqueIndex" json:"enrollmentId"`
	Status       TicketStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`

	TicketType *TicketType `gorm:"foreignKey:TicketTypeID" json:"TicketType,omitempty"`
}
