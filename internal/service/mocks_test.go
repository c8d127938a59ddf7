package service

import (
	"context"
	"sync"
	"time"

	"github.com/Eursukkul/hotel-booking-service/internal/models"
	"gorm.io/gorm"
)

// --- Transactor ---

type fakeTx struct {
	calls int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	f.calls++
	return fn(nil)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn           func(ctx context.Context, tx *gorm.DB, b *models.Booking) error
	findByUserFn       func(ctx context.Context, tx *gorm.DB, userID uint) (*models.Booking, error)
	findWithRoomFn     func(ctx context.Context, userID uint) (*models.Booking, error)
	updateRoomFn       func(ctx context.Context, tx *gorm.DB, bookingID, roomID uint) error
	countByRoomFn      func(ctx context.Context, tx *gorm.DB, roomID uint) (int64, error)
	updateRoomCallsNum int
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, b *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, b)
	}
	b.ID = 1
	return nil
}
func (m *mockBookingRepo) FindByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.Booking, error) {
	if m.findByUserFn != nil {
		return m.findByUserFn(ctx, tx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindByUserIDWithRoom(ctx context.Context, userID uint) (*models.Booking, error) {
	return m.findWithRoomFn(ctx, userID)
}
func (m *mockBookingRepo) UpdateRoom(ctx context.Context, tx *gorm.DB, bookingID, roomID uint) error {
	m.updateRoomCallsNum++
	if m.updateRoomFn != nil {
		return m.updateRoomFn(ctx, tx, bookingID, roomID)
	}
	return nil
}
func (m *mockBookingRepo) CountByRoom(ctx context.Context, tx *gorm.DB, roomID uint) (int64, error) {
	if m.countByRoomFn != nil {
		return m.countByRoomFn(ctx, tx, roomID)
	}
	return 0, nil
}

// --- Mock RoomRepository ---

type mockRoomRepo struct {
	findForUpdateFn func(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
}

func (m *mockRoomRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	return m.findForUpdateFn(ctx, tx, id)
}
func (m *mockRoomRepo) Upsert(ctx context.Context, room *models.Room) error { return nil }

// --- Mock EnrollmentRepository / TicketRepository ---

type mockEnrollmentRepo struct {
	findFn func(ctx context.Context, tx *gorm.DB, userID uint) (*models.Enrollment, error)
}

func (m *mockEnrollmentRepo) FindByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.Enrollment, error) {
	return m.findFn(ctx, tx, userID)
}

type mockTicketRepo struct {
	findFn func(ctx context.Context, tx *gorm.DB, enrollmentID uint) (*models.Ticket, error)
}

func (m *mockTicketRepo) FindByEnrollmentID(ctx context.Context, tx *gorm.DB, enrollmentID uint) (*models.Ticket, error) {
	return m.findFn(ctx, tx, enrollmentID)
}

// --- Mock EventPublisher ---

type publishedMessage struct {
	routingKey string
	payload    any
}

type mockPublisher struct {
	mu   sync.Mutex
	sent []publishedMessage
	err  error
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, publishedMessage{routingKey: routingKey, payload: payload})
	return m.err
}

// --- Fixtures ---

// enrolledRepo enrolls every user; the enrollment id mirrors the user id.
func enrolledRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{
		findFn: func(ctx context.Context, tx *gorm.DB, userID uint) (*models.Enrollment, error) {
			return &models.Enrollment{ID: userID, UserID: userID, Name: "Ada"}, nil
		},
	}
}

func ticketRepoWith(ticket *models.Ticket) *mockTicketRepo {
	return &mockTicketRepo{
		findFn: func(ctx context.Context, tx *gorm.DB, enrollmentID uint) (*models.Ticket, error) {
			if ticket == nil {
				return nil, gorm.ErrRecordNotFound
			}
			t := *ticket
			t.EnrollmentID = enrollmentID
			return &t, nil
		},
	}
}

func hotelTicket() *models.Ticket {
	return &models.Ticket{
		ID:     1,
		Status: models.TicketPaid,
		TicketType: &models.TicketType{
			ID:            1,
			Name:          "Presencial + Hotel",
			Price:         600,
			IsRemote:      false,
			IncludesHotel: true,
		},
	}
}

func eligibleChecker() EligibilityChecker {
	return NewEligibilityChecker(enrolledRepo(), ticketRepoWith(hotelTicket()))
}

// --- In-memory store: BookingRepository + RoomRepository ---

type memStore struct {
	rooms    map[uint]models.Room
	bookings map[uint]models.Booking
	nextID   uint
}

func newMemStore(rooms ...models.Room) *memStore {
	m := &memStore{rooms: map[uint]models.Room{}, bookings: map[uint]models.Booking{}}
	for _, r := range rooms {
		m.rooms[r.ID] = r
	}
	return m
}

func (m *memStore) occupancy(roomID uint) int {
	n := 0
	for _, b := range m.bookings {
		if b.RoomID == roomID {
			n++
		}
	}
	return n
}

func (m *memStore) Create(ctx context.Context, tx *gorm.DB, b *models.Booking) error {
	m.nextID++
	b.ID = m.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	m.bookings[b.ID] = *b
	return nil
}

func (m *memStore) FindByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.Booking, error) {
	for _, b := range m.bookings {
		if b.UserID == userID {
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) FindByUserIDWithRoom(ctx context.Context, userID uint) (*models.Booking, error) {
	b, err := m.FindByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	room := m.rooms[b.RoomID]
	b.Room = &room
	return b, nil
}

func (m *memStore) UpdateRoom(ctx context.Context, tx *gorm.DB, bookingID, roomID uint) error {
	b, ok := m.bookings[bookingID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.RoomID = roomID
	b.UpdatedAt = time.Now()
	m.bookings[bookingID] = b
	return nil
}

func (m *memStore) CountByRoom(ctx context.Context, tx *gorm.DB, roomID uint) (int64, error) {
	return int64(m.occupancy(roomID)), nil
}

func (m *memStore) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (m *memStore) Upsert(ctx context.Context, room *models.Room) error {
	m.rooms[room.ID] = *room
	return nil
}

func newMemService(store *memStore, publisher EventPublisher) BookingService {
	return NewBookingService(&fakeTx{}, store, eligibleChecker(), NewCapacityChecker(store, store), publisher)
}
