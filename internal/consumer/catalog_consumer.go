package consumer

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/Eursukkul/hotel-booking-service/internal/models"
	"github.com/Eursukkul/hotel-booking-service/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
)

// CatalogConsumer keeps the local hotels and rooms in sync with the catalog
// owned by the hotel service.
type CatalogConsumer struct {
	hotelRepo repository.HotelRepository
	roomRepo  repository.RoomRepository
}

func NewCatalogConsumer(hotelRepo repository.HotelRepository, roomRepo repository.RoomRepository) *CatalogConsumer {
	return &CatalogConsumer{hotelRepo: hotelRepo, roomRepo: roomRepo}
}

// Start listens for messages until msgs is closed.
func (cc *CatalogConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			cc.handleMessage(ctx, msg)
		}
		log.Println("[CatalogConsumer] channel closed, stopping consumer")
	}()
}

func (cc *CatalogConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	var err error
	switch {
	case strings.HasPrefix(msg.RoutingKey, "hotel."):
		var hotel models.Hotel
		if !decode(msg, &hotel) || !hasID(msg, hotel.ID) {
			return
		}
		err = cc.hotelRepo.Upsert(ctx, &hotel)
		if err == nil {
			log.Printf("[CatalogConsumer] synced hotel %d: %s", hotel.ID, hotel.Name)
		}
	case strings.HasPrefix(msg.RoutingKey, "room."):
		var room models.Room
		if !decode(msg, &room) || !hasID(msg, room.ID) {
			return
		}
		err = cc.roomRepo.Upsert(ctx, &room)
		if err == nil {
			log.Printf("[CatalogConsumer] synced room %d (hotel %d, capacity %d)", room.ID, room.HotelID, room.Capacity)
		}
	default:
		log.Printf("[CatalogConsumer] unexpected routing key %q", msg.RoutingKey)
		msg.Nack(false, false)
		return
	}

	if err != nil {
		log.Printf("[CatalogConsumer] failed to upsert %s: %v", msg.RoutingKey, err)
		msg.Nack(false, true) // requeue
		return
	}
	msg.Ack(false)
}

// decode and hasID nack without requeue when the payload is unusable.
func decode(msg amqp.Delivery, v any) bool {
	if err := json.Unmarshal(msg.Body, v); err != nil {
		log.Printf("[CatalogConsumer] failed to unmarshal %s: %v", msg.RoutingKey, err)
		msg.Nack(false, false)
		return false
	}
	return true
}

func hasID(msg amqp.Delivery, id uint) bool {
	if id == 0 {
		log.Printf("[CatalogConsumer] %s without id, dropping", msg.RoutingKey)
		msg.Nack(false, false)
		return false
	}
	return true
}
