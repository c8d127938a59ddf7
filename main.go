package main

import (
	"context"
	"log"
	"time"

	"github.com/Eursukkul/hotel-booking-service/config"
	"github.com/Eursukkul/hotel-booking-service/internal/consumer"
	"github.com/Eursukkul/hotel-booking-service/internal/handler"
	"github.com/Eursukkul/hotel-booking-service/internal/middleware"
	"github.com/Eursukkul/hotel-booking-service/internal/repository"
	"github.com/Eursukkul/hotel-booking-service/internal/service"
	"github.com/Eursukkul/hotel-booking-service/pkg/database"
	"github.com/Eursukkul/hotel-booking-service/pkg/rabbitmq"
	"github.com/Eursukkul/hotel-booking-service/pkg/tracing"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

const serviceName = "hotel-booking-service"

func main() {
	cfg := config.Load()
	ctx := context.Background()

	shutdownTracing, err := tracing.Init(ctx, serviceName, cfg.OTLPEndpoint, cfg.Env)
	if err != nil {
		log.Fatalf("failed to init tracing: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	db := database.NewPostgresDB(cfg.DSN())

	// Repositories
	bookingRepo := repository.NewBookingRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// RabbitMQ consumer: sync hotels and rooms from the catalog
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL, rabbitmq.CatalogExchange, rabbitmq.CatalogQueue, rabbitmq.CatalogBindings...)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}
	consumer.NewCatalogConsumer(hotelRepo, roomRepo).Start(ctx, msgs)

	// RabbitMQ publisher: booking notifications
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL, rabbitmq.BookingExchange)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Service
	bookingSvc := service.NewBookingService(
		repository.NewTransactor(db),
		bookingRepo,
		service.NewEligibilityChecker(enrollmentRepo, ticketRepo),
		service.NewCapacityChecker(roomRepo, bookingRepo),
		publisher,
	)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = handler.NewRequestValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": serviceName})
	})

	booking := e.Group("/booking", middleware.Authenticate(cfg.JWTSecret, sessionRepo))
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(booking)

	log.Printf("Hotel Booking Service starting on :%s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Printf("server stopped: %v", err)
	}
}
