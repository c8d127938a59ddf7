package handler

import (
	"net/http"
	"strconv"

	"github.com/Eursukkul/hotel-booking-service/internal/dto"
	"github.com/Eursukkul/hotel-booking-service/internal/middleware"
	"github.com/Eursukkul/hotel-booking-service/internal/service"
	"github.com/labstack/echo/v4"
)

// statusByKind maps business rejections to HTTP. Errors without a kind are 500.
var statusByKind = map[service.ErrorKind]int{
	service.KindNotFound:     http.StatusNotFound,
	service.KindNotEligible:  http.StatusForbidden,
	service.KindFullCapacity: http.StatusForbidden,
	service.KindForbidden:    http.StatusForbidden,
}

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// RegisterRoutes expects g to be already guarded by middleware.Authenticate.
func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetBooking)
	g.POST("", h.CreateBooking)
	g.PUT("", h.ChangeBooking)
	g.PUT("/:bookingId", h.ChangeBooking)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	view, err := h.svc.GetCurrentBooking(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	resp, err := dto.ToBookingWithRoomResponse(view)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	roomID, err := bindRoomID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.CreateReservation(c.Request().Context(), middleware.UserID(c), roomID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: booking.ID})
}

func (h *BookingHandler) ChangeBooking(c echo.Context) error {
	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID == 0 {
		return echo.NewHTTPError(http.StatusForbidden, "bookingId is required")
	}

	roomID, err := bindRoomID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.ChangeReservation(c.Request().Context(), uint(bookingID), roomID, middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: booking.ID})
}

func bindRoomID(c echo.Context) (uint, error) {
	var req dto.BookingRequest
	if err := c.Bind(&req); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil || req.RoomID == nil {
		return 0, echo.NewHTTPError(http.StatusForbidden, "roomId is required")
	}
	return *req.RoomID, nil
}

func toHTTPError(err error) error {
	kind, ok := service.KindOf(err)
	if !ok {
		return err
	}
	return echo.NewHTTPError(statusByKind[kind], err.Error())
}
