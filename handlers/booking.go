package handlers

import (
	"errors"
	"net/http"

	"flawless/services/booking"
	"flawless/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"flawless/models"
)

// BookingHandler exposes the booking workflows over HTTP.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// bookingError maps typed service errors to HTTP status codes.
func bookingError(c *gin.Context, err error) {
	var (
		ve *booking.ValidationError
		ne *booking.NotFoundError
		ce *booking.ConflictError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.As(err, &ne):
		c.JSON(http.StatusNotFound, gin.H{"error": ne.Message})
	case errors.As(err, &ce):
		c.JSON(http.StatusConflict, gin.H{"error": ce.Message})
	default:
		utils.GetLogger().Error("booking handler error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// The authenticated identity always wins over whatever the client sent.
	if userID, ok := c.Get("userID"); ok {
		input.UserID, _ = userID.(string)
	}

	detail, err := h.Svc.CreateBooking(input)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// GetBookedSlotsHandler handles GET /api/bookings/slots?date=YYYY-MM-DD.
func (h *BookingHandler) GetBookedSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	slots, err := h.Svc.GetBookedSlots(date)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetMyBookingsHandler handles GET /api/bookings/my-bookings.
func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	bookings, err := h.Svc.GetUserBookings(userID)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// RescheduleBookingHandler handles PUT /api/bookings/:id/reschedule.
func (h *BookingHandler) RescheduleBookingHandler(c *gin.Context) {
	var body struct {
		BookingDate string `json:"booking_date"`
		BookingTime string `json:"booking_time"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID := c.GetString("userID")
	updated, err := h.Svc.Reschedule(c.Param("id"), userID, body.BookingDate, body.BookingTime)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetAllBookingsHandler handles GET /api/bookings (admin).
func (h *BookingHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := h.Svc.GetAllBookings()
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetStatsHandler handles GET /api/bookings/stats (admin).
func (h *BookingHandler) GetStatsHandler(c *gin.Context) {
	stats, err := h.Svc.GetDashboardStats()
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UpdateStatusHandler handles PUT /api/bookings/:id/status (admin).
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	var body struct {
		Status          string `json:"status"`
		RejectionReason string `json:"rejection_reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	detail, err := h.Svc.UpdateStatus(c.Param("id"), body.Status, body.RejectionReason)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DeleteBookingHandler handles DELETE /api/bookings/:id (admin).
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Svc.DeleteBooking(c.Param("id")); err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// ResetAllBookingsHandler handles DELETE /api/bookings/actions/reset-all (admin).
func (h *BookingHandler) ResetAllBookingsHandler(c *gin.Context) {
	if err := h.Svc.ResetAllBookings(); err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all bookings deleted"})
}
