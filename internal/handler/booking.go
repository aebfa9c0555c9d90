package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courier/internal/domain"
	"courier/internal/service"
)

// BookingHandler handles the customer-facing pages: dashboard, booking,
// and booking history.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Home handles GET /home
func (h *BookingHandler) Home(c *gin.Context) {
	sess, ok := requireRole(c, domain.RoleCustomer)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{"User": sess})
}

// ShowBookCourier handles GET /home/bookCourier
func (h *BookingHandler) ShowBookCourier(c *gin.Context) {
	sess, ok := requireRole(c, domain.RoleCustomer)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "book_courier.html", gin.H{"User": sess})
}

// BookCourier handles POST /home/bookCourier
func (h *BookingHandler) BookCourier(c *gin.Context) {
	sess, ok := requireRole(c, domain.RoleCustomer)
	if !ok {
		return
	}

	weight, err := strconv.ParseFloat(c.PostForm("weight"), 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "book_courier.html", gin.H{
			"User":  sess,
			"Error": "Weight must be a positive number",
		})
		return
	}

	result, err := h.bookingService.BookCourier(c.Request.Context(), service.BookCourierRequest{
		SenderID:      sess.UserID,
		ReceiverName:  c.PostForm("receiverName"),
		ReceiverPhone: c.PostForm("receiverPhone"),
		Address:       c.PostForm("address"),
		Weight:        weight,
		PaymentMode:   c.PostForm("paymentMode"),
	})
	if err != nil {
		if mapErrorToHTTPStatus(err) == http.StatusBadRequest {
			c.HTML(http.StatusBadRequest, "book_courier.html", gin.H{
				"User":  sess,
				"Error": err.Error(),
			})
			return
		}
		respondError(c, err)
		return
	}

	c.HTML(http.StatusOK, "booking_success.html", gin.H{
		"User":       sess,
		"TrackingNo": result.TrackingNo,
		"Message":    "Courier booked successfully!",
	})
}

// MyBookings handles GET /home/myBookings
func (h *BookingHandler) MyBookings(c *gin.Context) {
	sess, ok := requireRole(c, domain.RoleCustomer)
	if !ok {
		return
	}

	bookings, err := h.bookingService.MyBookings(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.HTML(http.StatusOK, "my_bookings.html", gin.H{
		"User":     sess,
		"Couriers": bookings,
	})
}
