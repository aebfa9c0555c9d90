package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courier/internal/domain"
	"courier/internal/repository"
	"courier/internal/service"
)

// deliveryDateLayout is the format of the delivery date form field.
const deliveryDateLayout = "2006-01-02"

// AdminHandler handles the admin dashboard, booking management, and user
// listing.
type AdminHandler struct {
	adminService *service.AdminService
	userRepo     repository.UserRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *service.AdminService, userRepo repository.UserRepository) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		userRepo:     userRepo,
	}
}

// Dashboard handles GET /admin
func (h *AdminHandler) Dashboard(c *gin.Context) {
	sess, ok := requireRole(c, domain.RoleAdmin)
	if !ok {
		return
	}

	report, err := h.adminService.EarningsReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"User":           sess,
		"TotalEarnings":  report.TotalEarnings,
		"MonthlyResults": report.Monthly,
		"TotalBookings":  report.TotalBookings,
	})
}

// Bookings handles GET /admin/bookings
func (h *AdminHandler) Bookings(c *gin.Context) {
	sess, ok := requireRole(c, domain.RoleAdmin)
	if !ok {
		return
	}

	bookings, err := h.adminService.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_bookings.html", gin.H{
		"User":     sess,
		"Bookings": bookings,
	})
}

// UpdateBooking handles POST /admin/bookings/update/:courierId
func (h *AdminHandler) UpdateBooking(c *gin.Context) {
	if _, ok := requireRole(c, domain.RoleAdmin); !ok {
		return
	}

	var deliveryDate time.Time
	if raw := c.PostForm("deliveryDate"); raw != "" {
		parsed, err := time.Parse(deliveryDateLayout, raw)
		if err != nil {
			c.String(http.StatusBadRequest, "invalid delivery date")
			return
		}
		deliveryDate = parsed
	}

	err := h.adminService.UpdateBooking(c.Request.Context(), service.UpdateBookingRequest{
		CourierID:      c.Param("courierId"),
		DeliveryStatus: domain.CourierStatus(c.PostForm("deliveryStatus")),
		PaymentStatus:  domain.PaymentStatus(c.PostForm("paymentStatus")),
		DeliveryDate:   deliveryDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/bookings")
}

// Users handles GET /admin/users
func (h *AdminHandler) Users(c *gin.Context) {
	sess, ok := requireRole(c, domain.RoleAdmin)
	if !ok {
		return
	}

	users, err := h.userRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_users.html", gin.H{
		"User":  sess,
		"Users": users,
	})
}
