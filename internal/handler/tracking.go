package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courier/internal/domain"
	"courier/internal/service"
)

// TrackingHandler handles the tracking lookup pages.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// ShowTrackCourier handles GET /home/trackCourier
func (h *TrackingHandler) ShowTrackCourier(c *gin.Context) {
	sess, ok := requireRole(c, domain.RoleCustomer)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "track_courier.html", gin.H{
		"User":     sess,
		"NotFound": false,
	})
}

// TrackCourier handles POST /home/trackCourier
func (h *TrackingHandler) TrackCourier(c *gin.Context) {
	sess, ok := requireRole(c, domain.RoleCustomer)
	if !ok {
		return
	}

	result, err := h.trackingService.Track(c.Request.Context(), c.PostForm("trackingNo"))
	if err != nil {
		respondError(c, err)
		return
	}

	if !result.Found {
		c.HTML(http.StatusOK, "track_courier.html", gin.H{
			"User":     sess,
			"NotFound": true,
		})
		return
	}

	c.HTML(http.StatusOK, "track_courier.html", gin.H{
		"User":     sess,
		"NotFound": false,
		"Courier":  result.Courier,
		"Payment":  result.Payment,
		"Tracking": result.History,
	})
}
