package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"courier/internal/handler"
	"courier/internal/middleware"
	"courier/internal/session"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	UserHandler     *handler.UserHandler
	BookingHandler  *handler.BookingHandler
	TrackingHandler *handler.TrackingHandler
	AdminHandler    *handler.AdminHandler
	SessionStore    session.Store
	NewRelicApp     *newrelic.Application
	TemplatesGlob   string
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.SessionMiddleware(deps.SessionStore))

	router.LoadHTMLGlob(deps.TemplatesGlob)

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/home")
	})

	// Customer pages.
	home := router.Group("/home")
	{
		home.GET("", deps.BookingHandler.Home)
		home.GET("/bookCourier", deps.BookingHandler.ShowBookCourier)
		home.POST("/bookCourier", deps.BookingHandler.BookCourier)
		home.GET("/trackCourier", deps.TrackingHandler.ShowTrackCourier)
		home.POST("/trackCourier", deps.TrackingHandler.TrackCourier)
		home.GET("/myBookings", deps.BookingHandler.MyBookings)
		home.GET("/register", deps.UserHandler.ShowRegister)
		home.POST("/register", deps.UserHandler.Register)
	}

	// Login and logout.
	router.GET("/login", deps.UserHandler.ShowLogin)
	router.POST("/login", deps.UserHandler.Login)
	router.GET("/logout", deps.UserHandler.Logout)

	// Admin pages.
	admin := router.Group("/admin")
	{
		admin.GET("", deps.AdminHandler.Dashboard)
		admin.GET("/bookings", deps.AdminHandler.Bookings)
		admin.POST("/bookings/update/:courierId", deps.AdminHandler.UpdateBooking)
		admin.GET("/users", deps.AdminHandler.Users)
	}

	return router
}
