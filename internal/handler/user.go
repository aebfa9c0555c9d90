package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"courier/internal/domain"
	"courier/internal/middleware"
	"courier/internal/service"
	"courier/internal/session"
)

// cookieMaxAge matches the session store TTL.
var cookieMaxAge = int(session.TTL.Seconds())

// UserHandler handles registration, login, and logout.
type UserHandler struct {
	userService *service.UserService
	sessions    session.Store
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService, sessions session.Store) *UserHandler {
	return &UserHandler{
		userService: userService,
		sessions:    sessions,
	}
}

// ShowRegister handles GET /home/register
func (h *UserHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register handles POST /home/register
func (h *UserHandler) Register(c *gin.Context) {
	req := service.RegisterRequest{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Phone:    c.PostForm("phone"),
		Role:     domain.Role(c.PostForm("role")),
	}

	if err := h.userService.Register(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			c.HTML(http.StatusConflict, "register.html", gin.H{
				"Error": "Email already registered!",
			})
		case errors.Is(err, service.ErrInvalidName),
			errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrInvalidPassword):
			c.HTML(http.StatusBadRequest, "register.html", gin.H{
				"Error": err.Error(),
			})
		default:
			log.Printf("register: %v", err)
			c.HTML(http.StatusInternalServerError, "register.html", gin.H{
				"Error": "Error registering user.",
			})
		}
		return
	}

	c.HTML(http.StatusOK, "register.html", gin.H{
		"Success": "Registration successful! You can now login.",
	})
}

// ShowLogin handles GET /login
func (h *UserHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login handles POST /login
func (h *UserHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.userService.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"Error": "Invalid email or password",
			})
			return
		}
		respondError(c, err)
		return
	}

	key, err := h.sessions.Create(c.Request.Context(), &session.Session{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(middleware.CookieName, key, cookieMaxAge, "/", "", false, true)

	if user.Role == domain.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/home")
}

// Logout handles GET /logout. The session is destroyed unconditionally;
// a destruction error is logged, never surfaced, and the redirect to the
// login page always happens.
func (h *UserHandler) Logout(c *gin.Context) {
	if key, err := c.Cookie(middleware.CookieName); err == nil && key != "" {
		if err := h.sessions.Destroy(c.Request.Context(), key); err != nil {
			log.Printf("logout: destroy session: %v", err)
		}
	}

	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
