package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/mkuznetsov/car-auction/internal/auctionerrors"
	"github.com/mkuznetsov/car-auction/internal/core"
)

const sessionCookieName = "jwt"

type AuthController struct {
	authService core.AuthService
	logger      *zap.Logger
}

func NewAuthController(authService core.AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := c.authService.Register(r.Context(), username, password)
	if err != nil {
		c.logger.Warn("Registration failed",
			zap.String("username", username),
			zap.Error(err))

		switch {
		case errors.Is(err, auctionerrors.ErrInvalidInput):
			writeFailure(w, r, http.StatusBadRequest, "Username and password are required")
		case errors.Is(err, auctionerrors.ErrDuplicateUsername):
			writeFailure(w, r, http.StatusBadRequest, "Username already exists")
		default:
			writeFailure(w, r, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	render.JSON(w, r, statusResponse{Success: true, Message: "Registration successful. Please login."})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, token, err := c.authService.Login(r.Context(), username, password)
	if err != nil {
		c.logger.Warn("Login failed",
			zap.String("username", username),
			zap.Error(err))

		switch {
		case errors.Is(err, auctionerrors.ErrInvalidCredentials):
			writeFailure(w, r, http.StatusUnauthorized, "Invalid username or password")
		default:
			writeFailure(w, r, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.logger.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
	})
	render.JSON(w, r, statusResponse{Success: true, Message: "Login successful"})
}

// Logout clears the session cookie and sends the browser back to the
// catalog view. Safe to call without a session.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}
