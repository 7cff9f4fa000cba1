// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"classifieds_backend/internal/feature/auth/domain/entity"
	"classifieds_backend/internal/feature/auth/transport/http/dto"
	"classifieds_backend/internal/feature/auth/usecase"
	"classifieds_backend/internal/platform/session"
)

// Form feedback messages. The wording is part of the site's visible surface
// and is kept verbatim from the original pages.
const (
	msgMissingCredentials = "Please enter your email address, password and confirm your password."
	msgDuplicateEmail     = "Email already registered! Login or use another email."
	msgPasswordMismatch   = "Your password doesn't matched. Please try again."
	msgRegistered         = "You're now registered. Please login using your email and password."
	msgEmailNotFound      = "Email not found."
	msgWrongPassword      = "Incorrect password. Please try again."
)

// AuthUsecase defines the credential and session operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, email, password, confirmPassword string) error
	// Login verifies credentials and returns the matching user.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	// EstablishSession creates a server-side session for the user.
	EstablishSession(ctx context.Context, user *entity.User, userAgent, ipAddress string) (*entity.Session, error)
	// Logout destroys the session with the given ID.
	Logout(ctx context.Context, id string) error
}

// AuthHandler handles the registration, login, logout and user-page routes.
// It renders HTML templates and redirects; form errors re-render the owning
// form with a message, they never surface as error statuses.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// ShowLogin handles GET /login.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// ShowRegister handles GET /register.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register handles POST /register.
// Validation and duplicate-email failures re-render the registration form
// with the matching message; success renders the login form with a notice
// directing the user to log in.
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{"Error": msgMissingCredentials})
		return
	}

	err := h.auth.Register(c.Request.Context(), form.Email, form.Password, form.ConfirmPassword)
	switch {
	case err == nil:
		slog.Info("user registered", "email", form.Email, "remote_addr", c.ClientIP())
		c.HTML(http.StatusOK, "login.html", gin.H{"Success": msgRegistered})
	case errors.Is(err, usecase.ErrMissingCredentials):
		c.HTML(http.StatusOK, "register.html", gin.H{"Error": msgMissingCredentials})
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		c.HTML(http.StatusOK, "register.html", gin.H{"Error": msgDuplicateEmail})
	case errors.Is(err, usecase.ErrPasswordMismatch):
		c.HTML(http.StatusOK, "register.html", gin.H{"Error": msgPasswordMismatch})
	default:
		slog.Error("registration failed", "error", err, "email", form.Email)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
	}
}

// Login handles POST /login.
// On success it establishes a server-side session, sets the session cookie
// and redirects to the profile page.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": msgEmailNotFound})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		slog.Warn("login failed", "reason", "unknown email", "email", form.Email, "remote_addr", c.ClientIP())
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": msgEmailNotFound})
		return
	case errors.Is(err, usecase.ErrWrongPassword):
		slog.Warn("login failed", "reason", "wrong password", "email", form.Email, "remote_addr", c.ClientIP())
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": msgWrongPassword})
		return
	case err != nil:
		slog.Error("login failed", "error", err, "email", form.Email)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
		return
	}

	sess, err := h.auth.EstablishSession(c.Request.Context(), user, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		slog.Error("session establishment failed", "error", err, "email", form.Email)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
		return
	}

	slog.Info("user login successful", "email", form.Email, "remote_addr", c.ClientIP())
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetCookie(session.CookieName, sess.ID, maxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/profile")
}

// Logout handles GET /logout. It destroys the server-side session, expires
// the cookie and redirects home.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(session.CookieName); err == nil && id != "" {
		if err := h.auth.Logout(c.Request.Context(), id); err != nil {
			slog.Warn("session destroy failed", "error", err)
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Profile handles GET /profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, _ := session.Principal(c)
	c.HTML(http.StatusOK, "profile.html", gin.H{"User": user.Email})
}

// Messages handles GET /messages.
func (h *AuthHandler) Messages(c *gin.Context) {
	user, _ := session.Principal(c)
	c.HTML(http.StatusOK, "messages.html", gin.H{"User": user.Email})
}

// ChangePassword handles GET /changePassword. The page is view-only; the
// password-change flow itself has not shipped.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, _ := session.Principal(c)
	c.HTML(http.StatusOK, "change_password.html", gin.H{"User": user.Email})
}
