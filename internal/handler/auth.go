package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kiema2001/prof-mbinda-backend/internal/auth"
	"github.com/kiema2001/prof-mbinda-backend/internal/middleware"
	"github.com/kiema2001/prof-mbinda-backend/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and mints a session. Bad email and bad
// password produce identical responses.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email and password required",
		})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid credentials",
			})
			return
		}
		h.fail(c, "login failed", err)
		return
	}

	if h.cookieCarrier() {
		session.SetCookie(
			c.Writer,
			token,
			time.Now().Add(h.auth.TTL()),
			session.CookieOptions{
				Secure:   true,
				SameSite: http.SameSiteLaxMode,
			},
		)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Logout destroys the presented session. Guard-wrapped, so reaching
// here means the token was valid; the response is success either way.
func (h *Handler) Logout(c *gin.Context) {
	token := h.token(c)
	h.auth.Logout(c.Request.Context(), token)

	if h.cookieCarrier() {
		session.ClearCookie(c.Writer, session.CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout successful",
	})
}

// Status reports whether the presented token maps to a live session.
// Public route; never 401s.
func (h *Handler) Status(c *gin.Context) {
	token := h.token(c)

	user, ok, err := h.auth.Status(c.Request.Context(), token)
	if err != nil {
		h.fail(c, "auth status check failed", err)
		return
	}

	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          user,
	})
}

// token reads the session token from the configured carrier.
func (h *Handler) token(c *gin.Context) string {
	if h.cookieCarrier() {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err != nil {
			return ""
		}
		return cookie.Value
	}
	return c.GetHeader(session.HeaderName)
}

// Me returns the identity the guard resolved for this request.
func (h *Handler) Me(c *gin.Context) {
	user, ok := middleware.UserFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication required",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
