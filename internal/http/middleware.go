package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"volunteer-hub/internal/domain"
	"volunteer-hub/internal/service"
	"volunteer-hub/internal/session"
)

const (
	principalKey = "principal"
	loggerKey    = "logger"
)

// requestLogger logs one line per request and hands handlers a logger
// tagged with the request id.
func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", requestID)

		entry := h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		})
		c.Set(loggerKey, entry)

		c.Next()

		entry.WithFields(logrus.Fields{
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Info("http request")
	}
}

// loadPrincipal resolves the logged-in user, if any. Stale or forged
// cookies are cleared and the request continues anonymously.
func (h *Handler) loadPrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := h.sessions.PrincipalID(c.Request)
		if err != nil {
			if errors.Is(err, session.ErrInvalidToken) {
				h.log(c).WithError(err).Debug("dropping session cookie")
				h.sessions.Logout(c.Writer)
			}
			c.Next()
			return
		}

		user, err := h.users.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				h.sessions.Logout(c.Writer)
				c.Next()
				return
			}
			h.serverError(c, err)
			c.Abort()
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if principal(c) == nil {
			h.redirectWith(c, "/login", session.Info, "Please log in to access this page.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p := principal(c); p == nil || !p.IsAdmin {
			h.redirectWith(c, "/", session.Danger, "Access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}

func principal(c *gin.Context) *domain.User {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}

func (h *Handler) log(c *gin.Context) logrus.FieldLogger {
	if v, ok := c.Get(loggerKey); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return h.logger
}

// redirectWith queues a notice and redirects.
func (h *Handler) redirectWith(c *gin.Context, location, category, message string) {
	if err := h.sessions.AddFlash(c.Writer, c.Request, category, message); err != nil {
		h.log(c).WithError(err).Warn("queue flash")
	}
	c.Redirect(http.StatusFound, location)
}

// render draws a page with the queued notices, any extra notices and the
// current principal.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H, notices ...session.Flash) {
	flashes, err := h.sessions.Flashes(c.Writer, c.Request)
	if err != nil {
		h.log(c).WithError(err).Warn("read flashes")
	}
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = append(flashes, notices...)
	data["Principal"] = principal(c)
	c.HTML(status, name, data)
}

func (h *Handler) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "error.html", gin.H{"Title": "Not Found"})
}

func (h *Handler) serverError(c *gin.Context, err error) {
	h.log(c).WithError(err).Error("request failed")
	h.render(c, http.StatusInternalServerError, "error.html", gin.H{"Title": "Internal Server Error"})
}
