package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"volunteer-hub/internal/domain"
	"volunteer-hub/internal/service"
	"volunteer-hub/internal/session"
)

func (h *Handler) listActivities(c *gin.Context) {
	var viewerID int64
	if p := principal(c); p != nil {
		viewerID = p.ID
	}

	listings, err := h.activities.List(c.Request.Context(), viewerID)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "index.html", gin.H{"Activities": listings})
}

// lookupActivity resolves the :id activity, answering 404 itself when it
// does not exist. A nil result means the response has been written.
func (h *Handler) lookupActivity(c *gin.Context) *domain.Activity {
	id, ok := pathID(c)
	if !ok {
		h.notFound(c)
		return nil
	}

	activity, err := h.activities.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			h.notFound(c)
			return nil
		}
		h.serverError(c, err)
		return nil
	}
	return activity
}

// alreadyRegistered redirects home when the principal has a registration
// for activity, reporting whether it did.
func (h *Handler) alreadyRegistered(c *gin.Context, activity *domain.Activity) bool {
	p := principal(c)
	if p == nil {
		return false
	}

	registered, err := h.registrations.IsRegistered(c.Request.Context(), p.ID, activity.ID)
	if err != nil {
		h.serverError(c, err)
		return true
	}
	if registered {
		h.redirectWith(c, "/", session.Warning, "You have already registered for this activity!")
	}
	return registered
}

func (h *Handler) registerForm(c *gin.Context) {
	activity := h.lookupActivity(c)
	if activity == nil || h.alreadyRegistered(c, activity) {
		return
	}
	h.render(c, http.StatusOK, "register.html", gin.H{"Title": activity.Title, "Activity": activity})
}

func (h *Handler) register(c *gin.Context) {
	activity := h.lookupActivity(c)
	if activity == nil {
		return
	}

	p := principal(c)
	var creds service.Credentials
	if p == nil {
		var req registerRequest
		if err := c.ShouldBind(&req); err != nil {
			h.render(c, http.StatusOK, "register.html", gin.H{"Title": activity.Title, "Activity": activity},
				session.Flash{Category: session.Danger, Message: "Please enter a valid email and password"})
			return
		}
		creds = service.Credentials{Email: req.Email, Password: req.Password}
	}

	registration, err := h.registrations.Register(c.Request.Context(), activity.ID, p, creds)
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		h.notFound(c)
		return
	case errors.Is(err, service.ErrAlreadyRegistered):
		h.redirectWith(c, "/", session.Warning, "You have already registered for this activity!")
		return
	case errors.Is(err, service.ErrInvalidPassword):
		h.render(c, http.StatusOK, "register.html", gin.H{"Title": activity.Title, "Activity": activity},
			session.Flash{Category: session.Danger, Message: "Invalid password for existing email"})
		return
	case err != nil:
		h.serverError(c, err)
		return
	}

	h.log(c).WithFields(logrus.Fields{
		"registration_id": registration.ID,
		"activity_id":     activity.ID,
		"user_id":         registration.UserID,
	}).Info("registration submitted")
	h.redirectWith(c, "/", session.Success, "Registration submitted successfully!")
}
