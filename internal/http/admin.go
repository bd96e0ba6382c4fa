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

func (h *Handler) adminDashboard(c *gin.Context) {
	dashboard, err := h.activities.Dashboard(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "admin.html", gin.H{
		"Title":         "Admin",
		"Activities":    dashboard.Activities,
		"Registrations": dashboard.Registrations,
	})
}

func (h *Handler) newActivityForm(c *gin.Context) {
	h.render(c, http.StatusOK, "new_activity.html", gin.H{"Title": "New activity"})
}

func (h *Handler) createActivity(c *gin.Context) {
	var req activityRequest
	_ = c.ShouldBind(&req)

	activity, err := h.activities.Create(c.Request.Context(), service.ActivityInput{
		Title:         req.Title,
		Description:   req.Description,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Location:      req.Location,
		MaxVolunteers: req.MaxVolunteers,
	})
	if err != nil {
		var message string
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			message = "Invalid date format. Please use YYYY-MM-DD"
		case errors.Is(err, service.ErrInvalidCapacity):
			message = "Max volunteers must be a whole number"
		case errors.Is(err, service.ErrTitleRequired):
			message = "Title is required"
		default:
			h.serverError(c, err)
			return
		}
		h.render(c, http.StatusOK, "new_activity.html", gin.H{"Title": "New activity"},
			session.Flash{Category: session.Danger, Message: message})
		return
	}

	h.log(c).WithField("activity_id", activity.ID).Info("activity created")
	h.redirectWith(c, "/admin", session.Success, "Activity created successfully!")
}

func (h *Handler) setRegistrationStatus(status domain.RegistrationStatus, notice string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			h.notFound(c)
			return
		}

		if _, err := h.registrations.SetStatus(c.Request.Context(), id, status); err != nil {
			if errors.Is(err, service.ErrRegistrationNotFound) {
				h.notFound(c)
				return
			}
			h.serverError(c, err)
			return
		}

		h.log(c).WithFields(logrus.Fields{
			"registration_id": id,
			"status":          status,
		}).Info("registration reviewed")
		h.redirectWith(c, "/admin", session.Success, notice)
	}
}
