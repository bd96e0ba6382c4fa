package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password"`
}

type loginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// registerRequest is only bound for anonymous submissions.
type registerRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type activityRequest struct {
	Title         string `form:"title"`
	Description   string `form:"description"`
	Date          string `form:"date"`
	StartTime     string `form:"start_time"`
	EndTime       string `form:"end_time"`
	Location      string `form:"location"`
	MaxVolunteers string `form:"max_volunteers"`
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
