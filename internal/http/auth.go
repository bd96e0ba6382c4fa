package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"volunteer-hub/internal/service"
	"volunteer-hub/internal/session"
)

func (h *Handler) signupForm(c *gin.Context) {
	h.render(c, http.StatusOK, "signup.html", gin.H{"Title": "Sign up"})
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusOK, "signup.html", gin.H{"Title": "Sign up"},
			session.Flash{Category: session.Danger, Message: "Please enter a valid email and password"})
		return
	}

	user, err := h.users.SignUp(c.Request.Context(), service.SignUpInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	switch {
	case errors.Is(err, service.ErrPasswordMismatch):
		h.render(c, http.StatusOK, "signup.html", gin.H{"Title": "Sign up"},
			session.Flash{Category: session.Danger, Message: "Passwords do not match"})
		return
	case errors.Is(err, service.ErrEmailTaken):
		h.render(c, http.StatusOK, "signup.html", gin.H{"Title": "Sign up"},
			session.Flash{Category: session.Danger, Message: "Email already registered"})
		return
	case err != nil:
		h.serverError(c, err)
		return
	}

	h.log(c).WithField("user_id", user.ID).Info("user signed up")
	h.redirectWith(c, "/login", session.Success, "Account created successfully! Please log in.")
}

func (h *Handler) loginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Log in"})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	_ = c.ShouldBind(&req)

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Log in"},
				session.Flash{Category: session.Danger, Message: "Invalid email or password"})
			return
		}
		h.serverError(c, err)
		return
	}

	if err := h.sessions.Login(c.Writer, user.ID); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) logout(c *gin.Context) {
	h.sessions.Logout(c.Writer)
	c.Redirect(http.StatusFound, "/")
}
