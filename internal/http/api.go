package http

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"volunteer-hub/internal/domain"
	"volunteer-hub/internal/service"
	"volunteer-hub/internal/session"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Handler wires HTTP routes to domain services.
type Handler struct {
	users         service.UserService
	activities    service.ActivityService
	registrations service.RegistrationService
	sessions      *session.Manager
	logger        *logrus.Logger
	templates     *template.Template
}

func NewHandler(
	users service.UserService,
	activities service.ActivityService,
	registrations service.RegistrationService,
	sessions *session.Manager,
	logger *logrus.Logger,
) (*Handler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"date": func(t time.Time) string { return t.Format(domain.DateLayout) },
	}).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logrus.New()
	}

	return &Handler{
		users:         users,
		activities:    activities,
		registrations: registrations,
		sessions:      sessions,
		logger:        logger,
		templates:     tmpl,
	}, nil
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(h.templates)
	router.Use(h.requestLogger(), h.loadPrincipal())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	router.GET("/", h.listActivities)
	router.GET("/signup", h.signupForm)
	router.POST("/signup", h.signup)
	router.GET("/login", h.loginForm)
	router.POST("/login", h.login)
	router.GET("/logout", h.requireAuth(), h.logout)
	router.GET("/register/:id", h.registerForm)
	router.POST("/register/:id", h.register)

	admin := router.Group("/admin", h.requireAuth(), h.requireAdmin())
	{
		admin.GET("", h.adminDashboard)
		admin.GET("/activity/new", h.newActivityForm)
		admin.POST("/activity/new", h.createActivity)
		admin.GET("/approve/:id", h.setRegistrationStatus(domain.RegistrationStatusApproved, "Registration approved!"))
		admin.GET("/reject/:id", h.setRegistrationStatus(domain.RegistrationStatusRejected, "Registration rejected!"))
	}

	router.NoRoute(h.notFound)
}
