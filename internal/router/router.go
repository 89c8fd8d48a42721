package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/naijacomply/backend/api/handler"
)

type Handlers struct {
	Auth         *apiHandler.AuthHandler
	Profile      *apiHandler.ProfileHandler
	Task         *apiHandler.TaskHandler
	Document     *apiHandler.DocumentHandler
	Notification *apiHandler.NotificationHandler
	Admin        *apiHandler.AdminHandler
	Health       *apiHandler.HealthHandler
}

type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

func New(handlers Handlers, auth Middleware, adminGate Middleware) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Health)
	r.GET("/health/ready", handlers.Health.Ready)

	// Auth routes
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/refresh", handlers.Auth.Refresh)
	r.POST("/api/v1/auth/logout", handlers.Auth.Logout)

	// Profile
	r.GET("/api/v1/profile", auth(handlers.Profile.GetProfile))
	r.PUT("/api/v1/profile", auth(handlers.Profile.UpdateProfile))
	r.GET("/api/v1/profile/business", auth(handlers.Profile.GetBusinessProfile))
	r.POST("/api/v1/profile/business", auth(handlers.Profile.CreateBusinessProfile))
	r.PUT("/api/v1/profile/business", auth(handlers.Profile.UpdateBusinessProfile))

	// Compliance tasks
	r.GET("/api/v1/tasks", auth(handlers.Task.GetTasks))
	r.GET("/api/v1/tasks/stats", auth(handlers.Task.GetStats))
	r.POST("/api/v1/tasks", auth(handlers.Task.CreateTask))
	r.POST("/api/v1/tasks/defaults", auth(handlers.Task.GenerateDefaults))
	r.PUT("/api/v1/tasks/{id}", auth(handlers.Task.UpdateTask))
	r.PATCH("/api/v1/tasks/{id}/status", auth(handlers.Task.SetStatus))
	r.DELETE("/api/v1/tasks/{id}", auth(handlers.Task.DeleteTask))

	// Documents
	r.GET("/api/v1/documents", auth(handlers.Document.GetDocuments))
	r.GET("/api/v1/documents/expiring", auth(handlers.Document.GetExpiring))
	r.POST("/api/v1/documents", auth(handlers.Document.Upload))
	r.GET("/api/v1/documents/{id}/download", auth(handlers.Document.Download))
	r.PATCH("/api/v1/documents/{id}", auth(handlers.Document.Update))
	r.DELETE("/api/v1/documents/{id}", auth(handlers.Document.Delete))

	// Notifications
	r.GET("/api/v1/notifications", auth(handlers.Notification.GetNotifications))
	r.POST("/api/v1/notifications/read-all", auth(handlers.Notification.MarkAllRead))
	r.POST("/api/v1/notifications/{id}/read", auth(handlers.Notification.MarkRead))
	r.DELETE("/api/v1/notifications/{id}", auth(handlers.Notification.Delete))

	// Admin oversight, SuperAdmin only
	r.GET("/api/v1/admin/tasks", auth(adminGate(handlers.Admin.GetAllTasks)))
	r.GET("/api/v1/admin/documents", auth(adminGate(handlers.Admin.GetAllDocuments)))
	r.POST("/api/v1/admin/broadcast", auth(adminGate(handlers.Admin.Broadcast)))

	return r
}
