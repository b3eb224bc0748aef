package api

import (
	"log"
	stdhttp "net/http"

	intconfig "luxadmin/internal/config"
	h "luxadmin/internal/http/handlers"
	"luxadmin/internal/http/middleware"
	"luxadmin/internal/notifications"
	"luxadmin/internal/outbox"
	"luxadmin/internal/repositories"
	"luxadmin/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps carries the shared collaborators the handlers need.
type Deps struct {
	Bookings repositories.BookingRepository
	Gateway  services.Gateway
	Outbox   outbox.Archive
	Store    *notifications.Store
	Hub      *notifications.Hub
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	bookings := h.BookingHandler{Repo: deps.Bookings, Gateway: deps.Gateway, Outbox: deps.Outbox}
	notifs := h.NotificationHandler{Store: deps.Store, Hub: deps.Hub, Repo: deps.Bookings}
	mail := h.OutboxHandler{Archive: deps.Outbox}
	auth := h.AuthHandler{Secret: []byte(env.JWTSecret)}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)
	}

	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/login", auth.Login)
		v1.POST("/auth/register", auth.Register)

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAuth([]byte(env.JWTSecret)), middleware.RequireRoles("owner", "admin"))
		{
			admin.GET("/bookings", bookings.List)
			admin.GET("/bookings/:id", bookings.Get)
			admin.PATCH("/bookings/:id", bookings.Update)
			admin.PATCH("/bookings/:id/status", bookings.UpdateStatus)
			admin.DELETE("/bookings/:id/soft", bookings.SoftDelete)
			admin.DELETE("/bookings/:id/hard", bookings.HardDelete)
			admin.POST("/bookings/:id/charge", bookings.Charge)
			admin.GET("/bookings/:id/receipt", bookings.Receipt)

			admin.GET("/stats", bookings.Stats)

			admin.GET("/notifications", notifs.List)
			admin.POST("/notifications/read", notifs.MarkRead)
			admin.POST("/notifications/read-all", notifs.MarkAllRead)
			admin.GET("/notifications/ws", notifs.Watch)
		}
	}

	// Dev-only email archive, open like the rest of the dev surface.
	dev := r.Group("/dev")
	{
		dev.GET("/outbox", mail.List)
		dev.GET("/outbox/email", mail.Read)
	}

	h.SetRouter(r)
	return r
}
