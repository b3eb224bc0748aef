package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"luxadmin/internal/http/middleware"
	"luxadmin/internal/notifications"
	"luxadmin/internal/repositories"
	"luxadmin/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotificationHandler exposes the derived new-booking notifications and
// the read-tracking operations.
type NotificationHandler struct {
	Store *notifications.Store
	Hub   *notifications.Hub
	Repo  repositories.BookingRepository
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin enforcement happens in the CORS layer; the ws endpoint sits
	// behind the same auth middleware as the rest of the admin API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /api/v1/admin/notifications
func (h NotificationHandler) List(c *gin.Context) {
	bookings, _, err := h.Repo.List(repositories.BookingFilter{Page: 1, PageSize: 200})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to derive notifications", err)
		return
	}

	notifs := h.Store.FromBookings(bookings, utils.NowUTC())
	c.JSON(http.StatusOK, gin.H{
		"notifications": notifs,
		"unread_count":  notifications.UnreadCount(notifs),
	})
}

type markReadRequest struct {
	ID string `json:"id"`
}

// POST /api/v1/admin/notifications/read
func (h NotificationHandler) MarkRead(c *gin.Context) {
	var req markReadRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id := strings.TrimSpace(req.ID)
	if id == "" {
		RespondError(c, http.StatusBadRequest, "id is required", nil)
		return
	}
	h.Store.MarkAsRead(id)
	c.Status(http.StatusNoContent)
}

type markAllReadRequest struct {
	IDs []string `json:"ids"`
}

// POST /api/v1/admin/notifications/read-all
func (h NotificationHandler) MarkAllRead(c *gin.Context) {
	var req markAllReadRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	h.Store.MarkAllAsRead(req.IDs)
	c.Status(http.StatusNoContent)
}

// GET /api/v1/admin/notifications/ws
//
// Pushes unread-count updates whenever the read-set changes or the poller
// refreshes. Clients re-fetch the notification list on each update.
func (h NotificationHandler) Watch(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "websocket upgrade failed", err)
		return
	}

	id := h.Hub.Add(conn)
	utils.LogEvent(middleware.GetRequestID(c), "notifications", "ws_connect",
		fmt.Sprintf("role=%s clients=%d", middleware.UserRole(c), h.Hub.Count()))

	// Reader loop only to detect disconnects; clients send nothing.
	go func() {
		defer h.Hub.Remove(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
