package handlers

import (
	"net/http"

	"luxadmin/internal/outbox"

	"github.com/gin-gonic/gin"
)

// OutboxHandler serves the archived transactional email for review.
type OutboxHandler struct {
	Archive outbox.Archive
}

// GET /dev/outbox
func (h OutboxHandler) List(c *gin.Context) {
	files, err := h.Archive.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list outbox", err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// GET /dev/outbox/email?file=<name>
func (h OutboxHandler) Read(c *gin.Context) {
	raw, err := h.Archive.Read(c.Query("file"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", raw)
}
