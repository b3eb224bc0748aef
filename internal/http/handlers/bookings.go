package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"luxadmin/internal/domain"
	"luxadmin/internal/domain/models"
	"luxadmin/internal/http/middleware"
	"luxadmin/internal/outbox"
	"luxadmin/internal/repositories"
	"luxadmin/internal/services"

	"github.com/gin-gonic/gin"
)

// BookingHandler owns the admin booking endpoints.
type BookingHandler struct {
	Repo    repositories.BookingRepository
	Gateway services.Gateway
	Outbox  outbox.Archive
}

func (h BookingHandler) svc(c *gin.Context) services.BookingService {
	return services.BookingService{
		Repo:      h.Repo,
		Gateway:   h.Gateway,
		Outbox:    h.Outbox,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/v1/admin/bookings
func (h BookingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))

	filter := repositories.BookingFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   domain.Status(strings.TrimSpace(c.Query("status"))),
		Query:    c.Query("q"),
	}
	if filter.Status != "" && !domain.ValidStatus(filter.Status) {
		RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "unknown status filter"})
		return
	}

	bookings, total, err := h.Repo.List(filter)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list bookings", err)
		return
	}

	totalPages := 0
	if filter.PageSize > 0 {
		totalPages = (total + filter.PageSize - 1) / filter.PageSize
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings":    bookings,
		"total":       total,
		"page":        filter.Page,
		"page_size":   filter.PageSize,
		"total_pages": totalPages,
	})
}

// GET /api/v1/admin/bookings/:id
func (h BookingHandler) Get(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	b, err := h.Repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PATCH /api/v1/admin/bookings/:id
func (h BookingHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var upd models.BookingUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}

	b, err := h.svc(c).Edit(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type statusRequest struct {
	Status  string `json:"status"`
	Confirm bool   `json:"confirm"`
}

// PATCH /api/v1/admin/bookings/:id/status
func (h BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	b, err := h.svc(c).ChangeStatus(id, domain.Status(strings.TrimSpace(req.Status)), req.Confirm)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DELETE /api/v1/admin/bookings/:id/soft
func (h BookingHandler) SoftDelete(c *gin.Context) {
	h.delete(c, false)
}

// DELETE /api/v1/admin/bookings/:id/hard
func (h BookingHandler) HardDelete(c *gin.Context) {
	h.delete(c, true)
}

func (h BookingHandler) delete(c *gin.Context, hard bool) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.svc(c).Delete(id, hard); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/v1/admin/bookings/:id/charge
func (h BookingHandler) Charge(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req models.ChargeRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	res, err := h.svc(c).Charge(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/v1/admin/bookings/:id/receipt
func (h BookingHandler) Receipt(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	docs := services.DocsService{BookingRepo: h.Repo, RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := docs.GenerateReceipt(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/v1/admin/stats
func (h BookingHandler) Stats(c *gin.Context) {
	// The dashboard aggregates over the most recent bookings, mirroring
	// the list the operator sees.
	bookings, _, err := h.Repo.List(repositories.BookingFilter{Page: 1, PageSize: 200})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to compute stats", err)
		return
	}
	c.JSON(http.StatusOK, services.Aggregate(bookings))
}
