package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/sports-club-backend/announcement"
)

//go:generate mockgen -source=announcement_handler.go -destination=mocks/mock_announcement_handler.go

type AnnouncementService interface {
	List(ctx context.Context, page int, limit int, status announcement.Status) (announcement.Page, error)
	Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error)
	Update(ctx context.Context, id string, patch announcement.Patch) (announcement.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type AnnouncementHandler struct {
	service AnnouncementService
}

func NewAnnouncementHandler(service AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

func (h *AnnouncementHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.GET("", h.List)
	rg.POST("", adminOnly, h.Create)
	rg.PATCH("/:id", adminOnly, h.Update)
	rg.DELETE("/:id", adminOnly, h.Delete)
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), queryInt(c, "page"), queryInt(c, "limit"), announcement.Status(c.Query("status")))

	if err != nil {
		abortWithError(c, err, "failed to retrieve announcements")
		return
	}

	c.IndentedJSON(http.StatusOK, page)
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	var body announcement.Announcement

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadBody(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), body)

	if err != nil {
		abortWithError(c, err, "failed to create announcement")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *AnnouncementHandler) Update(c *gin.Context) {
	var patch announcement.Patch

	if err := c.ShouldBindJSON(&patch); err != nil {
		abortBadBody(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)

	if err != nil {
		abortWithError(c, err, "failed to update announcement")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err, "failed to delete announcement")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "announcement deleted"})
}
