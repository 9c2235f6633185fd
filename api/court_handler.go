package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/sports-club-backend/court"
)

//go:generate mockgen -source=court_handler.go -destination=mocks/mock_court_handler.go

type CourtService interface {
	ListCourts(ctx context.Context, filter court.Filter) ([]court.Court, int, error)
	ListPublicCourts(ctx context.Context, page int, limit int) ([]court.Court, int, error)
	GetCourt(ctx context.Context, id string) (court.Court, error)
	CreateCourt(ctx context.Context, c court.Court) (court.Court, error)
	UpdateCourt(ctx context.Context, id string, patch court.Patch) (court.Court, error)
	DeleteCourt(ctx context.Context, id string) error
}

type CourtHandler struct {
	service CourtService
}

func NewCourtHandler(service CourtService) *CourtHandler {
	return &CourtHandler{service: service}
}

type courtPage struct {
	Courts []court.Court `json:"courts"`
	Total  int           `json:"total"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

func (h *CourtHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", adminOnly, h.Create)
	rg.PATCH("/:id", adminOnly, h.Update)
	rg.DELETE("/:id", adminOnly, h.Delete)
}

// RegisterPublic exposes the available courts without authentication.
func (h *CourtHandler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.ListPublic)
}

func (h *CourtHandler) List(c *gin.Context) {
	filter := court.Filter{
		Search: c.Query("search"),
		Status: court.Status(c.Query("status")),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}.Normalize()

	courts, total, err := h.service.ListCourts(c.Request.Context(), filter)

	if err != nil {
		abortWithError(c, err, "failed to retrieve courts")
		return
	}

	c.IndentedJSON(http.StatusOK, courtPage{Courts: courts, Total: total, Page: filter.Page, Limit: filter.Limit})
}

func (h *CourtHandler) ListPublic(c *gin.Context) {
	filter := court.Filter{Page: queryInt(c, "page"), Limit: queryInt(c, "limit")}.Normalize()

	courts, total, err := h.service.ListPublicCourts(c.Request.Context(), filter.Page, filter.Limit)

	if err != nil {
		abortWithError(c, err, "failed to retrieve courts")
		return
	}

	c.IndentedJSON(http.StatusOK, courtPage{Courts: courts, Total: total, Page: filter.Page, Limit: filter.Limit})
}

func (h *CourtHandler) GetByID(c *gin.Context) {
	found, err := h.service.GetCourt(c.Request.Context(), c.Param("id"))

	if err != nil {
		abortWithError(c, err, "failed to fetch court")
		return
	}

	c.IndentedJSON(http.StatusOK, found)
}

func (h *CourtHandler) Create(c *gin.Context) {
	var body court.Court

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadBody(c, err)
		return
	}

	created, err := h.service.CreateCourt(c.Request.Context(), body)

	if err != nil {
		abortWithError(c, err, "failed to create court")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *CourtHandler) Update(c *gin.Context) {
	var patch court.Patch

	if err := c.ShouldBindJSON(&patch); err != nil {
		abortBadBody(c, err)
		return
	}

	updated, err := h.service.UpdateCourt(c.Request.Context(), c.Param("id"), patch)

	if err != nil {
		abortWithError(c, err, "failed to update court")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *CourtHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteCourt(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err, "failed to delete court")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "court deleted"})
}

// queryInt returns 0 for a missing or malformed value; callers normalize.
func queryInt(c *gin.Context, key string) int {
	value, err := strconv.Atoi(c.Query(key))

	if err != nil {
		return 0
	}

	return value
}
