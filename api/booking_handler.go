package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	bk "github.com/hanksha/sports-club-backend/booking"
	"github.com/hanksha/sports-club-backend/identity"
)

//go:generate mockgen -source=booking_handler.go -destination=mocks/mock_booking_handler.go

type BookingService interface {
	CreateBooking(ctx context.Context, session identity.Session, req bk.Request) (bk.Booking, error)
	GetBooking(ctx context.Context, session identity.Session, id string) (bk.Booking, error)
	ListBookings(ctx context.Context, session identity.Session, filter bk.Filter) ([]bk.Booking, error)
	ListPendingBookings(ctx context.Context, search string) ([]bk.Booking, error)
	ApproveBooking(ctx context.Context, id string) (bk.Booking, error)
	RejectBooking(ctx context.Context, id string, reason string) (bk.Booking, error)
	CancelBooking(ctx context.Context, session identity.Session, id string) error
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/pending", adminOnly, h.ListPending)
	rg.GET("/member/confirmed", h.ListConfirmed)
	rg.GET("/:id", h.GetByID)
	rg.DELETE("/:id", h.Cancel)
	rg.PATCH("/:id/approve", adminOnly, h.Approve)
	rg.PATCH("/:id/reject", adminOnly, h.Reject)
}

func (h *BookingHandler) List(c *gin.Context) {
	filter := bk.Filter{
		Status: bk.Status(c.Query("status")),
		Email:  c.Query("email"),
		Search: c.Query("search"),
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), currentSession(c), filter)

	if err != nil {
		abortWithError(c, err, "failed to retrieve bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) ListPending(c *gin.Context) {
	bookings, err := h.service.ListPendingBookings(c.Request.Context(), c.Query("search"))

	if err != nil {
		abortWithError(c, err, "failed to retrieve bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

// ListConfirmed is the member dashboard's view of paid bookings.
func (h *BookingHandler) ListConfirmed(c *gin.Context) {
	filter := bk.Filter{Status: bk.StatusConfirmed, Email: c.Query("email")}

	bookings, err := h.service.ListBookings(c.Request.Context(), currentSession(c), filter)

	if err != nil {
		abortWithError(c, err, "failed to retrieve bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, err := h.service.GetBooking(c.Request.Context(), currentSession(c), c.Param("id"))

	if err != nil {
		abortWithError(c, err, "failed to fetch booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req bk.Request

	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadBody(c, err)
		return
	}

	inserted, err := h.service.CreateBooking(c.Request.Context(), currentSession(c), req)

	if err != nil {
		abortWithError(c, err, "failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *BookingHandler) Approve(c *gin.Context) {
	booking, err := h.service.ApproveBooking(c.Request.Context(), c.Param("id"))

	if err != nil {
		abortWithError(c, err, "failed to approve booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Reject(c *gin.Context) {
	booking, err := h.service.RejectBooking(c.Request.Context(), c.Param("id"), c.Query("reason"))

	if err != nil {
		abortWithError(c, err, "failed to reject booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.service.CancelBooking(c.Request.Context(), currentSession(c), c.Param("id")); err != nil {
		abortWithError(c, err, "failed to cancel booking")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking canceled"})
}
