package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	bk "github.com/hanksha/sports-club-backend/booking"
	"github.com/hanksha/sports-club-backend/pricing"
	"github.com/hanksha/sports-club-backend/user"
)

//go:generate mockgen -source=admin_handler.go -destination=mocks/mock_admin_handler.go

type BookingStats interface {
	CountBookingsPerStatus(ctx context.Context) (bk.StatusCounts, error)
	GetBookingCountPerCourtType(ctx context.Context) ([]bk.CourtTypeBookingCount, error)
	GetBookingCountPerCourtTypeInPeriod(ctx context.Context, start time.Time, end time.Time) ([]bk.CourtTypeBookingCount, error)
	GetBookingCountPerWeekDay(ctx context.Context) ([]bk.WeekDayBookingCount, error)
}

type CourtCounter interface {
	CountCourts(ctx context.Context) (int, error)
}

type UserCounter interface {
	Counts(ctx context.Context) (user.Counts, error)
}

type RevenueReporter interface {
	TotalRevenue(ctx context.Context) (pricing.Cents, error)
}

type metrics struct {
	TotalCourts int `json:"totalCourts"`
	user.Counts
	Bookings     bk.StatusCounts `json:"bookings"`
	TotalRevenue pricing.Cents   `json:"totalRevenue"`
}

type AdminHandler struct {
	bookings BookingStats
	courts   CourtCounter
	users    UserCounter
	revenue  RevenueReporter
}

func NewAdminHandler(bookings BookingStats, courts CourtCounter, users UserCounter, revenue RevenueReporter) *AdminHandler {
	return &AdminHandler{bookings: bookings, courts: courts, users: users, revenue: revenue}
}

func (h *AdminHandler) Register(rg *gin.RouterGroup) {
	rg.Use(AdminOnly())
	rg.GET("/metrics", h.GetMetrics)
	rg.GET("/stats/court-type", h.GetCourtTypeStats)
	rg.GET("/stats/day", h.GetWeekDayStats)
}

func (h *AdminHandler) GetMetrics(c *gin.Context) {
	ctx := c.Request.Context()
	var m metrics
	var err error

	if m.TotalCourts, err = h.courts.CountCourts(ctx); err != nil {
		abortWithError(c, err, "failed to get metrics")
		return
	}

	if m.Counts, err = h.users.Counts(ctx); err != nil {
		abortWithError(c, err, "failed to get metrics")
		return
	}

	if m.Bookings, err = h.bookings.CountBookingsPerStatus(ctx); err != nil {
		abortWithError(c, err, "failed to get metrics")
		return
	}

	if m.TotalRevenue, err = h.revenue.TotalRevenue(ctx); err != nil {
		abortWithError(c, err, "failed to get metrics")
		return
	}

	c.IndentedJSON(http.StatusOK, m)
}

// GetCourtTypeStats counts bookings per court type, optionally limited to
// startPeriod..endPeriod.
func (h *AdminHandler) GetCourtTypeStats(c *gin.Context) {
	startQuery := c.Query("startPeriod")
	endQuery := c.Query("endPeriod")

	if len(startQuery) == 0 && len(endQuery) == 0 {
		stats, err := h.bookings.GetBookingCountPerCourtType(c.Request.Context())

		if err != nil {
			abortWithError(c, err, "failed to get stats")
			return
		}

		c.IndentedJSON(http.StatusOK, stats)
		return
	}

	startTime, err := time.Parse(time.DateOnly, startQuery)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse startPeriod"})
		return
	}

	endTime, err := time.Parse(time.DateOnly, endQuery)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse endPeriod"})
		return
	}

	stats, err := h.bookings.GetBookingCountPerCourtTypeInPeriod(c.Request.Context(), startTime, endTime)

	if err != nil {
		abortWithError(c, err, "failed to get stats")
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *AdminHandler) GetWeekDayStats(c *gin.Context) {
	stats, err := h.bookings.GetBookingCountPerWeekDay(c.Request.Context())

	if err != nil {
		abortWithError(c, err, "failed to get stats")
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}
