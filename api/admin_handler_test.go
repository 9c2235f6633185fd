package api_test

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/sports-club-backend/api"
	mock_api "github.com/hanksha/sports-club-backend/api/mocks"
	bk "github.com/hanksha/sports-club-backend/booking"
	"github.com/hanksha/sports-club-backend/court"
	"github.com/hanksha/sports-club-backend/identity"
	"github.com/hanksha/sports-club-backend/pricing"
	"github.com/hanksha/sports-club-backend/user"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type adminMocks struct {
	bookings *mock_api.MockBookingStats
	courts   *mock_api.MockCourtCounter
	users    *mock_api.MockUserCounter
	revenue  *mock_api.MockRevenueReporter
}

func setupAdminRouter(t *testing.T, session identity.Session) (*gin.Engine, *gomock.Controller, adminMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	router, rg := newGroup(session, "/admin")
	mocks := adminMocks{
		bookings: mock_api.NewMockBookingStats(ctrl),
		courts:   mock_api.NewMockCourtCounter(ctrl),
		users:    mock_api.NewMockUserCounter(ctrl),
		revenue:  mock_api.NewMockRevenueReporter(ctrl),
	}
	api.NewAdminHandler(mocks.bookings, mocks.courts, mocks.users, mocks.revenue).Register(rg)

	return router, ctrl, mocks
}

func TestGetMetrics(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mocks := setupAdminRouter(t, admin)
		defer ctrl.Finish()

		mocks.courts.EXPECT().CountCourts(gomock.Any()).Return(4, nil).Times(1)
		mocks.users.EXPECT().Counts(gomock.Any()).Return(user.Counts{TotalUsers: 10, TotalMembers: 3, TotalAdmins: 1}, nil).Times(1)
		mocks.bookings.EXPECT().CountBookingsPerStatus(gomock.Any()).Return(bk.StatusCounts{Pending: 2, Approved: 1, Confirmed: 5}, nil).Times(1)
		mocks.revenue.EXPECT().TotalRevenue(gomock.Any()).Return(pricing.Cents(12550), nil).Times(1)

		w := serve(t, router, "GET", "/admin/metrics", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{
			"totalCourts": 4,
			"totalUsers": 10,
			"totalMembers": 3,
			"totalAdmins": 1,
			"bookings": {"pending": 2, "approved": 1, "rejected": 0, "confirmed": 5},
			"totalRevenue": 125.50
		}`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		router, ctrl, mocks := setupAdminRouter(t, admin)
		defer ctrl.Finish()

		mocks.courts.EXPECT().CountCourts(gomock.Any()).Return(0, assert.AnError).Times(1)

		w := serve(t, router, "GET", "/admin/metrics", nil)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to get metrics"}`, w.Body.String())
	})

	t.Run("member is rejected", func(t *testing.T) {
		router, ctrl, _ := setupAdminRouter(t, member)
		defer ctrl.Finish()

		w := serve(t, router, "GET", "/admin/metrics", nil)

		assert.Equal(t, 403, w.Code)
	})
}

func TestCourtTypeStats(t *testing.T) {
	stats := []bk.CourtTypeBookingCount{{CourtType: court.TypeTennis, Count: 3}}

	t.Run("all time", func(t *testing.T) {
		router, ctrl, mocks := setupAdminRouter(t, admin)
		defer ctrl.Finish()

		mocks.bookings.EXPECT().GetBookingCountPerCourtType(gomock.Any()).Return(stats, nil).Times(1)

		w := serve(t, router, "GET", "/admin/stats/court-type", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[{"courtType":"tennis","bookingCount":3}]`, w.Body.String())
	})

	t.Run("in period", func(t *testing.T) {
		router, ctrl, mocks := setupAdminRouter(t, admin)
		defer ctrl.Finish()

		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
		mocks.bookings.EXPECT().GetBookingCountPerCourtTypeInPeriod(gomock.Any(), start, end).Return(stats, nil).Times(1)

		w := serve(t, router, "GET", "/admin/stats/court-type?startPeriod=2025-06-01&endPeriod=2025-06-30", nil)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("bad period", func(t *testing.T) {
		router, ctrl, _ := setupAdminRouter(t, admin)
		defer ctrl.Finish()

		w := serve(t, router, "GET", "/admin/stats/court-type?startPeriod=2025-06-01&endPeriod=june", nil)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse endPeriod"}`, w.Body.String())
	})
}

func TestWeekDayStats(t *testing.T) {
	router, ctrl, mocks := setupAdminRouter(t, admin)
	defer ctrl.Finish()

	mocks.bookings.EXPECT().GetBookingCountPerWeekDay(gomock.Any()).Return([]bk.WeekDayBookingCount{}, nil).Times(1)

	w := serve(t, router, "GET", "/admin/stats/day", nil)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
