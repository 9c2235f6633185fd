package court_test

import (
	"context"
	"testing"

	"github.com/hanksha/sports-club-backend/court"
	court_mocks "github.com/hanksha/sports-club-backend/court/mocks"
	"github.com/hanksha/sports-club-backend/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var tennisCourt = court.Court{
	ID:           "c1",
	Name:         "Center Court",
	Type:         court.TypeTennis,
	Location:     "North wing",
	PricePerHour: pricing.Cents(2000),
	SlotTimes:    []string{"09:00", "10:00", "11:00"},
	Features:     []string{"lights"},
	Status:       court.StatusAvailable,
}

type testDeps struct {
	repo    *court_mocks.MockCourtRepository
	service *court.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := court_mocks.NewMockCourtRepository(ctrl)

	return ctrl, testDeps{repo: repo, service: court.NewService(repo), ctx: context.Background()}
}

func TestListCourts(t *testing.T) {
	t.Run("normalizes paging", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().
			ListCourts(deps.ctx, court.Filter{Search: "ten", Page: 1, Limit: court.MaxPageSize}).
			Return([]court.Court{tennisCourt}, 1, nil).Times(1)

		courts, total, err := deps.service.ListCourts(deps.ctx, court.Filter{Search: "ten", Page: -2, Limit: 500})

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, []court.Court{tennisCourt}, courts)
	})

	t.Run("public listing only shows available courts", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().
			ListCourts(deps.ctx, court.Filter{Status: court.StatusAvailable, Page: 2, Limit: court.DefaultPageSize}).
			Return([]court.Court{}, 0, nil).Times(1)

		courts, total, err := deps.service.ListPublicCourts(deps.ctx, 2, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, courts)
	})
}

func TestCreateCourt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		input := court.Court{
			Name:         "  Center Court ",
			Type:         court.TypeTennis,
			PricePerHour: pricing.Cents(2000),
			SlotTimes:    []string{"09:00", " 10:00", "09:00", ""},
			Features:     []string{" lights ", ""},
		}

		deps.repo.EXPECT().InsertCourt(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c court.Court) (court.Court, error) {
				assert.Equal(t, "Center Court", c.Name)
				assert.Equal(t, court.StatusAvailable, c.Status)
				assert.Equal(t, []string{"09:00", "10:00"}, c.SlotTimes)
				assert.Equal(t, []string{"lights"}, c.Features)
				c.ID = "c1"
				return c, nil
			}).Times(1)

		created, err := deps.service.CreateCourt(deps.ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "c1", created.ID)
	})

	invalid := map[string]court.Court{
		"missing name":   {Type: court.TypeTennis, PricePerHour: 100, SlotTimes: []string{"09:00"}},
		"unknown type":   {Name: "A", Type: "curling", PricePerHour: 100, SlotTimes: []string{"09:00"}},
		"unknown status": {Name: "A", Type: court.TypeSquash, Status: "closed", PricePerHour: 100, SlotTimes: []string{"09:00"}},
		"free court":     {Name: "A", Type: court.TypeSquash, SlotTimes: []string{"09:00"}},
		"no slots":       {Name: "A", Type: court.TypeSquash, PricePerHour: 100},
		"bad slot label": {Name: "A", Type: court.TypeSquash, PricePerHour: 100, SlotTimes: []string{"9am"}},
	}

	for name, input := range invalid {
		t.Run(name, func(t *testing.T) {
			ctrl, deps := newTestDeps(t)
			defer ctrl.Finish()

			deps.repo.EXPECT().InsertCourt(gomock.Any(), gomock.Any()).Times(0)

			_, err := deps.service.CreateCourt(deps.ctx, input)

			require.ErrorIs(t, err, court.ErrInvalidCourt)
		})
	}
}

func TestUpdateCourt(t *testing.T) {
	t.Run("applies only the given fields", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		status := court.StatusMaintenance
		price := pricing.Cents(2500)

		deps.repo.EXPECT().GetCourtByID(deps.ctx, "c1").Return(tennisCourt, nil).Times(1)
		deps.repo.EXPECT().UpdateCourt(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c court.Court) (court.Court, error) {
				assert.Equal(t, tennisCourt.Name, c.Name)
				assert.Equal(t, court.StatusMaintenance, c.Status)
				assert.Equal(t, price, c.PricePerHour)
				assert.Equal(t, tennisCourt.SlotTimes, c.SlotTimes)
				return c, nil
			}).Times(1)

		updated, err := deps.service.UpdateCourt(deps.ctx, "c1", court.Patch{Status: &status, PricePerHour: &price})

		require.NoError(t, err)
		assert.Equal(t, court.StatusMaintenance, updated.Status)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetCourtByID(deps.ctx, "nope").Return(court.Court{}, court.ErrCourtNotFound).Times(1)
		deps.repo.EXPECT().UpdateCourt(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.UpdateCourt(deps.ctx, "nope", court.Patch{})

		require.ErrorIs(t, err, court.ErrCourtNotFound)
	})

	t.Run("rejects an invalid patch", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		price := pricing.Cents(0)

		deps.repo.EXPECT().GetCourtByID(deps.ctx, "c1").Return(tennisCourt, nil).Times(1)
		deps.repo.EXPECT().UpdateCourt(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.UpdateCourt(deps.ctx, "c1", court.Patch{PricePerHour: &price})

		require.ErrorIs(t, err, court.ErrInvalidCourt)
	})
}

func TestDeleteCourt(t *testing.T) {
	ctrl, deps := newTestDeps(t)
	defer ctrl.Finish()

	deps.repo.EXPECT().DeleteCourt(deps.ctx, "c1").Return(nil).Times(1)
	deps.repo.EXPECT().DeleteCourt(deps.ctx, "c2").Return(court.ErrCourtNotFound).Times(1)

	require.NoError(t, deps.service.DeleteCourt(deps.ctx, "c1"))
	require.ErrorIs(t, deps.service.DeleteCourt(deps.ctx, "c2"), court.ErrCourtNotFound)
}

func TestHasSlot(t *testing.T) {
	assert.True(t, tennisCourt.HasSlot("10:00"))
	assert.False(t, tennisCourt.HasSlot("12:00"))
}
