package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hanksha/sports-club-backend/jobs"
	jobs_mocks "github.com/hanksha/sports-club-backend/jobs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewScheduler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	purger := jobs_mocks.NewMockPendingPurger(ctrl)

	_, err := jobs.NewScheduler(purger, "@every 1h", 72*time.Hour)
	assert.NoError(t, err)

	_, err = jobs.NewScheduler(purger, "every now and then", 72*time.Hour)
	assert.Error(t, err)

	_, err = jobs.NewScheduler(purger, "@every 1h", 0)
	assert.Error(t, err)
}

func TestRunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("uses the configured ttl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		purger := jobs_mocks.NewMockPendingPurger(ctrl)
		scheduler, err := jobs.NewScheduler(purger, "@every 1h", 48*time.Hour)
		require.NoError(t, err)

		purger.EXPECT().PurgeStalePending(ctx, 48*time.Hour).Return(int64(3), nil).Times(1)

		purged, err := scheduler.RunOnce(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), purged)
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		purger := jobs_mocks.NewMockPendingPurger(ctrl)
		scheduler, err := jobs.NewScheduler(purger, "@every 1h", 48*time.Hour)
		require.NoError(t, err)

		boom := errors.New("connection reset")
		purger.EXPECT().PurgeStalePending(ctx, 48*time.Hour).Return(int64(0), boom).Times(1)

		_, err = scheduler.RunOnce(ctx)

		assert.ErrorIs(t, err, boom)
	})
}

func TestScheduledRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	purger := jobs_mocks.NewMockPendingPurger(ctrl)
	scheduler, err := jobs.NewScheduler(purger, "@every 1s", time.Hour)
	require.NoError(t, err)

	done := make(chan struct{})
	purger.EXPECT().PurgeStalePending(gomock.Any(), time.Hour).DoAndReturn(
		func(context.Context, time.Duration) (int64, error) {
			select {
			case <-done:
			default:
				close(done)
			}
			return 0, nil
		}).MinTimes(1)

	scheduler.Start()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("purge job never ran")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	scheduler.Stop(stopCtx)
}
