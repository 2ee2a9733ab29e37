package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/zlog"

	mocks "github.com/aliskhannn/shift-reminder/internal/mocks/worker"
	"github.com/aliskhannn/shift-reminder/internal/model"
	"github.com/aliskhannn/shift-reminder/internal/window"
)

func TestMain(m *testing.M) {
	zlog.Init()
	os.Exit(m.Run())
}

func TestNewScheduler_RegistersEveryLeadTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, err := NewScheduler(mocks.NewMockpassRunner(ctrl), nil, "0 * * * *", time.UTC, time.Minute)
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), len(window.LeadTimes))
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewScheduler(mocks.NewMockpassRunner(ctrl), nil, "every hour", time.UTC, time.Minute)
	assert.Error(t, err)
}

func TestScheduler_Trigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockpassRunner(ctrl)
	s, err := NewScheduler(runner, nil, "0 * * * *", time.UTC, time.Minute)
	require.NoError(t, err)

	want := []model.DispatchResult{{ShiftID: "s1", UserID: "u1", Phone: "+1", Delivered: true}}
	runner.EXPECT().RunPass(gomock.Any(), 2).Return(want, nil)

	got, err := s.Trigger(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestScheduler_Trigger_InvalidLeadTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockpassRunner(ctrl)
	s, err := NewScheduler(runner, nil, "0 * * * *", time.UTC, time.Minute)
	require.NoError(t, err)

	_, err = s.Trigger(context.Background(), 12)
	assert.ErrorIs(t, err, window.ErrInvalidLeadTime)
}

func TestScheduler_Tick_FailureDoesNotAffectOtherLeadTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockpassRunner(ctrl)
	alerts := mocks.NewMockalerter(ctrl)

	s, err := NewScheduler(runner, alerts, "0 * * * *", time.UTC, time.Minute)
	require.NoError(t, err)

	repoErr := errors.New("shift repository unavailable")
	runner.EXPECT().RunPass(gomock.Any(), 24).Return(nil, repoErr)
	alerts.EXPECT().Alert(gomock.Any(), "24h shift reminder pass failed", gomock.Any())
	runner.EXPECT().RunPass(gomock.Any(), 2).Return([]model.DispatchResult{{ShiftID: "s1"}}, nil)

	assert.ErrorIs(t, s.tick(context.Background(), 24), repoErr)
	assert.NoError(t, s.tick(context.Background(), 2))
}

func TestScheduler_Tick_PassDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockpassRunner(ctrl)
	s, err := NewScheduler(runner, nil, "0 * * * *", time.UTC, 30*time.Millisecond)
	require.NoError(t, err)

	runner.EXPECT().RunPass(gomock.Any(), 24).DoAndReturn(
		func(ctx context.Context, _ int) ([]model.DispatchResult, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return nil, nil
		},
	)

	assert.NoError(t, s.tick(context.Background(), 24))
}

func TestScheduler_Tick_AlertAfterPassDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockpassRunner(ctrl)
	alerts := mocks.NewMockalerter(ctrl)

	s, err := NewScheduler(runner, alerts, "0 * * * *", time.UTC, 20*time.Millisecond)
	require.NoError(t, err)

	runner.EXPECT().RunPass(gomock.Any(), 24).DoAndReturn(
		func(ctx context.Context, _ int) ([]model.DispatchResult, error) {
			<-ctx.Done()
			return nil, fmt.Errorf("reminder pass interrupted: %w", ctx.Err())
		},
	)
	alerts.EXPECT().Alert(gomock.Any(), "24h shift reminder pass failed", gomock.Any()).Do(
		func(ctx context.Context, _, _ string) {
			assert.NoError(t, ctx.Err())
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
		},
	)

	err = s.tick(context.Background(), 24)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestScheduler_Run_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, err := NewScheduler(mocks.NewMockpassRunner(ctrl), nil, "0 * * * *", time.UTC, time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
