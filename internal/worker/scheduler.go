package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/shift-reminder/internal/model"
	"github.com/aliskhannn/shift-reminder/internal/window"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/worker/mock.go -package=mocks

type passRunner interface {
	RunPass(ctx context.Context, leadHours int) ([]model.DispatchResult, error)
}

// alertTimeout bounds delivery of a pass failure alert.
const alertTimeout = 30 * time.Second

type alerter interface {
	Alert(ctx context.Context, subject, message string)
}

// Scheduler runs a reminder pass for every lead time on a cron schedule
// and on demand.
type Scheduler struct {
	runner      passRunner
	alerts      alerter
	spec        string
	passTimeout time.Duration
	cron        *cron.Cron
}

// NewScheduler registers one cron entry per lead time. Entries never
// overlap themselves but different lead times run independently.
// alerts may be nil.
func NewScheduler(
	runner passRunner,
	alerts alerter,
	spec string,
	loc *time.Location,
	passTimeout time.Duration,
) (*Scheduler, error) {
	if loc == nil {
		loc = time.Local
	}

	logger := cronLogger{}
	s := &Scheduler{
		runner:      runner,
		alerts:      alerts,
		spec:        spec,
		passTimeout: passTimeout,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger)),
		),
	}

	for _, lead := range window.LeadTimes {
		lead := lead
		job := cron.NewChain(cron.SkipIfStillRunning(logger)).Then(cron.FuncJob(func() {
			_ = s.tick(context.Background(), lead)
		}))

		if _, err := s.cron.AddJob(spec, job); err != nil {
			return nil, fmt.Errorf("schedule %dh reminders: %w", lead, err)
		}
	}

	return s, nil
}

// Trigger runs a pass immediately on the caller's context.
func (s *Scheduler) Trigger(ctx context.Context, leadHours int) ([]model.DispatchResult, error) {
	if err := window.Validate(leadHours); err != nil {
		return nil, err
	}

	zlog.Logger.Info().Int("lead_hours", leadHours).Msg("manual reminder trigger")

	return s.runner.RunPass(ctx, leadHours)
}

// Run starts the schedule and blocks until ctx is done, then waits for
// running passes to finish.
func (s *Scheduler) Run(ctx context.Context) {
	s.cron.Start()
	zlog.Logger.Info().Str("spec", s.spec).Ints("lead_hours", window.LeadTimes).Msg("reminder scheduler started")

	<-ctx.Done()

	<-s.cron.Stop().Done()
	zlog.Logger.Print("reminder scheduler stopped")
}

// tick runs one timer pass under the pass deadline. A pass-level failure
// is reported to operators and never affects other lead times. The alert
// gets its own deadline since the pass context may already be done.
func (s *Scheduler) tick(ctx context.Context, leadHours int) error {
	passCtx := ctx
	if s.passTimeout > 0 {
		var cancel context.CancelFunc
		passCtx, cancel = context.WithTimeout(ctx, s.passTimeout)
		defer cancel()
	}

	results, err := s.runner.RunPass(passCtx, leadHours)
	if err != nil {
		zlog.Logger.Error().Err(err).Int("lead_hours", leadHours).Int("reminders", len(results)).
			Msg("reminder pass failed")

		if s.alerts != nil {
			alertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)
			defer cancel()

			s.alerts.Alert(alertCtx,
				fmt.Sprintf("%dh shift reminder pass failed", leadHours),
				fmt.Sprintf("The %dh reminder pass at %s failed: %v", leadHours, time.Now().Format(time.RFC3339), err),
			)
		}

		return err
	}

	zlog.Logger.Info().Int("lead_hours", leadHours).Int("reminders", len(results)).Msg("scheduled reminder pass done")

	return nil
}

// cronLogger routes cron's own logging into zlog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	zlog.Logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	zlog.Logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
