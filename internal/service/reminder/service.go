package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/shift-reminder/internal/model"
	"github.com/aliskhannn/shift-reminder/internal/window"
)

// ErrRepositoryUnavailable is returned when the shift store cannot be read
// and the whole pass is abandoned.
var ErrRepositoryUnavailable = errors.New("shift repository unavailable")

// ErrPassInterrupted is returned, with the results gathered so far, when
// the pass context ends before every due shift was attempted.
var ErrPassInterrupted = errors.New("reminder pass interrupted")

// duplicateSpan is how far back a sent record suppresses a resend. It
// covers the three hourly ticks that match a shift under the tolerance.
const duplicateSpan = (2*window.Tolerance + 1) * time.Hour

//go:generate mockgen -source=service.go -destination=../../mocks/service/reminder/mock.go -package=mocks

type shiftRepository interface {
	FindScheduledByDate(ctx context.Context, date string) ([]model.Shift, error)
}

type contactDirectory interface {
	GetContact(ctx context.Context, userID string) (model.ContactProfile, error)
}

type channelClient interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
	PlaceCall(ctx context.Context, to, script string) (string, error)
}

type deliveryLedger interface {
	Record(ctx context.Context, rec model.DeliveryRecord) error
	HasSent(ctx context.Context, shiftID string, leadHours int, channel model.Channel, since time.Time) (bool, error)
}

// Options tune a Service.
type Options struct {
	Location           *time.Location // zone shift dates and times are stored in
	ChannelTimeout     time.Duration  // bound on each provider call, zero disables it
	SuppressDuplicates bool
}

// Service finds shifts due for a reminder and dispatches SMS and voice
// reminders to their owners.
type Service struct {
	shifts    shiftRepository
	directory contactDirectory
	channel   channelClient
	ledger    deliveryLedger
	opts      Options
	now       func() time.Time
}

func NewService(
	shifts shiftRepository,
	directory contactDirectory,
	channel channelClient,
	ledger deliveryLedger,
	opts Options,
) *Service {
	return &Service{
		shifts:    shifts,
		directory: directory,
		channel:   channel,
		ledger:    ledger,
		opts:      opts,
		now:       time.Now,
	}
}

// RunPass runs one reminder pass for the lead time. Shifts are handled
// sequentially; a failure on one shift or channel never stops the rest.
func (s *Service) RunPass(ctx context.Context, leadHours int) ([]model.DispatchResult, error) {
	now := s.now()

	w, err := window.Compute(now, leadHours, s.opts.Location)
	if err != nil {
		return nil, err
	}

	log := zlog.Logger.With().Int("lead_hours", leadHours).Str("date", w.Date).Int("hour", w.Hour).Logger()
	log.Info().Msg("running reminder pass")

	shifts, err := s.shifts.FindScheduledByDate(ctx, w.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepositoryUnavailable, err)
	}

	results := make([]model.DispatchResult, 0)

	for _, sh := range shifts {
		if ctx.Err() != nil {
			break
		}

		startHour, err := window.StartHour(sh.StartTime)
		if err != nil {
			log.Warn().Err(err).Str("shift_id", sh.ID).Msg("skipping shift with malformed start time")
			continue
		}
		if !window.Matches(startHour, w.Hour) {
			continue
		}

		profile, err := s.resolveContact(ctx, sh.UserID)
		if err != nil {
			if errors.Is(err, model.ErrContactUnavailable) {
				log.Debug().Str("shift_id", sh.ID).Str("user_id", sh.UserID).Msg("recipient not reachable")
			} else {
				log.Error().Err(err).Str("shift_id", sh.ID).Str("user_id", sh.UserID).Msg("failed to resolve contact")
			}
			continue
		}

		results = append(results, s.dispatch(ctx, sh, profile, leadHours, now))
	}

	if err := ctx.Err(); err != nil {
		log.Warn().Err(err).Int("reminders", len(results)).Msg("reminder pass interrupted")
		return results, fmt.Errorf("%w: %w", ErrPassInterrupted, err)
	}

	log.Info().Int("reminders", len(results)).Msg("reminder pass finished")

	return results, nil
}

func (s *Service) resolveContact(ctx context.Context, userID string) (model.ContactProfile, error) {
	p, err := s.directory.GetContact(ctx, userID)
	if err != nil {
		return model.ContactProfile{}, err
	}
	if !p.CanReceive() {
		return model.ContactProfile{}, model.ErrContactUnavailable
	}

	return p, nil
}

// dispatch sends the SMS then the voice reminder for one shift. The two
// channels are independent: a failed SMS does not prevent the call.
func (s *Service) dispatch(
	ctx context.Context, sh model.Shift, p model.ContactProfile, leadHours int, now time.Time,
) model.DispatchResult {
	res := model.DispatchResult{
		ShiftID:   sh.ID,
		UserID:    sh.UserID,
		Phone:     p.Phone,
		LeadHours: leadHours,
	}

	sends := []struct {
		channel model.Channel
		send    func(context.Context) (string, error)
	}{
		{model.ChannelSMS, func(ctx context.Context) (string, error) {
			return s.channel.SendSMS(ctx, p.Phone, SMSText(sh, leadHours))
		}},
		{model.ChannelVoice, func(ctx context.Context) (string, error) {
			return s.channel.PlaceCall(ctx, p.Phone, VoiceScript(sh, leadHours))
		}},
	}

	for _, c := range sends {
		cr := s.send(ctx, sh, leadHours, c.channel, now, c.send)

		if !cr.Suppressed {
			rec := model.DeliveryRecord{
				UserID:     sh.UserID,
				ShiftID:    sh.ID,
				LeadHours:  leadHours,
				Channel:    c.channel,
				Outcome:    cr.Outcome,
				ProviderID: cr.ProviderID,
				Error:      cr.Error,
				Phone:      p.Phone,
			}
			if err := s.ledger.Record(ctx, rec); err != nil {
				res.LedgerErrors = append(res.LedgerErrors, err.Error())
			}
		}

		if cr.Outcome == model.OutcomeSent {
			res.Delivered = true
		}
		res.Channels = append(res.Channels, cr)
	}

	return res
}

func (s *Service) send(
	ctx context.Context,
	sh model.Shift,
	leadHours int,
	channel model.Channel,
	now time.Time,
	fn func(context.Context) (string, error),
) model.ChannelResult {
	cr := model.ChannelResult{Channel: channel}

	if s.opts.SuppressDuplicates {
		sent, err := s.ledger.HasSent(ctx, sh.ID, leadHours, channel, now.Add(-duplicateSpan))
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("shift_id", sh.ID).Str("channel", string(channel)).
				Msg("duplicate check failed, sending anyway")
		} else if sent {
			cr.Suppressed = true
			return cr
		}
	}

	cctx := ctx
	if s.opts.ChannelTimeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, s.opts.ChannelTimeout)
		defer cancel()
	}

	sid, err := fn(cctx)
	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("shift_id", sh.ID).
			Str("user_id", sh.UserID).
			Str("channel", string(channel)).
			Msg("failed to send reminder")

		cr.Outcome = model.OutcomeFailed
		cr.Error = err.Error()
		return cr
	}

	zlog.Logger.Info().Str("shift_id", sh.ID).Str("channel", string(channel)).Str("sid", sid).Msg("reminder sent")

	cr.Outcome = model.OutcomeSent
	cr.ProviderID = sid
	return cr
}
