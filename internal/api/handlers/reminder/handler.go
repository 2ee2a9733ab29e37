package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/shift-reminder/internal/api/dto"
	"github.com/aliskhannn/shift-reminder/internal/api/respond"
	"github.com/aliskhannn/shift-reminder/internal/model"
	"github.com/aliskhannn/shift-reminder/internal/repository/delivery"
	"github.com/aliskhannn/shift-reminder/internal/service/reminder"
	"github.com/aliskhannn/shift-reminder/internal/window"
)

// maxHistoryLimit caps the page size of a history query.
const maxHistoryLimit = 500

// reminderTrigger runs a reminder pass on demand.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mock.go -package=mocks
type reminderTrigger interface {
	Trigger(ctx context.Context, leadHours int) ([]model.DispatchResult, error)
}

// deliveryLedger is the read side of the delivery ledger.
type deliveryLedger interface {
	Query(ctx context.Context, f model.DeliveryFilter) ([]model.DeliveryRecord, error)
	RecentFailures() []model.Failure
}

// Handler serves the manual trigger and the delivery introspection endpoints.
type Handler struct {
	trigger   reminderTrigger
	ledger    deliveryLedger
	validator *validator.Validate
}

func NewHandler(t reminderTrigger, l deliveryLedger, v *validator.Validate) *Handler {
	return &Handler{trigger: t, ledger: l, validator: v}
}

// Trigger handles POST requests that run a reminder pass immediately.
//
// Only lead times of 2 and 24 hours are accepted. The response lists the
// shifts whose owner was reached on at least one channel; failed
// attempts are visible through Failures.
func (h *Handler) Trigger(c *ginext.Context) {
	var req dto.TriggerRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Int("hours", req.Hours).Msg("invalid lead time")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("hours must be 2 or 24"))
		return
	}

	results, err := h.trigger.Trigger(c.Request.Context(), req.Hours)
	if err != nil {
		switch {
		case errors.Is(err, window.ErrInvalidLeadTime):
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("hours must be 2 or 24"))
		case errors.Is(err, reminder.ErrRepositoryUnavailable):
			zlog.Logger.Error().Err(err).Int("hours", req.Hours).Msg("reminder pass abandoned")
			respond.Fail(c.Writer, http.StatusServiceUnavailable, fmt.Errorf("shift repository unavailable"))
		default:
			zlog.Logger.Error().Err(err).Int("hours", req.Hours).Msg("failed to trigger reminders")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	sent := make([]dto.SentReminder, 0, len(results))
	for _, r := range results {
		if !r.Delivered {
			continue
		}
		sent = append(sent, dto.SentReminder{ShiftID: r.ShiftID, UserID: r.UserID, Phone: r.Phone})
	}

	respond.JSON(c.Writer, http.StatusOK, dto.TriggerResponse{
		Success:       true,
		Message:       fmt.Sprintf("Triggered %d-hour reminders", req.Hours),
		RemindersSent: len(sent),
		Reminders:     sent,
	})
}

// Failures returns the recent failed attempts kept in process memory.
func (h *Handler) Failures(c *ginext.Context) {
	respond.OK(c.Writer, h.ledger.RecentFailures())
}

// History returns durable delivery records of one user, newest first.
// from and to are optional RFC 3339 bounds.
func (h *Handler) History(c *ginext.Context) {
	userID := c.Param("userId")
	if userID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user id"))
		return
	}

	f := model.DeliveryFilter{UserID: userID, Limit: delivery.DefaultLimit}

	var err error
	if f.From, err = parseTime(c.Query("from")); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid from: %w", err))
		return
	}
	if f.To, err = parseTime(c.Query("to")); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid to: %w", err))
		return
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
		f.Limit = min(limit, maxHistoryLimit)
	}

	records, err := h.ledger.Query(c.Request.Context(), f)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to query delivery history")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, records)
}

// Health reports that the process is serving requests.
func (h *Handler) Health(c *ginext.Context) {
	respond.OK(c.Writer, "ok")
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339, raw)
}
