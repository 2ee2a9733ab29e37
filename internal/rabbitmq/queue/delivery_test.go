package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/shift-reminder/internal/model"
)

func TestEncodeEvent(t *testing.T) {
	rec := model.DeliveryRecord{
		ID:        uuid.New(),
		UserID:    "u1",
		ShiftID:   "s1",
		LeadHours: 2,
		Channel:   model.ChannelVoice,
		Outcome:   model.OutcomeFailed,
		Error:     "busy",
		Phone:     "+15550001111",
		CreatedAt: time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC),
	}

	body, err := encodeEvent(rec)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &raw))

	assert.Equal(t, rec.ID.String(), raw["id"])
	assert.Equal(t, "voice", raw["channel"])
	assert.Equal(t, "failed", raw["outcome"])
	assert.Equal(t, "busy", raw["error"])
	assert.NotContains(t, raw, "provider_id")
	assert.NotContains(t, raw, "phone")
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, DefaultQueue, valueOr("", DefaultQueue))
	assert.Equal(t, "custom", valueOr("custom", DefaultQueue))
}
