package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	return time.FixedZone("EAT", 3*3600)
}

func TestCompute_TargetDateIsLocalDateOfNowPlusLead(t *testing.T) {
	loc := mustLoc(t)
	base := time.Date(2025, 6, 14, 0, 0, 0, 0, loc)

	for _, lead := range LeadTimes {
		for m := 0; m < 48*60; m += 17 {
			now := base.Add(time.Duration(m) * time.Minute)

			w, err := Compute(now, lead, loc)
			require.NoError(t, err)

			target := now.Add(time.Duration(lead) * time.Hour).In(loc)
			assert.Equal(t, target.Format(DateLayout), w.Date)
			assert.Equal(t, target.Hour(), w.Hour)
			assert.Equal(t, lead, w.LeadHours)
		}
	}
}

func TestCompute_ConvertsIntoConfiguredLocation(t *testing.T) {
	// 22:30 UTC is 01:30 next day in UTC+3.
	now := time.Date(2025, 6, 14, 20, 30, 0, 0, time.UTC)

	w, err := Compute(now, LeadShort, mustLoc(t))
	require.NoError(t, err)

	assert.Equal(t, "15-06-2025", w.Date)
	assert.Equal(t, 1, w.Hour)
}

func TestCompute_InvalidLeadTime(t *testing.T) {
	for _, lead := range []int{-2, 0, 1, 3, 12, 23, 25, 48} {
		_, err := Compute(time.Now(), lead, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidLeadTime, "lead %d", lead)
	}
}

func TestCompute_Scenario24h(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 6, 14, 8, 30, 0, 0, loc)

	w, err := Compute(now, LeadLong, loc)
	require.NoError(t, err)

	assert.Equal(t, "15-06-2025", w.Date)
	assert.Equal(t, 8, w.Hour)
	assert.True(t, Matches(8, w.Hour))
}

func TestCompute_Scenario2hDateMismatch(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 6, 14, 20, 0, 0, 0, loc)

	w, err := Compute(now, LeadShort, loc)
	require.NoError(t, err)

	assert.Equal(t, "14-06-2025", w.Date)
	assert.Equal(t, 22, w.Hour)
	assert.NotEqual(t, "15-06-2025", w.Date)
}

func TestMatches_AllHours(t *testing.T) {
	for h := 0; h <= 23; h++ {
		for target := 0; target <= 23; target++ {
			d := h - target
			if d < 0 {
				d = -d
			}
			assert.Equal(t, d <= 1, Matches(h, target), "start %d target %d", h, target)
		}
	}
}

func TestMatches_NoMidnightWraparound(t *testing.T) {
	assert.False(t, Matches(0, 23))
	assert.False(t, Matches(23, 0))
	assert.True(t, Matches(23, 22))
	assert.True(t, Matches(0, 1))
}

func TestStartHour(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"08:00", 8, false},
		{"8:30", 8, false},
		{" 23:59 ", 23, false},
		{"00:15", 0, false},
		{"24:00", 0, true},
		{"ab:00", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := StartHour(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestPhrase(t *testing.T) {
	assert.Equal(t, "24 hours", Phrase(LeadLong))
	assert.Equal(t, "2 hours", Phrase(LeadShort))
}
