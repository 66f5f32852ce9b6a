package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tempo/internal/domain"
)

var now = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		to        string
		days      int
		wantStart string
		wantEnd   string
	}{
		{"defaults to today", "", "", 0, "2026-03-10", "2026-03-11"},
		{"days from start", "2026-03-01", "", 7, "2026-03-01", "2026-03-08"},
		{"inclusive end day", "2026-03-01", "2026-03-02", 0, "2026-03-01", "2026-03-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := parseWindow(tt.from, tt.to, tt.days, now, time.UTC)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, w.Start.Format(dateLayout))
			assert.Equal(t, tt.wantEnd, w.End.Format(dateLayout))
		})
	}
}

func TestParseWindow_InvalidDate(t *testing.T) {
	_, err := parseWindow("10/03/2026", "", 1, now, time.UTC)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseDateTime(t *testing.T) {
	local, err := parseDateTime("2026-03-10 09:15", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC), local)

	rfc, err := parseDateTime("2026-03-10T09:15:00+01:00", time.UTC)
	require.NoError(t, err)
	assert.True(t, rfc.Equal(time.Date(2026, 3, 10, 8, 15, 0, 0, time.UTC)))

	_, err = parseDateTime("tomorrow", time.UTC)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", formatDuration(0))
	assert.Equal(t, "45m", formatDuration(45*time.Minute))
	assert.Equal(t, "1h05m", formatDuration(65*time.Minute+10*time.Second))
	assert.Equal(t, "-15m", formatDuration(-15*time.Minute))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
