package format

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "KES 0"},
		{1, "KES 1"},
		{999, "KES 999"},
		{1000, "KES 1,000"},
		{1500.4, "KES 1,500"},
		{1234567, "KES 1,234,567"},
		{100000000, "KES 100,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount))
		})
	}
}

func TestRelTime_Boundaries(t *testing.T) {
	now := time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "just now"},
		{59 * time.Second, "just now"},
		{60 * time.Second, "1m ago"},
		{3599 * time.Second, "59m ago"},
		{3600 * time.Second, "1h ago"},
		{23*time.Hour + 59*time.Minute, "23h ago"},
		{86400 * time.Second, "yesterday"},
		{47 * time.Hour, "yesterday"},
		{48 * time.Hour, "2d ago"},
		{6 * 24 * time.Hour, "6d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.ago.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, RelTime(now, now.Add(-tt.ago)))
		})
	}
}

func TestRelTime_AbsoluteFromAWeek(t *testing.T) {
	now := time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)
	ts := now.Add(-7 * 24 * time.Hour)

	assert.Equal(t, "Aug 13, 2026", RelTime(now, ts))
}

func TestRelTime_Pure(t *testing.T) {
	now := time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)
	ts := now.Add(-90 * time.Minute)

	first := RelTime(now, ts)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, RelTime(now, ts), fmt.Sprintf("call %d", i))
	}
}
