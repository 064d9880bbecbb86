package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateStringUsesISTDay(t *testing.T) {
	// 18:29 UTC is still the same IST day, 18:30 UTC tips over.
	before := time.Date(2025, 3, 10, 18, 29, 0, 0, time.UTC)
	after := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-10", DateString(before))
	assert.Equal(t, "2025-03-11", DateString(after))
}

func TestDateStringNormalizesZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// Same instant, different wall clocks.
	utc := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, DateString(utc), DateString(utc.In(ny)))
}

func TestYesterday(t *testing.T) {
	assert.Equal(t, "2025-02-28", Yesterday("2025-03-01"))
	assert.Equal(t, "2024-12-31", Yesterday("2025-01-01"))
	assert.Equal(t, "", Yesterday("not-a-date"))
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		lastActive string
		current    int
		today      string
		want       int
	}{
		{"first ever activity", "", 0, "2025-03-10", 1},
		{"same day is idempotent", "2025-03-10", 4, "2025-03-10", 4},
		{"consecutive day extends", "2025-03-09", 4, "2025-03-10", 5},
		{"two day gap resets", "2025-03-08", 9, "2025-03-10", 1},
		{"long gap resets", "2024-11-01", 30, "2025-03-10", 1},
		{"month boundary extends", "2025-02-28", 2, "2025-03-01", 3},
		{"year boundary extends", "2024-12-31", 7, "2025-01-01", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.lastActive, tt.current, tt.today))
		})
	}
}

func TestComputeFutureLastActiveResets(t *testing.T) {
	// A stored date ahead of today (clock skew) is neither today nor
	// yesterday, so it resets.
	assert.Equal(t, 1, Compute("2025-03-11", 5, "2025-03-10"))
}
