package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitReport(t *testing.T) {
	base := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	tests := []struct {
		name      string
		cur       sql.DBStats
		wantOK    bool
		wantLevel slog.Level
		wantAvg   time.Duration
	}{
		{
			name:   "no new waits",
			cur:    base,
			wantOK: false,
		},
		{
			name:      "short waits stay at debug",
			cur:       sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 20*time.Millisecond},
			wantOK:    true,
			wantLevel: slog.LevelDebug,
			wantAvg:   10 * time.Millisecond,
		},
		{
			name:      "long waits warn",
			cur:       sql.DBStats{WaitCount: 11, WaitDuration: time.Second + 80*time.Millisecond},
			wantOK:    true,
			wantLevel: slog.LevelWarn,
			wantAvg:   80 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, attrs, ok := poolWaitReport(base, tt.cur)

			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Empty(t, attrs)

				return
			}
			assert.Equal(t, tt.wantLevel, level)
			for _, attr := range attrs {
				if attr.Key == "avg_wait" {
					assert.Equal(t, tt.wantAvg, attr.Value.Duration())
				}
			}
		})
	}
}
