package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"mid week",
			time.Date(2026, 8, 27, 15, 30, 0, 0, time.UTC), // Thursday
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday stays",
			time.Date(2026, 8, 24, 0, 1, 0, 0, time.UTC),
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday belongs to the ending week",
			time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, startOfWeek(tt.now))
		})
	}
}

func TestArgAt(t *testing.T) {
	args := []string{"review", "AD-62"}

	assert.Equal(t, "review", argAt(args, 0))
	assert.Equal(t, "AD-62", argAt(args, 1))
	assert.Equal(t, "", argAt(args, 2))
}
