package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-06-03", "2024-06-03"},
		{" 2024-06-03 ", "2024-06-03"},
		{"2024-06-03T00:00:00Z", "2024-06-03"},
		{"2024-06-03T23:30:00.000-05:00", "2024-06-03"},
		{"03.06.2024", "2024-06-03"},
		{"", ""},
		{"soon", "soon"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDate(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10:00:00", "10:00:00"},
		{"10:00", "10:00:00"},
		{"9:05", "09:05:00"},
		{"14:30:00.000000", "14:30:00"},
		{"", ""},
		{"noon", "noon"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTime(tt.in), "input %q", tt.in)
	}
}

func TestDisplayTime(t *testing.T) {
	assert.Equal(t, "10:00", DisplayTime("10:00:00"))
	assert.Equal(t, "09:05", DisplayTime("9:05"))
}

func TestScheduleRecordNormalized(t *testing.T) {
	raw := ScheduleRecord{
		ID:       7,
		Date:     "2024-06-05T00:00:00Z",
		Time:     "14:00",
		Mode:     ModeOffline,
		Location: "  Room   A ",
		Note:     "bring a laptop",
	}

	got := raw.Normalized()

	assert.Equal(t, "2024-06-05", got.Date)
	assert.Equal(t, "14:00:00", got.Time)
	assert.Equal(t, "Room A", got.Location)
	assert.Equal(t, "bring a laptop", got.Note)
	// исходная запись не меняется
	assert.Equal(t, "14:00", raw.Time)
}

func TestModeValid(t *testing.T) {
	assert.True(t, ModeOnline.Valid())
	assert.True(t, ModeOffline.Valid())
	assert.False(t, Mode("").Valid())
	assert.False(t, Mode("workshop").Valid())
	assert.False(t, Mode("Online").Valid())
}
