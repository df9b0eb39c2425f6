package availability

import (
	"testing"

	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id int64, date, clock string, mode model.Mode, location string) model.ScheduleRecord {
	return model.ScheduleRecord{ID: id, Date: date, Time: clock, Mode: mode, Location: location}
}

func TestValidSchedules(t *testing.T) {
	records := []model.ScheduleRecord{
		record(1, "2024-06-03", "10:00:00", model.ModeOnline, ""),
		record(2, "2024-06-03", "11:00:00", "", ""),
		record(3, "2024-06-03", "12:00:00", "workshop", ""),
		record(4, "2024-06-04", "10:00:00", model.ModeOffline, "Room A"),
		record(5, "2024-06-04", "10:00:00", "OFFLINE", "Room A"),
	}

	valid := ValidSchedules(records)

	require.Len(t, valid, 2)
	assert.Equal(t, int64(1), valid[0].ID)
	assert.Equal(t, int64(4), valid[1].ID)
	assert.Len(t, records, 5, "input must not be modified")
}

func TestAvailableModes(t *testing.T) {
	tests := []struct {
		name    string
		records []model.ScheduleRecord
		want    []model.Mode
	}{
		{
			name: "empty",
		},
		{
			name:    "only invalid",
			records: []model.ScheduleRecord{record(1, "2024-07-01", "09:00:00", "workshop", "")},
		},
		{
			name: "online only with duplicates",
			records: []model.ScheduleRecord{
				record(1, "2024-06-03", "10:00:00", model.ModeOnline, ""),
				record(2, "2024-06-04", "10:00:00", model.ModeOnline, ""),
			},
			want: []model.Mode{model.ModeOnline},
		},
		{
			name: "both",
			records: []model.ScheduleRecord{
				record(1, "2024-06-03", "10:00:00", model.ModeOffline, "Room A"),
				record(2, "2024-06-04", "10:00:00", model.ModeOnline, ""),
				record(3, "2024-06-04", "10:00:00", "hybrid", ""),
			},
			want: []model.Mode{model.ModeOnline, model.ModeOffline},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid := ValidSchedules(tt.records)
			modes := AvailableModes(valid)

			assert.ElementsMatch(t, tt.want, modes)
			assert.Equal(t, len(valid) == 0, len(modes) == 0)
			for _, m := range modes {
				assert.True(t, m.Valid())
			}
		})
	}
}

func TestOnlineScenario(t *testing.T) {
	valid := ValidSchedules([]model.ScheduleRecord{
		record(1, "2024-06-03", "10:00:00", model.ModeOnline, ""),
	})

	assert.Equal(t, []model.Mode{model.ModeOnline}, AvailableModes(valid))
	assert.Empty(t, AvailableLocations(valid, model.ModeOnline))
	assert.Equal(t, []string{"2024-06-03"}, AvailableDates(valid, model.ModeOnline, ""))
	assert.Equal(t, []string{"10:00:00"}, AvailableTimes(valid, model.ModeOnline, "", "2024-06-03"))

	got, ok := FindExactMatch(valid, model.ModeOnline, "", "2024-06-03", "10:00:00")
	require.True(t, ok)
	assert.Equal(t, int64(1), got.ID)
}

func TestOfflineRoomsDoNotMix(t *testing.T) {
	valid := ValidSchedules([]model.ScheduleRecord{
		record(1, "2024-06-05", "14:00:00", model.ModeOffline, "Room A"),
		record(2, "2024-06-05", "14:00:00", model.ModeOffline, "Room B"),
	})

	assert.Equal(t, []string{"Room A", "Room B"}, AvailableLocations(valid, model.ModeOffline))
	assert.Equal(t, []string{"2024-06-05"}, AvailableDates(valid, model.ModeOffline, "Room A"))
	assert.Equal(t, []string{"14:00:00"}, AvailableTimes(valid, model.ModeOffline, "Room A", "2024-06-05"))

	a, ok := FindExactMatch(valid, model.ModeOffline, "Room A", "2024-06-05", "14:00:00")
	require.True(t, ok)
	assert.Equal(t, int64(1), a.ID)

	b, ok := FindExactMatch(valid, model.ModeOffline, "Room B", "2024-06-05", "14:00:00")
	require.True(t, ok)
	assert.Equal(t, int64(2), b.ID)
}

func TestAvailableDatesDefersLocation(t *testing.T) {
	valid := ValidSchedules([]model.ScheduleRecord{
		record(1, "2024-06-05", "14:00:00", model.ModeOffline, "Room A"),
		record(2, "2024-06-06", "14:00:00", model.ModeOffline, "Room B"),
		record(3, "2024-06-07", "14:00:00", model.ModeOnline, ""),
	})

	assert.Equal(t, []string{"2024-06-05", "2024-06-06"}, AvailableDates(valid, model.ModeOffline, ""))
	assert.Equal(t, []string{"2024-06-06"}, AvailableDates(valid, model.ModeOffline, "Room B"))
	assert.Equal(t, []string{"2024-06-07"}, AvailableDates(valid, model.ModeOnline, "Room B"))
	assert.Empty(t, AvailableDates(valid, model.ModeOffline, "Room C"))
}

func TestDatesComparedAsNormalizedStrings(t *testing.T) {
	valid := ValidSchedules([]model.ScheduleRecord{
		record(1, "2024-06-03T00:00:00Z", "10:00", model.ModeOnline, ""),
		record(2, "2024-06-03", "10:00:00", model.ModeOnline, ""),
		record(3, "2024-06-03T23:00:00-05:00", "12:00:00", model.ModeOnline, ""),
	})

	assert.Equal(t, []string{"2024-06-03"}, AvailableDates(valid, model.ModeOnline, ""))
	assert.Equal(t, []string{"10:00:00", "12:00:00"}, AvailableTimes(valid, model.ModeOnline, "", "2024-06-03"))

	got, ok := FindExactMatch(valid, model.ModeOnline, "", "2024-06-03", "10:00:00")
	require.True(t, ok)
	assert.Equal(t, int64(1), got.ID, "first duplicate wins")
}

func TestFindExactMatchOnlineIgnoresLocation(t *testing.T) {
	valid := ValidSchedules([]model.ScheduleRecord{
		record(1, "2024-06-03", "10:00:00", model.ModeOnline, ""),
	})

	_, ok := FindExactMatch(valid, model.ModeOnline, "Room A", "2024-06-03", "10:00:00")
	assert.True(t, ok)
}

func TestFindExactMatchMisses(t *testing.T) {
	valid := ValidSchedules([]model.ScheduleRecord{
		record(1, "2024-06-05", "14:00:00", model.ModeOffline, "Room A"),
	})

	tests := []struct {
		name     string
		mode     model.Mode
		location string
		date     string
		clock    string
	}{
		{"wrong room", model.ModeOffline, "Room B", "2024-06-05", "14:00:00"},
		{"no room", model.ModeOffline, "", "2024-06-05", "14:00:00"},
		{"wrong mode", model.ModeOnline, "", "2024-06-05", "14:00:00"},
		{"wrong date", model.ModeOffline, "Room A", "2024-06-06", "14:00:00"},
		{"wrong time", model.ModeOffline, "Room A", "2024-06-05", "15:00:00"},
		{"invalid mode", "workshop", "Room A", "2024-06-05", "14:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := FindExactMatch(valid, tt.mode, tt.location, tt.date, tt.clock)
			assert.False(t, ok)
		})
	}
}

func TestOfflineWithoutLocationIsUnreachable(t *testing.T) {
	valid := ValidSchedules([]model.ScheduleRecord{
		record(1, "2024-06-05", "14:00:00", model.ModeOffline, ""),
	})

	require.Len(t, valid, 1)
	assert.Equal(t, []model.Mode{model.ModeOffline}, AvailableModes(valid))
	assert.Empty(t, AvailableLocations(valid, model.ModeOffline))
}

func TestEveryOfferedOptionIsConfirmable(t *testing.T) {
	records := []model.ScheduleRecord{
		record(1, "2024-06-03", "10:00:00", model.ModeOnline, ""),
		record(2, "2024-06-03", "11:30", model.ModeOnline, "ignored"),
		record(3, "2024-06-04T00:00:00Z", "10:00:00", model.ModeOnline, ""),
		record(4, "2024-06-05", "14:00:00", model.ModeOffline, "Room A"),
		record(5, "2024-06-05", "14:00:00", model.ModeOffline, "Room B"),
		record(6, "2024-06-06", "09:00:00", model.ModeOffline, " Room  A"),
		record(7, "2024-06-06", "09:00:00", model.ModeOffline, ""),
		record(8, "2024-06-07", "09:00:00", "", "Room A"),
	}
	valid := ValidSchedules(records)

	for _, mode := range AvailableModes(valid) {
		locations := []string{""}
		if mode == model.ModeOffline {
			locations = AvailableLocations(valid, mode)
		}
		for _, loc := range locations {
			for _, date := range AvailableDates(valid, mode, loc) {
				for _, clock := range AvailableTimes(valid, mode, loc, date) {
					_, ok := FindExactMatch(valid, mode, loc, date, clock)
					assert.True(t, ok, "mode=%s location=%q date=%s time=%s", mode, loc, date, clock)
				}
			}
		}
	}
}
