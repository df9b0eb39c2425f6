package formatting

import (
	"testing"

	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatScheduleDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-06-03", "03.06.2024 (Пн)"},
		{"2024-06-09T00:00:00Z", "09.06.2024 (Вс)"},
		{"03.06.2024", "03.06.2024 (Пн)"},
		{"когда-нибудь", "когда-нибудь"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatScheduleDate(tt.in))
		})
	}
}

func TestFormatScheduleDateShort(t *testing.T) {
	assert.Equal(t, "04.06 Вт", FormatScheduleDateShort("2024-06-04"))
	assert.Equal(t, "??", FormatScheduleDateShort("??"))
}

func TestFormatScheduleTime(t *testing.T) {
	assert.Equal(t, "09:00", FormatScheduleTime("09:00:00"))
	assert.Equal(t, "14:30", FormatScheduleTime("14:30"))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "бесплатно", FormatPrice(0))
	assert.Equal(t, "1500 ₽", FormatPrice(150000))
	assert.Equal(t, "1500.05 ₽", FormatPrice(150005))
}

func TestModesLine(t *testing.T) {
	assert.Equal(t, "📭 нет расписания", ModesLine(nil))
	assert.Equal(t, "💻 Онлайн, 🏫 Офлайн", ModesLine([]model.Mode{model.ModeOnline, model.ModeOffline}))
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{1, "запись"},
		{2, "записи"},
		{5, "записей"},
		{11, "записей"},
		{12, "записей"},
		{21, "запись"},
		{24, "записи"},
		{111, "записей"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PluralizeBookings(tt.count), "count=%d", tt.count)
	}

	assert.Equal(t, "даты", PluralizeDates(3))
}

func TestGetBookingStatusDisplay(t *testing.T) {
	assert.Equal(t, "⏳", GetBookingStatusDisplay(model.BookingStatusPending).Emoji)
	assert.Equal(t, "❓", GetBookingStatusDisplay("lost").Emoji)
}
