package formatting

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
)

// FormatDateTime форматирует дату и время
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// FormatScheduleDate форматирует дату расписания "2024-06-03" -> "03.06.2024 (Пн)".
// Нераспознанная дата выводится как есть.
func FormatScheduleDate(date string) string {
	t, err := time.Parse(model.DateLayout, model.NormalizeDate(date))
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s (%s)", t.Format("02.01.2006"), GetWeekdayShortName(int(t.Weekday())))
}

// FormatScheduleDateShort короткая дата для кнопок: "03.06 Пн"
func FormatScheduleDateShort(date string) string {
	t, err := time.Parse(model.DateLayout, model.NormalizeDate(date))
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %s", t.Format("02.01"), GetWeekdayShortName(int(t.Weekday())))
}

// FormatScheduleTime форматирует время расписания "14:30:00" -> "14:30"
func FormatScheduleTime(clock string) string {
	return model.DisplayTime(clock)
}

// GetWeekdayShortName возвращает краткое название дня недели на русском
func GetWeekdayShortName(weekday int) string {
	names := []string{
		"Вс",
		"Пн",
		"Вт",
		"Ср",
		"Чт",
		"Пт",
		"Сб",
	}
	if weekday >= 0 && weekday < len(names) {
		return names[weekday]
	}
	return "?"
}
