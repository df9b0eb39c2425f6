package formatting

import (
	"strings"

	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
)

// ModeLabel подпись формата занятия для кнопок и карточек
func ModeLabel(mode model.Mode) string {
	switch mode {
	case model.ModeOnline:
		return "💻 Онлайн"
	case model.ModeOffline:
		return "🏫 Офлайн"
	default:
		return string(mode)
	}
}

// ModesLine перечисляет форматы через запятую, "нет расписания" для пустого списка
func ModesLine(modes []model.Mode) string {
	if len(modes) == 0 {
		return "📭 нет расписания"
	}
	labels := make([]string, len(modes))
	for i, m := range modes {
		labels[i] = ModeLabel(m)
	}
	return strings.Join(labels, ", ")
}
