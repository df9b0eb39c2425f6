package common

import (
	"errors"

	"github.com/Freeeeeet/mentor_booking_bot/internal/booking"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/mentor_booking_bot/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
	ErrOutdated      = errors.New("callback belongs to another dialog")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "❌ Пользователь не найден. Используйте /start"
	case errors.Is(err, ErrNoMessage):
		return "❌ Ошибка обработки сообщения"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Неверный формат данных"
	case errors.Is(err, ErrOutdated), errors.Is(err, state.ErrNoBookingSession):
		return "⌛ Этот диалог записи уже закрыт. Начните заново из /courses"

	case errors.Is(err, booking.ErrNoScheduleAvailable):
		return "📭 У курса пока нет доступного расписания"
	case errors.Is(err, booking.ErrIncompleteSelection):
		return "⚠️ Сначала выберите формат, место, дату и время"
	case errors.Is(err, booking.ErrStaleSelection):
		return "🔄 Этот вариант больше недоступен, выберите другой"
	case errors.Is(err, booking.ErrFlowClosed):
		return "⌛ Диалог записи уже завершён"

	case errors.Is(err, service.ErrCourseNotFound):
		return "❌ Курс не найден"
	case errors.Is(err, service.ErrCourseInactive):
		return "🚫 Запись на курс закрыта"
	case errors.Is(err, service.ErrBookingNotFound):
		return "❌ Запись не найдена"
	case errors.Is(err, service.ErrNoPermission):
		return "❌ У вас нет доступа к этой записи"
	case errors.Is(err, service.ErrBookingNotActive):
		return "❌ Запись уже отменена или завершена"
	default:
		return "❌ Произошла ошибка"
	}
}
