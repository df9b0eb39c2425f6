package state

import (
	"sync"
	"time"

	"github.com/Freeeeeet/mentor_booking_bot/internal/booking"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Пользователь вводит тему занятия текстом
	StateBookingTopic UserState = "booking_topic"
)

// Ключи временных данных
const (
	DataTopicPrompt = "topic_prompt_message_id" // int, сообщение с просьбой ввести тему
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State     UserState
	Data      map[string]interface{} // Временные данные для текущего диалога
	Booking   *BookingSession
	UpdatedAt time.Time
}

// BookingSession открытый диалог записи и сообщение, в котором он отрисован
type BookingSession struct {
	mu          sync.Mutex
	Flow        *booking.Flow
	CourseTitle string
	ChatID      int64
	MessageID   int

	// Подтверждённый выбор, который ещё не удалось отправить
	Confirmation *booking.Confirmation
}
