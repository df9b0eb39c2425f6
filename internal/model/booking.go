package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"   // Ожидает оплаты/подтверждения ментором
	BookingStatusConfirmed BookingStatus = "confirmed" // Подтверждено
	BookingStatusCompleted BookingStatus = "completed" // Завершено
	BookingStatusCanceled  BookingStatus = "canceled"  // Отменено
)

type Booking struct {
	ID         int64         `json:"id"`
	RequestID  uuid.UUID     `json:"request_id"` // идентификатор диалога, из которого создана запись
	CustomerID int64         `json:"customer_id"`
	MentorID   int64         `json:"mentor_id"`
	CourseID   int64         `json:"course_id"`
	ScheduleID int64         `json:"schedule_id"`
	Mode       Mode          `json:"mode"`
	Location   string        `json:"location"`
	Topic      string        `json:"topic"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	// Дополнительные поля для удобства (не из БД)
	Course   *Course         `json:"course,omitempty"`
	Schedule *ScheduleRecord `json:"schedule,omitempty"`
}

// IsActive проверяет, что запись ещё можно отменить
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
