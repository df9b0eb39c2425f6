package model

import "time"

// Course представляет курс ментора вместе с его расписанием
type Course struct {
	ID          int64     `json:"id"`
	MentorID    int64     `json:"mentor_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int       `json:"price"` // в копейках
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	// Заполняются сервисом при загрузке (не колонки таблицы courses)
	Mentor    *User            `json:"mentor,omitempty"`
	Schedules []ScheduleRecord `json:"schedules,omitempty"`
}
