package booking

import (
	"context"

	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/google/uuid"
)

// Submitter внешний исполнитель, который создаёт запись на занятие
type Submitter interface {
	CreateBooking(ctx context.Context, record model.ScheduleRecord, topic string, mode model.Mode, location string) (*model.Booking, error)
}

// Confirmation результат успешной проверки черновика
type Confirmation struct {
	FlowID   uuid.UUID
	CourseID int64
	Record   model.ScheduleRecord
	Topic    string
	Mode     model.Mode
	Location string // пустое для online
}

// Deliver передаёт подтверждённый выбор исполнителю
func (c *Confirmation) Deliver(ctx context.Context, s Submitter) (*model.Booking, error) {
	return s.CreateBooking(ctx, c.Record, c.Topic, c.Mode, c.Location)
}
