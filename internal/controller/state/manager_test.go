package state

import (
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/mentor_booking_bot/internal/booking"
	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlow() *booking.Flow {
	return booking.NewFlow(&model.Course{
		ID: 1,
		Schedules: []model.ScheduleRecord{
			{ID: 1, CourseID: 1, Date: "2024-06-03", Time: "10:00:00", Mode: model.ModeOnline},
		},
	})
}

func TestStateAndData(t *testing.T) {
	sm := NewManager()

	assert.Equal(t, StateNone, sm.GetState(1))

	sm.SetState(1, StateBookingTopic)
	sm.SetData(1, "course_id", int64(5))
	assert.Equal(t, StateBookingTopic, sm.GetState(1))

	v, ok := sm.GetData(1, "course_id")
	require.True(t, ok)
	assert.Equal(t, int64(5), v)

	sm.SetState(1, StateNone)
	_, ok = sm.GetData(1, "course_id")
	assert.False(t, ok, "user without booking is dropped on StateNone")

	sm.SetState(2, StateNone)
	assert.Empty(t, sm.states)
}

func TestBookingSessionLifecycle(t *testing.T) {
	sm := NewManager()
	flow := newFlow()

	err := sm.WithBooking(1, func(*BookingSession) error { return nil })
	assert.ErrorIs(t, err, ErrNoBookingSession)

	sm.StartBooking(1, flow, "Go с нуля", 100, 7)
	sm.SetState(1, StateBookingTopic)

	err = sm.WithBooking(1, func(s *BookingSession) error {
		assert.Same(t, flow, s.Flow)
		assert.Equal(t, int64(100), s.ChatID)
		assert.Equal(t, 7, s.MessageID)
		return s.Flow.SetMode(model.ModeOnline)
	})
	require.NoError(t, err)
	assert.Equal(t, booking.StateModeChosen, flow.State())

	errBoom := errors.New("boom")
	assert.ErrorIs(t, sm.WithBooking(1, func(*BookingSession) error { return errBoom }), errBoom)

	// завершение чужого (старого) диалога ничего не трогает
	sm.EndBooking(1, newFlow())
	assert.NoError(t, sm.WithBooking(1, func(*BookingSession) error { return nil }))

	sm.EndBooking(1, flow)
	assert.ErrorIs(t, sm.WithBooking(1, func(*BookingSession) error { return nil }), ErrNoBookingSession)
	assert.Equal(t, StateNone, sm.GetState(1))
	assert.Empty(t, sm.states)
}

func TestStartBookingReplacesPrevious(t *testing.T) {
	sm := NewManager()
	first, second := newFlow(), newFlow()

	sm.StartBooking(1, first, "Go с нуля", 100, 1)
	sm.SetState(1, StateBookingTopic)
	sm.StartBooking(1, second, "Go с нуля", 100, 2)

	assert.Equal(t, StateNone, sm.GetState(1))
	require.NoError(t, sm.WithBooking(1, func(s *BookingSession) error {
		assert.Same(t, second, s.Flow)
		return nil
	}))
}

func TestSweepIdle(t *testing.T) {
	sm := NewManager()
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return now }

	idle := newFlow()
	sm.StartBooking(1, idle, "Go с нуля", 100, 1)

	now = now.Add(20 * time.Minute)
	sm.StartBooking(2, newFlow(), "Go с нуля", 200, 1)

	removed := sm.SweepIdle(now.Add(-10 * time.Minute))
	assert.Equal(t, 1, removed)
	assert.Equal(t, booking.StateCanceled, idle.State())
	assert.ErrorIs(t, sm.WithBooking(1, func(*BookingSession) error { return nil }), ErrNoBookingSession)
	assert.NoError(t, sm.WithBooking(2, func(*BookingSession) error { return nil }))
}
