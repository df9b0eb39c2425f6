package customer

import (
	"strings"
	"testing"
	"time"

	"github.com/Freeeeeet/mentor_booking_bot/internal/booking"
	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCourse() *model.Course {
	return &model.Course{
		ID:    7,
		Title: "Go <advanced>",
		Price: 250000,
		Schedules: []model.ScheduleRecord{
			{ID: 1, CourseID: 7, Date: "2024-06-03", Time: "10:00:00", Mode: model.ModeOnline},
			{ID: 2, CourseID: 7, Date: "2024-06-04", Time: "14:30:00", Mode: model.ModeOnline},
			{ID: 3, CourseID: 7, Date: "2024-06-05", Time: "09:00:00", Mode: model.ModeOffline, Location: "Room A"},
			{ID: 4, CourseID: 7, Date: "2024-06-06", Time: "11:00:00", Mode: "Online"},
		},
	}
}

func callbacks(kb *models.InlineKeyboardMarkup) []string {
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			out = append(out, btn.CallbackData)
		}
	}
	return out
}

func TestCurrentStep(t *testing.T) {
	assert.Equal(t, StepMode, CurrentStep(booking.Draft{}))
	assert.Equal(t, StepLocation, CurrentStep(booking.Draft{Mode: model.ModeOffline}))
	assert.Equal(t, StepDate, CurrentStep(booking.Draft{Mode: model.ModeOnline}))
	assert.Equal(t, StepDate, CurrentStep(booking.Draft{Mode: model.ModeOffline, Location: "Room A"}))
	assert.Equal(t, StepTime, CurrentStep(booking.Draft{Mode: model.ModeOnline, Date: "2024-06-03"}))
	assert.Equal(t, StepSummary, CurrentStep(booking.Draft{Mode: model.ModeOnline, Date: "2024-06-03", Time: "10:00:00"}))
}

func TestBuildBookingScreenModeStep(t *testing.T) {
	flow := booking.NewFlow(testCourse())

	text, kb := BuildBookingScreen("Go <advanced>", flow.ID(), flow.Snapshot())

	assert.Contains(t, text, "Go &lt;advanced&gt;")
	assert.Contains(t, text, "формат")
	assert.Equal(t, []string{
		FunnelOptionData(flow.ID(), ActionMode, 0),
		FunnelOptionData(flow.ID(), ActionMode, 1),
		FunnelData(flow.ID(), ActionCancel),
	}, callbacks(kb), "no back button on the first step")
	assert.Equal(t, "💻 Онлайн", kb.InlineKeyboard[0][0].Text)
}

func TestBuildBookingScreenWalksTheFunnel(t *testing.T) {
	flow := booking.NewFlow(testCourse())
	require.NoError(t, flow.SetMode(model.ModeOnline))

	text, kb := BuildBookingScreen("Go", flow.ID(), flow.Snapshot())
	assert.Contains(t, text, "2 даты")
	assert.Equal(t, "03.06 Пн", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "04.06 Вт", kb.InlineKeyboard[0][1].Text)
	assert.Contains(t, callbacks(kb), FunnelData(flow.ID(), ActionBack))

	require.NoError(t, flow.SetDate("2024-06-04"))
	_, kb = BuildBookingScreen("Go", flow.ID(), flow.Snapshot())
	assert.Equal(t, "14:30", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, FunnelOptionData(flow.ID(), ActionTime, 0), kb.InlineKeyboard[0][0].CallbackData)

	require.NoError(t, flow.SetTime("14:30:00"))
	require.NoError(t, flow.SetTopic("interfaces & generics"))
	text, kb = BuildBookingScreen("Go", flow.ID(), flow.Snapshot())
	assert.Contains(t, text, "04.06.2024 (Вт)")
	assert.Contains(t, text, "🕐 Время: 14:30")
	assert.Contains(t, text, "interfaces &amp; generics")
	assert.Contains(t, callbacks(kb), FunnelData(flow.ID(), ActionConfirm))
	assert.Equal(t, "💬 Изменить тему", kb.InlineKeyboard[0][0].Text)
}

func TestBuildBookingScreenOfflineLocations(t *testing.T) {
	flow := booking.NewFlow(testCourse())
	require.NoError(t, flow.SetMode(model.ModeOffline))

	text, kb := BuildBookingScreen("Go", flow.ID(), flow.Snapshot())
	assert.Contains(t, text, "место")
	assert.Equal(t, "📍 Room A", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, FunnelOptionData(flow.ID(), ActionLocation, 0), kb.InlineKeyboard[0][0].CallbackData)
}

func TestBuildBookingScreenStaleTimesAfterResync(t *testing.T) {
	flow := booking.NewFlow(testCourse())
	require.NoError(t, flow.SetMode(model.ModeOnline))
	require.NoError(t, flow.SetDate("2024-06-03"))

	require.NoError(t, flow.Resync(nil))

	text, kb := BuildBookingScreen("Go", flow.ID(), flow.Snapshot())
	assert.Contains(t, text, "свободного времени нет")
	assert.Equal(t, []string{
		FunnelData(flow.ID(), ActionBack),
		FunnelData(flow.ID(), ActionCancel),
	}, callbacks(kb))
}

func TestBuildBookedTextAndNotification(t *testing.T) {
	b := &model.Booking{
		ID:        42,
		Mode:      model.ModeOffline,
		Location:  "Room A",
		Topic:     "code review",
		Status:    model.BookingStatusPending,
		Schedule:  &model.ScheduleRecord{Date: "2024-06-05", Time: "09:00:00"},
		CreatedAt: time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC),
	}

	text := BuildBookedText("Go", b)
	assert.Contains(t, text, "Вы записаны")
	assert.Contains(t, text, "📍 Место: Room A")
	assert.Contains(t, text, "05.06.2024 (Ср)")
	assert.Contains(t, text, "09:00")

	customer := &model.User{FirstName: "Ann", LastName: "Lee", Username: "ann"}
	note := BuildMentorNotification("Go", customer, b)
	assert.Contains(t, note, "Ann Lee (@ann)")
	assert.Contains(t, note, "code review")
	assert.Contains(t, note, "Создана: 01.06.2024 18:30")
	assert.NotContains(t, text, "Создана")
}

func TestBuildCatalog(t *testing.T) {
	course := testCourse()
	course.Mentor = &model.User{FirstName: "Ivan"}
	empty := &model.Course{ID: 8, Title: "Rust", Schedules: []model.ScheduleRecord{{Mode: "hybrid"}}}

	text, kb := BuildCatalog([]*model.Course{course, empty}, 0, 2)

	assert.Contains(t, text, "1. Go &lt;advanced&gt;")
	assert.Contains(t, text, "2500 ₽")
	assert.Contains(t, text, "👤 Ivan")
	assert.Contains(t, text, "💻 Онлайн, 🏫 Офлайн")
	assert.Contains(t, text, "2. Rust")
	assert.Contains(t, text, "нет расписания")

	data := callbacks(kb)
	assert.Contains(t, data, "book_course:7")
	assert.NotContains(t, data, "book_course:8")
	assert.Contains(t, data, CoursesPage+"1")
	assert.Contains(t, data, "back_to_main")
}

func TestBuildBookingsList(t *testing.T) {
	text, kb := BuildBookingsList(nil)
	assert.Contains(t, text, "нет записей")
	assert.Len(t, kb.InlineKeyboard, 1)

	bookings := []*model.Booking{
		{ID: 2, Status: model.BookingStatusPending, Mode: model.ModeOnline, Course: &model.Course{Title: "Go"}},
		{ID: 1, Status: model.BookingStatusCanceled, Mode: model.ModeOnline},
	}
	text, kb = BuildBookingsList(bookings)
	assert.Contains(t, text, "2 записи")
	assert.True(t, strings.Index(text, "#2 Go") < strings.Index(text, "#1 Курс"))
	assert.Equal(t, []string{"cancel_booking:2", "back_to_main"}, callbacks(kb))
}
