package customer

import (
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/mentor_booking_bot/internal/booking"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
)

const (
	datesPerRow = 3
	timesPerRow = 4
)

// Step шаг воронки, который сейчас показывается пользователю
type Step int

const (
	StepMode Step = iota
	StepLocation
	StepDate
	StepTime
	StepSummary
)

// CurrentStep определяет, что спросить у пользователя по черновику
func CurrentStep(d booking.Draft) Step {
	switch {
	case d.Mode == "":
		return StepMode
	case d.Mode == model.ModeOffline && d.Location == "":
		return StepLocation
	case d.Date == "":
		return StepDate
	case d.Time == "":
		return StepTime
	default:
		return StepSummary
	}
}

// BuildBookingScreen строит текст и клавиатуру сообщения с диалогом записи
func BuildBookingScreen(courseTitle string, flowID uuid.UUID, snap booking.Snapshot) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📝 <b>Запись на курс «%s»</b>\n\n", html.EscapeString(courseTitle))
	writeDraft(&sb, snap.Draft)

	kb := keyboard.NewBuilder()
	opts := snap.Options

	switch CurrentStep(snap.Draft) {
	case StepMode:
		sb.WriteString("Выберите формат занятия:")
		buttons := make([]models.InlineKeyboardButton, len(opts.Modes))
		for i, m := range opts.Modes {
			buttons[i] = keyboard.Button(formatting.ModeLabel(m), FunnelOptionData(flowID, ActionMode, i))
		}
		kb.Row(buttons...)

	case StepLocation:
		if len(opts.Locations) == 0 {
			sb.WriteString("😔 Для офлайн занятий пока не указано ни одного места. Выберите другой формат.")
		} else {
			sb.WriteString("📍 Выберите место:")
		}
		for i, loc := range opts.Locations {
			kb.Row(keyboard.Button("📍 "+loc, FunnelOptionData(flowID, ActionLocation, i)))
		}

	case StepDate:
		if len(opts.Dates) == 0 {
			sb.WriteString("😔 Свободных дат нет.")
		} else {
			fmt.Fprintf(&sb, "📅 Выберите дату (%d %s):", len(opts.Dates), formatting.PluralizeDates(len(opts.Dates)))
		}
		buttons := make([]models.InlineKeyboardButton, len(opts.Dates))
		for i, date := range opts.Dates {
			buttons[i] = keyboard.Button(formatting.FormatScheduleDateShort(date), FunnelOptionData(flowID, ActionDate, i))
		}
		kb.Grid(datesPerRow, buttons...)

	case StepTime:
		if len(opts.Times) == 0 {
			sb.WriteString("😔 На эту дату свободного времени нет.")
		} else {
			sb.WriteString("🕐 Выберите время:")
		}
		buttons := make([]models.InlineKeyboardButton, len(opts.Times))
		for i, clock := range opts.Times {
			buttons[i] = keyboard.Button(formatting.FormatScheduleTime(clock), FunnelOptionData(flowID, ActionTime, i))
		}
		kb.Grid(timesPerRow, buttons...)

	case StepSummary:
		sb.WriteString("Проверьте данные и подтвердите запись.\n")
		sb.WriteString("При желании добавьте тему занятия.")
		topicLabel := "💬 Указать тему"
		if snap.Draft.Topic != "" {
			topicLabel = "💬 Изменить тему"
		}
		kb.Row(keyboard.Button(topicLabel, FunnelData(flowID, ActionTopic)))
		kb.Row(keyboard.ConfirmButton(FunnelData(flowID, ActionConfirm)))
	}

	navigation := []models.InlineKeyboardButton{}
	if snap.State != booking.StateEmpty {
		navigation = append(navigation, keyboard.BackButton(FunnelData(flowID, ActionBack)))
	}
	navigation = append(navigation, keyboard.CancelButton(FunnelData(flowID, ActionCancel)))
	kb.Row(navigation...)

	return sb.String(), kb.Build()
}

// BuildTopicPrompt текст просьбы ввести тему занятия
func BuildTopicPrompt(courseTitle string) string {
	return fmt.Sprintf("💬 Напишите тему занятия по курсу «%s» одним сообщением.\n\n"+
		"Например: «разобрать домашнее задание» или «подготовка к собеседованию».\n"+
		"Отправьте /cancel, чтобы отменить запись.",
		html.EscapeString(courseTitle))
}

// BuildBookedText текст сообщения об успешной записи
func BuildBookedText(courseTitle string, b *model.Booking) string {
	var sb strings.Builder
	sb.WriteString("✅ <b>Вы записаны!</b>\n\n")
	fmt.Fprintf(&sb, "📚 Курс: %s\n", html.EscapeString(courseTitle))
	writeBookingDetails(&sb, b)
	status := formatting.GetBookingStatusDisplay(b.Status)
	fmt.Fprintf(&sb, "\n%s Статус: %s\n", status.Emoji, status.Text)
	sb.WriteString("\nВсе записи: /mybookings")
	return sb.String()
}

// BuildMentorNotification текст уведомления ментору о новой записи
func BuildMentorNotification(courseTitle string, customer *model.User, b *model.Booking) string {
	var sb strings.Builder
	sb.WriteString("🔔 <b>Новая запись на занятие</b>\n\n")
	fmt.Fprintf(&sb, "📚 Курс: %s\n", html.EscapeString(courseTitle))
	if customer != nil {
		name := html.EscapeString(customer.DisplayName())
		if customer.Username != "" {
			name += " (@" + html.EscapeString(customer.Username) + ")"
		}
		fmt.Fprintf(&sb, "👤 Клиент: %s\n", name)
	}
	writeBookingDetails(&sb, b)
	if !b.CreatedAt.IsZero() {
		fmt.Fprintf(&sb, "\n🕓 Создана: %s\n", formatting.FormatDateTime(b.CreatedAt))
	}
	return sb.String()
}

func writeDraft(sb *strings.Builder, d booking.Draft) {
	if d.Mode != "" {
		fmt.Fprintf(sb, "Формат: %s\n", formatting.ModeLabel(d.Mode))
	}
	if d.Location != "" {
		fmt.Fprintf(sb, "📍 Место: %s\n", html.EscapeString(d.Location))
	}
	if d.Date != "" {
		fmt.Fprintf(sb, "📅 Дата: %s\n", formatting.FormatScheduleDate(d.Date))
	}
	if d.Time != "" {
		fmt.Fprintf(sb, "🕐 Время: %s\n", formatting.FormatScheduleTime(d.Time))
	}
	if d.Topic != "" {
		fmt.Fprintf(sb, "💬 Тема: %s\n", html.EscapeString(d.Topic))
	}
	if d.Mode != "" {
		sb.WriteString("\n")
	}
}

func writeBookingDetails(sb *strings.Builder, b *model.Booking) {
	fmt.Fprintf(sb, "Формат: %s\n", formatting.ModeLabel(b.Mode))
	if b.Location != "" {
		fmt.Fprintf(sb, "📍 Место: %s\n", html.EscapeString(b.Location))
	}
	if b.Schedule != nil {
		fmt.Fprintf(sb, "📅 Дата: %s\n", formatting.FormatScheduleDate(b.Schedule.Date))
		fmt.Fprintf(sb, "🕐 Время: %s\n", formatting.FormatScheduleTime(b.Schedule.Time))
	}
	if b.Topic != "" {
		fmt.Fprintf(sb, "💬 Тема: %s\n", html.EscapeString(b.Topic))
	}
}
