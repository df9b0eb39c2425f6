package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/mentor_booking_bot/internal/booking"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/Freeeeeet/mentor_booking_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// BookCourse префикс кнопки "Записаться" в карточке курса: book_course:<id>
const BookCourse = "book_course:"

// HandleBookCourse открывает диалог записи на курс новым сообщением
func HandleBookCourse(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithUser(ctx, b, callback, h, func(hc *common.HandlerContext) {
		courseID, err := common.ParseIDFromCallback(callback.Data)
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "book_course")
			return
		}

		course, err := h.CourseService.GetCourseWithSchedule(ctx, courseID)
		if err != nil {
			common.HandleError(hc, err, "book_course")
			return
		}
		if !course.IsActive {
			common.HandleWarn(hc, service.ErrCourseInactive, "book_course")
			return
		}

		flow := booking.NewFlow(course, booking.WithObserver(func(s booking.Snapshot) {
			h.Logger.Debug("Booking flow transition",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.Int64("course_id", courseID),
				zap.String("state", string(s.State)),
				zap.String("mode", string(s.Draft.Mode)),
				zap.String("date", s.Draft.Date),
				zap.String("time", s.Draft.Time))
		}))

		if err := flow.Available(); err != nil {
			h.Logger.Info("Course has no valid schedule",
				zap.Int64("course_id", courseID),
				zap.Int("records", len(course.Schedules)))
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		}

		text, kb := BuildBookingScreen(course.Title, flow.ID(), flow.Snapshot())
		msg, err := hc.SendMessage(text, kb)
		if err != nil {
			common.HandleError(hc, err, "send booking screen")
			return
		}

		h.StateManager.StartBooking(hc.TelegramID, flow, course.Title, msg.Chat.ID, msg.ID)

		h.Logger.Info("Booking dialog opened",
			zap.Int64("user_id", hc.User.ID),
			zap.Int64("course_id", courseID),
			zap.String("flow_id", flow.ID().String()))

		hc.Answer("")
	})
}

// HandleFunnel обрабатывает нажатия кнопок внутри диалога записи
func HandleFunnel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	cb, err := ParseFunnelCallback(callback.Data)
	if err != nil {
		h.Logger.Warn("Invalid funnel callback", zap.String("data", callback.Data), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	common.WithUser(ctx, b, callback, h, func(hc *common.HandlerContext) {
		err := h.StateManager.WithBooking(hc.TelegramID, func(s *state.BookingSession) error {
			if !cb.Matches(s.Flow.ID()) || hc.Message == nil || hc.Message.ID != s.MessageID {
				return common.ErrOutdated
			}
			return applyFunnelAction(hc, s, cb)
		})

		switch {
		case err == nil:
			hc.Answer("")
		case isSelectionError(err):
			common.HandleWarn(hc, err, "booking funnel")
		default:
			common.HandleError(hc, err, "booking funnel")
		}
	})
}

// isSelectionError ошибки, которые пользователь может исправить сам
func isSelectionError(err error) bool {
	return errors.Is(err, booking.ErrStaleSelection) ||
		errors.Is(err, booking.ErrIncompleteSelection) ||
		errors.Is(err, booking.ErrNoScheduleAvailable) ||
		errors.Is(err, booking.ErrFlowClosed) ||
		errors.Is(err, common.ErrOutdated) ||
		errors.Is(err, state.ErrNoBookingSession)
}

func applyFunnelAction(hc *common.HandlerContext, s *state.BookingSession, cb FunnelCallback) error {
	flow := s.Flow

	switch cb.Action {
	case ActionMode, ActionLocation, ActionDate, ActionTime:
		err := selectOption(flow, cb)
		if renderErr := render(hc, s); renderErr != nil {
			return renderErr
		}
		return err

	case ActionBack:
		if err := flow.Back(); err != nil {
			return err
		}
		return render(hc, s)

	case ActionTopic:
		if flow.State().Closed() {
			return booking.ErrFlowClosed
		}
		hc.SetState(state.StateBookingTopic)
		prompt, err := hc.SendMessage(BuildTopicPrompt(s.CourseTitle), nil)
		if err != nil {
			return err
		}
		hc.Handler.StateManager.SetData(hc.TelegramID, state.DataTopicPrompt, prompt.ID)
		return nil

	case ActionConfirm:
		return confirm(hc, s)

	case ActionCancel:
		if err := flow.Cancel(); err != nil {
			return err
		}
		hc.Handler.StateManager.EndBooking(hc.TelegramID, flow)
		hc.Handler.Logger.Info("Booking dialog canceled",
			zap.Int64("user_id", hc.User.ID),
			zap.String("flow_id", flow.ID().String()))
		return hc.EditMessage("❌ Запись отменена.\n\nВыбрать другой курс: /courses", nil)
	}

	return common.ErrInvalidFormat
}

// selectOption применяет вариант, выбранный по индексу в текущем списке
func selectOption(flow *booking.Flow, cb FunnelCallback) error {
	opts := flow.Options()

	switch cb.Action {
	case ActionMode:
		if cb.Index >= len(opts.Modes) {
			return booking.ErrStaleSelection
		}
		return flow.SetMode(opts.Modes[cb.Index])
	case ActionLocation:
		if cb.Index >= len(opts.Locations) {
			return booking.ErrStaleSelection
		}
		return flow.SetLocation(opts.Locations[cb.Index])
	case ActionDate:
		if cb.Index >= len(opts.Dates) {
			return booking.ErrStaleSelection
		}
		return flow.SetDate(opts.Dates[cb.Index])
	case ActionTime:
		if cb.Index >= len(opts.Times) {
			return booking.ErrStaleSelection
		}
		return flow.SetTime(opts.Times[cb.Index])
	}
	return common.ErrInvalidFormat
}

// confirm перечитывает расписание, проверяет выбор и отправляет запись.
// Если отправка упала, повторное нажатие отправит тот же выбор ещё раз.
func confirm(hc *common.HandlerContext, s *state.BookingSession) error {
	h := hc.Handler
	flow := s.Flow

	if s.Confirmation == nil {
		records, err := h.CourseService.LoadSchedule(hc.Ctx, flow.CourseID())
		if err != nil {
			return fmt.Errorf("reload schedule: %w", err)
		}
		if err := flow.Resync(records); err != nil {
			return err
		}

		conf, err := flow.Submit(flow.Draft().Topic)
		if err != nil {
			if renderErr := render(hc, s); renderErr != nil {
				h.Logger.Error("Failed to render booking screen", zap.Error(renderErr))
			}
			return err
		}
		s.Confirmation = conf
	}

	created, err := s.Confirmation.Deliver(hc.Ctx, h.BookingService.ForCustomer(hc.User.ID, flow.ID()))
	if err != nil {
		return fmt.Errorf("deliver booking: %w", err)
	}

	h.StateManager.EndBooking(hc.TelegramID, flow)

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📅 Мои записи", MyBookings)).
		Row(keyboard.BackToCoursesButton()).
		Build()
	if err := hc.EditMessage(BuildBookedText(s.CourseTitle, created), kb); err != nil {
		h.Logger.Error("Failed to show booking result", zap.Error(err))
	}

	notifyMentor(hc, s.CourseTitle, created)
	return nil
}

// notifyMentor сообщает ментору о новой записи. Ошибки только логируются.
func notifyMentor(hc *common.HandlerContext, courseTitle string, created *model.Booking) {
	h := hc.Handler

	mentor, err := h.UserService.GetByID(hc.Ctx, created.MentorID)
	if err != nil || mentor == nil {
		h.Logger.Warn("Mentor not found for notification",
			zap.Int64("mentor_id", created.MentorID),
			zap.Error(err))
		return
	}

	_, err = hc.Bot.SendMessage(hc.Ctx, &bot.SendMessageParams{
		ChatID:    mentor.TelegramID,
		Text:      BuildMentorNotification(courseTitle, hc.User, created),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		h.Logger.Error("Failed to notify mentor",
			zap.Int64("mentor_id", mentor.ID),
			zap.Int64("booking_id", created.ID),
			zap.Error(err))
	}
}

// render перерисовывает сообщение с диалогом по текущему снимку
func render(hc *common.HandlerContext, s *state.BookingSession) error {
	text, kb := BuildBookingScreen(s.CourseTitle, s.Flow.ID(), s.Flow.Snapshot())
	return hc.EditMessage(text, kb)
}

// RenderSession перерисовывает диалог по данным сессии, например после ввода темы
func RenderSession(ctx context.Context, b *bot.Bot, s *state.BookingSession) error {
	text, kb := BuildBookingScreen(s.CourseTitle, s.Flow.ID(), s.Flow.Snapshot())
	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      s.ChatID,
		MessageID:   s.MessageID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	})
	if common.IsMessageNotModifiedError(err) {
		return nil
	}
	return err
}
