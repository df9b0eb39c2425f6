package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Freeeeeet/mentor_booking_bot/internal/booking"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/customer"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Максимальная длина темы занятия в символах
const TopicMaxLength = 300

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	user := update.Message.From

	// Регистрируем пользователя
	registeredUser, err := h.userService.RegisterUser(
		ctx,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.LanguageCode,
	)

	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка при регистрации. Попробуйте позже.")
		return
	}

	welcomeText := fmt.Sprintf(
		"👋 Привет, %s!\n\n"+
			"Это бот для записи на занятия к менторам.\n"+
			"Выберите курс, формат, дату и время, а бот проверит, что такое занятие есть в расписании.\n\n"+
			"Доступные команды:\n"+
			"/courses - Каталог курсов\n"+
			"/mybookings - Мои записи\n"+
			"/help - Справка",
		registeredUser.FirstName,
	)

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcomeText)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Справка по командам:\n\n" +
		"/start - Начать работу с ботом\n" +
		"/courses - Каталог курсов\n" +
		"/mybookings - Мои записи на занятия\n" +
		"/cancel - Отменить текущую запись или ввод\n" +
		"/help - Показать эту справку\n\n" +
		"Как записаться:\n" +
		"1. Откройте /courses и нажмите на курс\n" +
		"2. Выберите формат: онлайн или офлайн\n" +
		"3. Для офлайн занятий выберите место\n" +
		"4. Выберите дату и время\n" +
		"5. При желании укажите тему и подтвердите запись"

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleCourses обрабатывает команду /courses - первая страница каталога
func (h *Handlers) HandleCourses(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	if err := customer.SendCatalog(ctx, b, h.deps, update.Message.Chat.ID, 0, 0); err != nil {
		h.logger.Error("Failed to show catalog", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось загрузить каталог. Попробуйте позже.")
	}
}

// HandleMyBookings обрабатывает команду /mybookings
func (h *Handlers) HandleMyBookings(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	if err := customer.SendMyBookings(ctx, b, h.deps, user, update.Message.Chat.ID, 0); err != nil {
		h.logger.Error("Failed to show bookings", zap.Int64("user_id", user.ID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось загрузить записи. Попробуйте позже.")
	}
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	err := h.stateManager.WithBooking(telegramID, func(s *state.BookingSession) error {
		if err := s.Flow.Cancel(); err != nil && !errors.Is(err, booking.ErrFlowClosed) {
			return err
		}

		_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    s.ChatID,
			MessageID: s.MessageID,
			Text:      "❌ Запись отменена.",
		})
		if err != nil {
			h.logger.Warn("Failed to close booking message", zap.Error(err))
		}
		return nil
	})

	hadBooking := err == nil
	if err != nil && !errors.Is(err, state.ErrNoBookingSession) {
		h.logger.Error("Failed to cancel booking dialog", zap.Int64("telegram_id", telegramID), zap.Error(err))
	}

	if !hadBooking && h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendMessage(ctx, b, chatID, "❌ Нет активных операций для отмены.")
		return
	}

	// Очищаем состояние вместе с диалогом записи
	h.stateManager.ClearState(telegramID)

	h.sendMessage(ctx, b, chatID, "✅ Операция отменена.\n\nИспользуйте /help для просмотра доступных команд.")
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" || update.Message.From == nil {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	switch currentState {
	case state.StateNone:
		h.logger.Debug("No active state, ignoring message",
			zap.Int64("telegram_id", telegramID))
	case state.StateBookingTopic:
		h.handleBookingTopic(ctx, b, update)
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}

// handleBookingTopic сохраняет тему занятия и перерисовывает диалог записи
func (h *Handlers) handleBookingTopic(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	topic := strings.TrimSpace(update.Message.Text)

	if utf8.RuneCountInString(topic) > TopicMaxLength {
		h.sendError(ctx, b, chatID, fmt.Sprintf(
			"❌ Тема слишком длинная (максимум %d символов).\n\nПопробуйте короче или отправьте /cancel для отмены.",
			TopicMaxLength))
		return
	}

	err := h.stateManager.WithBooking(telegramID, func(s *state.BookingSession) error {
		if err := s.Flow.SetTopic(topic); err != nil {
			return err
		}
		return customer.RenderSession(ctx, b, s)
	})

	h.deleteTopicPrompt(ctx, b, telegramID, chatID)
	h.stateManager.SetState(telegramID, state.StateNone)

	if err != nil {
		h.logger.Warn("Failed to save booking topic",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.sendError(ctx, b, chatID, "⌛ Диалог записи уже закрыт. Начните заново из /courses")
		return
	}

	h.logger.Info("Booking topic saved", zap.Int64("telegram_id", telegramID))
	h.sendMessage(ctx, b, chatID, "✅ Тема сохранена. Подтвердите запись в сообщении выше.")
}

// deleteTopicPrompt убирает из чата просьбу ввести тему
func (h *Handlers) deleteTopicPrompt(ctx context.Context, b *bot.Bot, telegramID, chatID int64) {
	raw, ok := h.stateManager.GetData(telegramID, state.DataTopicPrompt)
	if !ok {
		return
	}
	promptID, ok := raw.(int)
	if !ok {
		return
	}

	if _, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: chatID, MessageID: promptID}); err != nil {
		h.logger.Debug("Failed to delete topic prompt", zap.Error(err))
	}
}
