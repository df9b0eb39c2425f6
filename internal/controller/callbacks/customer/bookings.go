package customer

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const (
	MyBookings    = "my_bookings"
	CancelBooking = "cancel_booking:" // cancel_booking:<booking_id>
	ConfirmCancel = "confirm_cancel:" // confirm_cancel:<booking_id>

	maxListedBookings = 10
)

// BuildBookingsList строит список записей клиента, новые сверху
func BuildBookingsList(bookings []*model.Booking) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder()

	if len(bookings) == 0 {
		kb.Row(keyboard.BackToCoursesButton())
		return "📭 У вас пока нет записей.\n\nЗаписаться: /courses", kb.Build()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 <b>Мои записи</b> (%d %s)\n\n", len(bookings), formatting.PluralizeBookings(len(bookings)))

	shown := bookings
	if len(shown) > maxListedBookings {
		shown = shown[:maxListedBookings]
	}

	for _, b := range shown {
		status := formatting.GetBookingStatusDisplay(b.Status)
		title := "Курс"
		if b.Course != nil {
			title = b.Course.Title
		}

		fmt.Fprintf(&sb, "%s <b>#%d %s</b>\n", status.Emoji, b.ID, html.EscapeString(title))
		writeBookingDetails(&sb, b)
		fmt.Fprintf(&sb, "Статус: %s\n\n", status.Text)

		if b.IsActive() {
			kb.Row(keyboard.Button(fmt.Sprintf("❌ Отменить #%d", b.ID), fmt.Sprintf("%s%d", CancelBooking, b.ID)))
		}
	}

	if hidden := len(bookings) - len(shown); hidden > 0 {
		fmt.Fprintf(&sb, "…и ещё %d %s", hidden, formatting.PluralizeBookings(hidden))
	}

	kb.AddBackToMainButton()
	return strings.TrimRight(sb.String(), "\n"), kb.Build()
}

// SendMyBookings показывает записи клиента.
// Если messageID не 0, редактирует это сообщение вместо отправки нового.
func SendMyBookings(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, user *model.User, chatID int64, messageID int) error {
	bookings, err := h.BookingService.GetCustomerBookings(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("get customer bookings: %w", err)
	}

	text, kb := BuildBookingsList(bookings)

	if messageID != 0 {
		_, err = b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   messageID,
			Text:        text,
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: kb,
		})
		if common.IsMessageNotModifiedError(err) {
			return nil
		}
		return err
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	})
	return err
}

// HandleMyBookings показывает записи клиента в том же сообщении
func HandleMyBookings(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithUser(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if hc.Message == nil {
			common.HandleError(hc, common.ErrNoMessage, "my bookings")
			return
		}
		if err := SendMyBookings(ctx, b, h, hc.User, hc.ChatID, hc.Message.ID); err != nil {
			common.HandleError(hc, err, "my bookings")
			return
		}
		hc.Answer("")
	})
}

// HandleCancelBooking спрашивает подтверждение отмены записи
func HandleCancelBooking(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithUser(ctx, b, callback, h, func(hc *common.HandlerContext) {
		bookingID, err := common.ParseIDFromCallback(callback.Data)
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "cancel booking")
			return
		}

		text := fmt.Sprintf("❓ Отменить запись #%d?", bookingID)
		kb := keyboard.NewBuilder().
			AddRows(keyboard.YesNoButtons(fmt.Sprintf("%s%d", ConfirmCancel, bookingID), MyBookings)).
			Build()

		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "cancel booking")
			return
		}
		hc.Answer("")
	})
}

// HandleConfirmCancel отменяет запись и сообщает об этом ментору
func HandleConfirmCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithUser(ctx, b, callback, h, func(hc *common.HandlerContext) {
		bookingID, err := common.ParseIDFromCallback(callback.Data)
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "confirm cancel")
			return
		}

		if err := h.BookingService.CancelBooking(ctx, bookingID, hc.User.ID); err != nil {
			common.HandleWarn(hc, err, "confirm cancel")
			return
		}

		notifyCanceled(hc, bookingID)

		if hc.Message != nil {
			if err := SendMyBookings(ctx, b, h, hc.User, hc.ChatID, hc.Message.ID); err != nil {
				h.Logger.Error("Failed to refresh bookings", zap.Error(err))
			}
		}
		hc.Answer("✅ Запись отменена")
	})
}

// notifyCanceled сообщает второй стороне об отмене. Ошибки только логируются.
func notifyCanceled(hc *common.HandlerContext, bookingID int64) {
	h := hc.Handler

	canceled, err := h.BookingService.GetByID(hc.Ctx, bookingID)
	if err != nil || canceled == nil {
		h.Logger.Warn("Canceled booking not found", zap.Int64("booking_id", bookingID), zap.Error(err))
		return
	}

	otherID := canceled.MentorID
	if hc.User.ID == canceled.MentorID {
		otherID = canceled.CustomerID
	}

	other, err := h.UserService.GetByID(hc.Ctx, otherID)
	if err != nil || other == nil {
		h.Logger.Warn("Booking participant not found", zap.Int64("user_id", otherID), zap.Error(err))
		return
	}

	_, err = hc.Bot.SendMessage(hc.Ctx, &bot.SendMessageParams{
		ChatID: other.TelegramID,
		Text:   fmt.Sprintf("🚫 Запись #%d отменена пользователем %s", bookingID, hc.User.DisplayName()),
	})
	if err != nil {
		h.Logger.Error("Failed to notify about cancellation",
			zap.Int64("booking_id", bookingID),
			zap.Error(err))
	}
}
