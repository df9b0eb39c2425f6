package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/customer"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Callback Data Patterns
// ========================

// Common callbacks
const (
	BackToMain    = "back_to_main"
	BackToCourses = "back_to_courses"
	Noop          = "noop"
)

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Debug("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	switch {
	// ===== Common Navigation =====
	case data == BackToMain:
		common.HandleBackToMain(ctx, b, callback, h)
	case data == BackToCourses:
		common.HandleBackToCourses(ctx, b, callback, h)
	case data == Noop:
		// Индикатор страницы - просто подтверждаем callback
		common.AnswerCallback(ctx, b, callback.ID, "")

	// ===== Catalog =====
	case strings.HasPrefix(data, customer.CoursesPage):
		customer.HandleCoursesPage(ctx, b, callback, h)

	// ===== Booking Dialog =====
	case strings.HasPrefix(data, customer.BookCourse):
		customer.HandleBookCourse(ctx, b, callback, h)
	case strings.HasPrefix(data, customer.FunnelPrefix):
		customer.HandleFunnel(ctx, b, callback, h)

	// ===== My Bookings =====
	case data == customer.MyBookings:
		customer.HandleMyBookings(ctx, b, callback, h)
	case strings.HasPrefix(data, customer.CancelBooking):
		customer.HandleCancelBooking(ctx, b, callback, h)
	case strings.HasPrefix(data, customer.ConfirmCancel):
		customer.HandleConfirmCancel(ctx, b, callback, h)

	// ===== Unknown Callback =====
	default:
		h.Logger.Warn("Unknown callback",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, "❌ Неизвестная команда")
	}
}
