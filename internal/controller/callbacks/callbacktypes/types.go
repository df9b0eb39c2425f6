package callbacktypes

import (
	"context"

	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/mentor_booking_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	UserService    *service.UserService
	CourseService  *service.CourseService
	BookingService *service.BookingService
	StateManager   *state.Manager
	Logger         *zap.Logger

	// Функция-хэндлер каталога из основного контроллера
	HandleCourses func(ctx context.Context, b *bot.Bot, update *models.Update)
}
