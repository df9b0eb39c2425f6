package handlers

import (
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/mentor_booking_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService    *service.UserService
	courseService  *service.CourseService
	bookingService *service.BookingService
	stateManager   *state.Manager
	logger         *zap.Logger

	// Те же зависимости для экранов, общих с callback handlers
	deps *callbacktypes.Handler
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	userService *service.UserService,
	courseService *service.CourseService,
	bookingService *service.BookingService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:    userService,
		courseService:  courseService,
		bookingService: bookingService,
		stateManager:   stateManager,
		logger:         logger,
		deps: &callbacktypes.Handler{
			UserService:    userService,
			CourseService:  courseService,
			BookingService: bookingService,
			StateManager:   stateManager,
			Logger:         logger,
		},
	}
}
