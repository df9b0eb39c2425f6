package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mentor_booking_bot/internal/booking"
	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/Freeeeeet/mentor_booking_bot/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService struct {
	courseRepo   *repository.CourseRepository
	scheduleRepo *repository.ScheduleRepository
	bookingRepo  *repository.BookingRepository
	logger       *zap.Logger
}

func NewBookingService(
	courseRepo *repository.CourseRepository,
	scheduleRepo *repository.ScheduleRepository,
	bookingRepo *repository.BookingRepository,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		courseRepo:   courseRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// customerSubmitter привязывает отправку записи к клиенту и диалогу
type customerSubmitter struct {
	svc        *BookingService
	customerID int64
	requestID  uuid.UUID
}

func (c *customerSubmitter) CreateBooking(ctx context.Context, record model.ScheduleRecord, topic string, mode model.Mode, location string) (*model.Booking, error) {
	return c.svc.createBooking(ctx, c.customerID, c.requestID, record, topic, mode, location)
}

// ForCustomer возвращает исполнителя для подтверждённого диалога клиента.
// requestID - идентификатор диалога, повторная отправка не создаёт вторую запись.
func (s *BookingService) ForCustomer(customerID int64, requestID uuid.UUID) booking.Submitter {
	return &customerSubmitter{
		svc:        s,
		customerID: customerID,
		requestID:  requestID,
	}
}

func (s *BookingService) createBooking(
	ctx context.Context,
	customerID int64,
	requestID uuid.UUID,
	record model.ScheduleRecord,
	topic string,
	mode model.Mode,
	location string,
) (*model.Booking, error) {
	// Получаем информацию о курсе
	course, err := s.courseRepo.GetByID(ctx, record.CourseID)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	if course == nil {
		return nil, ErrCourseNotFound
	}

	if !course.IsActive {
		return nil, ErrCourseInactive
	}

	b := &model.Booking{
		RequestID:  requestID,
		CustomerID: customerID,
		MentorID:   course.MentorID,
		CourseID:   course.ID,
		ScheduleID: record.ID,
		Mode:       mode,
		Location:   location,
		Topic:      topic,
		Status:     model.BookingStatusPending,
	}

	created, err := s.bookingRepo.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if !created {
		// Диалог уже отправлял запись - возвращаем её
		existing, err := s.bookingRepo.GetByRequestID(ctx, requestID)
		if err != nil {
			return nil, fmt.Errorf("get existing booking: %w", err)
		}
		if existing == nil {
			return nil, ErrBookingNotFound
		}

		s.logger.Info("Duplicate booking request",
			zap.Int64("booking_id", existing.ID),
			zap.String("request_id", requestID.String()),
		)

		b = existing
	} else {
		s.logger.Info("Booking created",
			zap.Int64("booking_id", b.ID),
			zap.Int64("customer_id", customerID),
			zap.Int64("course_id", course.ID),
			zap.Int64("schedule_id", record.ID),
			zap.String("mode", string(mode)),
			zap.String("request_id", requestID.String()),
		)
	}

	// Возвращаем бронирование с заполненными данными для уведомлений
	b.Course = course
	b.Schedule = &record

	return b, nil
}

// GetByID получает бронирование по ID
func (s *BookingService) GetByID(ctx context.Context, bookingID int64) (*model.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

// GetCustomerBookings получает все бронирования клиента с курсами и временем занятий
func (s *BookingService) GetCustomerBookings(ctx context.Context, customerID int64) ([]*model.Booking, error) {
	bookings, err := s.bookingRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	courses := make(map[int64]*model.Course)
	for _, b := range bookings {
		course, ok := courses[b.CourseID]
		if !ok {
			course, err = s.courseRepo.GetByID(ctx, b.CourseID)
			if err != nil {
				return nil, fmt.Errorf("get course: %w", err)
			}
			courses[b.CourseID] = course
		}
		b.Course = course

		schedule, err := s.scheduleRepo.GetByID(ctx, b.ScheduleID)
		if err != nil {
			return nil, fmt.Errorf("get schedule: %w", err)
		}
		if schedule != nil {
			normalized := schedule.Normalized()
			b.Schedule = &normalized
		}
	}

	return bookings, nil
}

// CancelBooking отменяет бронирование
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, userID int64) error {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if b == nil {
		return ErrBookingNotFound
	}

	// Проверяем что пользователь имеет право отменить
	if b.CustomerID != userID && b.MentorID != userID {
		return ErrNoPermission
	}

	if !b.IsActive() {
		return ErrBookingNotActive
	}

	err = s.bookingRepo.UpdateStatus(ctx, bookingID, model.BookingStatusCanceled)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	s.logger.Info("Booking canceled",
		zap.Int64("booking_id", bookingID),
		zap.Int64("user_id", userID),
	)

	return nil
}
