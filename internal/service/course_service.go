package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/Freeeeeet/mentor_booking_bot/internal/repository"
	"go.uber.org/zap"
)

type CourseService struct {
	courseRepo   *repository.CourseRepository
	scheduleRepo *repository.ScheduleRepository
	userRepo     *repository.UserRepository
	logger       *zap.Logger
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	scheduleRepo *repository.ScheduleRepository,
	userRepo *repository.UserRepository,
	logger *zap.Logger,
) *CourseService {
	return &CourseService{
		courseRepo:   courseRepo,
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// ListCourses получает активные курсы с расписанием для карточек каталога
func (s *CourseService) ListCourses(ctx context.Context, limit, offset int) ([]*model.Course, error) {
	courses, err := s.courseRepo.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	for _, course := range courses {
		schedules, err := s.LoadSchedule(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		course.Schedules = schedules
	}

	return courses, nil
}

// CountCourses возвращает количество активных курсов для пагинации каталога
func (s *CourseService) CountCourses(ctx context.Context) (int, error) {
	return s.courseRepo.CountActive(ctx)
}

// GetCourseWithSchedule получает курс, его ментора и снимок расписания.
// Расписание отдаётся целиком, вместе с невалидными записями.
func (s *CourseService) GetCourseWithSchedule(ctx context.Context, courseID int64) (*model.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	if course == nil {
		return nil, ErrCourseNotFound
	}

	mentor, err := s.userRepo.GetByID(ctx, course.MentorID)
	if err != nil {
		return nil, fmt.Errorf("get mentor: %w", err)
	}
	course.Mentor = mentor

	course.Schedules, err = s.LoadSchedule(ctx, courseID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Course loaded",
		zap.Int64("course_id", courseID),
		zap.Int("schedules", len(course.Schedules)),
	)

	return course, nil
}

// LoadSchedule заново читает расписание курса и нормализует записи
func (s *CourseService) LoadSchedule(ctx context.Context, courseID int64) ([]model.ScheduleRecord, error) {
	records, err := s.scheduleRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	normalized := make([]model.ScheduleRecord, len(records))
	for i, r := range records {
		normalized[i] = r.Normalized()
	}

	return normalized, nil
}
