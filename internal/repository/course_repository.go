package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/Freeeeeet/mentor_booking_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CourseRepository struct {
	*base.Repository
	logger *zap.Logger
}

func NewCourseRepository(pool *pgxpool.Pool, logger *zap.Logger) *CourseRepository {
	return &CourseRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// GetByID получает курс по ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	query := `
		SELECT id, mentor_id, title, description, price, is_active, created_at
		FROM courses
		WHERE id = $1
	`

	var course model.Course
	err := r.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.MentorID,
		&course.Title,
		&course.Description,
		&course.Price,
		&course.IsActive,
		&course.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get course by id: %w", err)
	}

	return &course, nil
}

// ListActive получает активные курсы вместе с менторами
func (r *CourseRepository) ListActive(ctx context.Context, limit, offset int) ([]*model.Course, error) {
	query := `
		SELECT c.id, c.mentor_id, c.title, c.description, c.price, c.is_active, c.created_at,
		       u.id, u.first_name, u.last_name, u.username
		FROM courses c
		JOIN users u ON u.id = c.mentor_id
		WHERE c.is_active = true
		ORDER BY c.title, c.id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list active courses: %w", err)
	}
	defer rows.Close()

	var courses []*model.Course
	for rows.Next() {
		var course model.Course
		mentor := &model.User{Role: model.UserRoleMentor}
		err := rows.Scan(
			&course.ID,
			&course.MentorID,
			&course.Title,
			&course.Description,
			&course.Price,
			&course.IsActive,
			&course.CreatedAt,
			&mentor.ID,
			&mentor.FirstName,
			&mentor.LastName,
			&mentor.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		course.Mentor = mentor
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}

	r.logger.Debug("Active courses loaded", zap.Int("count", len(courses)))

	return courses, nil
}

// CountActive возвращает количество активных курсов
func (r *CourseRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.QueryRow(ctx, `SELECT COUNT(*) FROM courses WHERE is_active = true`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active courses: %w", err)
	}
	return count, nil
}
