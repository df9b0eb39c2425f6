package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/Freeeeeet/mentor_booking_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleRepository struct {
	*base.Repository
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{Repository: base.NewRepository(pool)}
}

// Дата и время читаются текстом: так на границе с БД не бывает
// сдвига из-за часового пояса сервера или драйвера.
const scheduleSelect = `
	SELECT id, course_id,
	       to_char(date, 'YYYY-MM-DD'),
	       to_char(time, 'HH24:MI:SS'),
	       COALESCE(mode, ''),
	       COALESCE(location, ''),
	       COALESCE(note, '')
	FROM course_schedules
`

// GetByCourseID получает все записи расписания курса, включая невалидные
func (r *ScheduleRepository) GetByCourseID(ctx context.Context, courseID int64) ([]model.ScheduleRecord, error) {
	query := scheduleSelect + `
		WHERE course_id = $1
		ORDER BY date, time, id
	`

	rows, err := r.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("get schedules by course: %w", err)
	}
	defer rows.Close()

	var records []model.ScheduleRecord
	for rows.Next() {
		var rec model.ScheduleRecord
		err := rows.Scan(
			&rec.ID,
			&rec.CourseID,
			&rec.Date,
			&rec.Time,
			&rec.Mode,
			&rec.Location,
			&rec.Note,
		)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedules: %w", err)
	}

	return records, nil
}

// GetByID получает запись расписания по ID
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*model.ScheduleRecord, error) {
	query := scheduleSelect + `WHERE id = $1`

	var rec model.ScheduleRecord
	err := r.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.CourseID,
		&rec.Date,
		&rec.Time,
		&rec.Mode,
		&rec.Location,
		&rec.Note,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get schedule by id: %w", err)
	}

	return &rec, nil
}
