package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/Freeeeeet/mentor_booking_bot/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	*base.Repository
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{Repository: base.NewRepository(pool)}
}

const bookingColumns = `id, request_id, customer_id, mentor_id, course_id, schedule_id, mode, location, topic, status, created_at, updated_at`

func scanBooking(row interface{ Scan(dest ...any) error }) (*model.Booking, error) {
	var booking model.Booking
	err := row.Scan(
		&booking.ID,
		&booking.RequestID,
		&booking.CustomerID,
		&booking.MentorID,
		&booking.CourseID,
		&booking.ScheduleID,
		&booking.Mode,
		&booking.Location,
		&booking.Topic,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Create создаёт новое бронирование.
// Повторная вставка с тем же request_id ничего не меняет и возвращает false.
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) (bool, error) {
	query := `
		INSERT INTO bookings (request_id, customer_id, mentor_id, course_id, schedule_id, mode, location, topic, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (request_id) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := r.QueryRow(
		ctx, query,
		booking.RequestID,
		booking.CustomerID,
		booking.MentorID,
		booking.CourseID,
		booking.ScheduleID,
		booking.Mode,
		booking.Location,
		booking.Topic,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		if base.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("create booking: %w", err)
	}

	return true, nil
}

// GetByID получает бронирование по ID
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}

	return booking, nil
}

// GetByRequestID получает бронирование, созданное из диалога
func (r *BookingRepository) GetByRequestID(ctx context.Context, requestID uuid.UUID) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE request_id = $1`

	booking, err := scanBooking(r.QueryRow(ctx, query, requestID))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking by request id: %w", err)
	}

	return booking, nil
}

// GetByCustomerID получает все бронирования клиента
func (r *BookingRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]*model.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("get bookings by customer: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = now()
		WHERE id = $2
	`

	affected, err := r.ExecAffected(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}
