package booking

import (
	"errors"
	"strings"
)

var (
	// ErrNoScheduleAvailable у курса нет ни одной валидной записи расписания
	ErrNoScheduleAvailable = errors.New("no schedule available")
	// ErrIncompleteSelection выбраны не все обязательные поля
	ErrIncompleteSelection = errors.New("incomplete selection")
	// ErrStaleSelection выбор не соответствует ни одной записи расписания
	ErrStaleSelection = errors.New("stale or invalid selection")
	// ErrFlowClosed диалог уже подтверждён или отменён
	ErrFlowClosed = errors.New("booking flow is closed")
)

// Field поле черновика записи
type Field string

const (
	FieldMode     Field = "mode"
	FieldLocation Field = "location"
	FieldDate     Field = "date"
	FieldTime     Field = "time"
)

// IncompleteSelectionError перечисляет поля, которые нужно выбрать
type IncompleteSelectionError struct {
	Missing []Field
}

func (e *IncompleteSelectionError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return "incomplete selection: missing " + strings.Join(names, ", ")
}

func (e *IncompleteSelectionError) Is(target error) bool {
	return target == ErrIncompleteSelection
}
