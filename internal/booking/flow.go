// Package booking ведёт пользователя по воронке записи на занятие:
// формат → место → дата → время, и проверяет итоговый выбор по расписанию.
package booking

import (
	"slices"
	"strings"

	"github.com/Freeeeeet/mentor_booking_bot/internal/availability"
	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
	"github.com/google/uuid"
)

// Flow один диалог записи на курс.
// Flow не потокобезопасен: им владеет ровно один диалог.
type Flow struct {
	id       uuid.UUID
	courseID int64
	valid    []model.ScheduleRecord
	draft    Draft
	state    State
	observer func(Snapshot)
}

// Option настраивает Flow при создании
type Option func(*Flow)

// WithObserver подписывает хост на изменения после каждого перехода
func WithObserver(fn func(Snapshot)) Option {
	return func(f *Flow) {
		f.observer = fn
	}
}

// WithID задаёт идентификатор диалога вместо случайного
func WithID(id uuid.UUID) Option {
	return func(f *Flow) {
		f.id = id
	}
}

// NewFlow открывает диалог записи по снимку расписания курса.
// Если валидных записей нет, воронка выключена: Available возвращает
// ErrNoScheduleAvailable, вариантов выбора нет.
func NewFlow(course *model.Course, opts ...Option) *Flow {
	f := &Flow{
		id:       uuid.New(),
		courseID: course.ID,
		valid:    availability.ValidSchedules(course.Schedules),
		state:    StateEmpty,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Flow) ID() uuid.UUID   { return f.id }
func (f *Flow) CourseID() int64 { return f.courseID }
func (f *Flow) State() State    { return f.state }
func (f *Flow) Draft() Draft    { return f.draft }

// Available сообщает, можно ли вообще пользоваться воронкой
func (f *Flow) Available() error {
	if len(f.valid) == 0 {
		return ErrNoScheduleAvailable
	}
	return nil
}

// Options пересчитывает варианты для текущего черновика.
// Списки для уже пройденных шагов тоже заполняются, чтобы их можно было перевыбрать.
func (f *Flow) Options() Options {
	var opts Options
	if f.state.Closed() || len(f.valid) == 0 {
		return opts
	}

	d := f.draft
	opts.Modes = availability.AvailableModes(f.valid)
	if d.Mode == "" {
		return opts
	}

	if d.Mode == model.ModeOffline {
		opts.Locations = availability.AvailableLocations(f.valid, d.Mode)
		if d.Location == "" {
			return opts
		}
	}

	opts.Dates = availability.AvailableDates(f.valid, d.Mode, d.Location)
	if d.Date == "" {
		return opts
	}

	opts.Times = availability.AvailableTimes(f.valid, d.Mode, d.Location, d.Date)
	return opts
}

// Snapshot возвращает состояние, черновик и текущие варианты
func (f *Flow) Snapshot() Snapshot {
	return Snapshot{
		State:   f.state,
		Draft:   f.draft,
		Options: f.Options(),
	}
}

// SetMode выбирает формат и сбрасывает всё, что выбрано после него
func (f *Flow) SetMode(mode model.Mode) error {
	if err := f.guardOpen(); err != nil {
		return err
	}
	if !slices.Contains(availability.AvailableModes(f.valid), mode) {
		return ErrStaleSelection
	}

	f.draft = Draft{Mode: mode, Topic: f.draft.Topic}
	f.transition(StateModeChosen)
	return nil
}

// SetLocation выбирает место offline занятия и сбрасывает дату и время
func (f *Flow) SetLocation(location string) error {
	if err := f.guardOpen(); err != nil {
		return err
	}
	if f.draft.Mode == "" {
		return &IncompleteSelectionError{Missing: []Field{FieldMode}}
	}
	if f.draft.Mode != model.ModeOffline {
		return ErrStaleSelection
	}

	location = model.NormalizeLocation(location)
	if !slices.Contains(availability.AvailableLocations(f.valid, f.draft.Mode), location) {
		return ErrStaleSelection
	}

	f.draft.Location = location
	f.draft.Date = ""
	f.draft.Time = ""
	f.transition(StateLocationChosen)
	return nil
}

// SetDate выбирает дату и сбрасывает время
func (f *Flow) SetDate(date string) error {
	if err := f.guardOpen(); err != nil {
		return err
	}
	if missing := f.draft.missingBefore(FieldDate); len(missing) > 0 {
		return &IncompleteSelectionError{Missing: missing}
	}

	date = model.NormalizeDate(date)
	if !slices.Contains(availability.AvailableDates(f.valid, f.draft.Mode, f.draft.Location), date) {
		return ErrStaleSelection
	}

	f.draft.Date = date
	f.draft.Time = ""
	f.transition(StateDateChosen)
	return nil
}

// SetTime выбирает время занятия, после чего черновик полный
func (f *Flow) SetTime(clock string) error {
	if err := f.guardOpen(); err != nil {
		return err
	}
	if missing := f.draft.missingBefore(FieldTime); len(missing) > 0 {
		return &IncompleteSelectionError{Missing: missing}
	}

	clock = model.NormalizeTime(clock)
	if !slices.Contains(availability.AvailableTimes(f.valid, f.draft.Mode, f.draft.Location, f.draft.Date), clock) {
		return ErrStaleSelection
	}

	f.draft.Time = clock
	f.transition(StateTimeChosen)
	return nil
}

// SetTopic запоминает тему занятия. Шаг воронки не меняется.
func (f *Flow) SetTopic(topic string) error {
	if f.state.Closed() {
		return ErrFlowClosed
	}
	f.draft.Topic = strings.TrimSpace(topic)
	return nil
}

// Back возвращает воронку на шаг назад, очищая последний выбор
func (f *Flow) Back() error {
	if err := f.guardOpen(); err != nil {
		return err
	}

	switch f.state {
	case StateTimeChosen:
		f.draft.Time = ""
		f.transition(StateDateChosen)
	case StateDateChosen:
		f.draft.Date = ""
		if f.draft.Mode == model.ModeOffline {
			f.transition(StateLocationChosen)
		} else {
			f.transition(StateModeChosen)
		}
	case StateLocationChosen:
		f.draft.Location = ""
		f.transition(StateModeChosen)
	case StateModeChosen:
		f.draft = Draft{Topic: f.draft.Topic}
		f.transition(StateEmpty)
	}
	return nil
}

// Resync заменяет снимок расписания, не трогая черновик.
// Если выбранной записи больше нет, Submit вернёт ErrStaleSelection.
func (f *Flow) Resync(records []model.ScheduleRecord) error {
	if f.state.Closed() {
		return ErrFlowClosed
	}
	f.valid = availability.ValidSchedules(records)
	f.notify()
	return nil
}

// Submit проверяет полный черновик по расписанию.
// При успехе диалог переходит в Confirmed и возвращает найденную запись;
// при ошибке состояние и черновик не меняются.
func (f *Flow) Submit(topic string) (*Confirmation, error) {
	if err := f.guardOpen(); err != nil {
		return nil, err
	}
	if missing := f.draft.Missing(); len(missing) > 0 {
		return nil, &IncompleteSelectionError{Missing: missing}
	}

	d := f.draft
	record, ok := availability.FindExactMatch(f.valid, d.Mode, d.Location, d.Date, d.Time)
	if !ok {
		return nil, ErrStaleSelection
	}

	location := d.Location
	if d.Mode == model.ModeOnline {
		location = ""
	}

	f.draft.Topic = strings.TrimSpace(topic)
	f.transition(StateConfirmed)

	return &Confirmation{
		FlowID:   f.id,
		CourseID: f.courseID,
		Record:   record,
		Topic:    f.draft.Topic,
		Mode:     d.Mode,
		Location: location,
	}, nil
}

// Cancel закрывает диалог и выбрасывает черновик
func (f *Flow) Cancel() error {
	if f.state.Closed() {
		return ErrFlowClosed
	}
	f.draft = Draft{}
	f.transition(StateCanceled)
	return nil
}

func (f *Flow) guardOpen() error {
	if f.state.Closed() {
		return ErrFlowClosed
	}
	if len(f.valid) == 0 {
		return ErrNoScheduleAvailable
	}
	return nil
}

func (f *Flow) transition(to State) {
	f.state = to
	f.notify()
}

func (f *Flow) notify() {
	if f.observer != nil {
		f.observer(f.Snapshot())
	}
}
