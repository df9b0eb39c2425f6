package model

// Mode формат проведения занятия
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// Valid проверяет, что формат один из поддерживаемых.
// Пустое или неизвестное значение делает запись расписания невалидной.
func (m Mode) Valid() bool {
	return m == ModeOnline || m == ModeOffline
}

// ScheduleRecord одна конкретная возможность записаться на занятие курса
type ScheduleRecord struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"course_id"`
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // HH:MM:SS
	Mode     Mode   `json:"mode"`
	Location string `json:"location"` // имеет смысл только для offline
	Note     string `json:"note"`
}

// Normalized возвращает копию записи с приведёнными датой, временем и местом
func (r ScheduleRecord) Normalized() ScheduleRecord {
	r.Date = NormalizeDate(r.Date)
	r.Time = NormalizeTime(r.Time)
	r.Location = NormalizeLocation(r.Location)
	return r
}
