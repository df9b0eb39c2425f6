package booking

import (
	"slices"

	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
)

// Draft незавершённый выбор пользователя.
// Пустая строка означает, что поле ещё не выбрано: пустое значение
// никогда не предлагается как вариант.
type Draft struct {
	Mode     model.Mode `json:"mode"`
	Location string     `json:"location"` // только для offline
	Date     string     `json:"date"`
	Time     string     `json:"time"`
	Topic    string     `json:"topic"`
}

// Missing возвращает поля, без которых нельзя отправить запись
func (d Draft) Missing() []Field {
	var missing []Field
	if d.Mode == "" {
		missing = append(missing, FieldMode)
	}
	if d.Mode == model.ModeOffline && d.Location == "" {
		missing = append(missing, FieldLocation)
	}
	if d.Date == "" {
		missing = append(missing, FieldDate)
	}
	if d.Time == "" {
		missing = append(missing, FieldTime)
	}
	return missing
}

var funnelOrder = []Field{FieldMode, FieldLocation, FieldDate, FieldTime}

// missingBefore возвращает незаполненные поля, которые идут в воронке раньше field
func (d Draft) missingBefore(field Field) []Field {
	pos := slices.Index(funnelOrder, field)

	var missing []Field
	for _, f := range d.Missing() {
		if slices.Index(funnelOrder, f) < pos {
			missing = append(missing, f)
		}
	}
	return missing
}

// Options варианты, доступные на текущем шаге воронки
type Options struct {
	Modes     []model.Mode `json:"modes"`
	Locations []string     `json:"locations"`
	Dates     []string     `json:"dates"`
	Times     []string     `json:"times"`
}

// Snapshot состояние диалога, которое получает хост после каждого перехода
type Snapshot struct {
	State   State   `json:"state"`
	Draft   Draft   `json:"draft"`
	Options Options `json:"options"`
}
