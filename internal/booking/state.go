package booking

// State шаг воронки записи
type State string

const (
	StateEmpty          State = "empty"
	StateModeChosen     State = "mode_chosen"
	StateLocationChosen State = "location_chosen"
	StateDateChosen     State = "date_chosen"
	StateTimeChosen     State = "time_chosen"
	StateConfirmed      State = "confirmed"
	StateCanceled       State = "canceled"
)

// Closed проверяет, что диалог завершён и больше не принимает выбор
func (s State) Closed() bool {
	return s == StateConfirmed || s == StateCanceled
}
