// Package availability выводит варианты выбора для записи на занятие
// из сырого набора записей расписания курса.
//
// Все функции чистые: входной срез не меняется, записи не создаются и
// не объединяются. Функции, кроме ValidSchedules, ожидают уже
// отфильтрованный ValidSchedules набор.
package availability

import (
	"slices"

	"github.com/Freeeeeet/mentor_booking_bot/internal/model"
)

// ValidSchedules возвращает записи с форматом online или offline.
// Единственный шаг, который отбрасывает записи целиком.
func ValidSchedules(records []model.ScheduleRecord) []model.ScheduleRecord {
	valid := make([]model.ScheduleRecord, 0, len(records))
	for _, r := range records {
		if r.Mode.Valid() {
			valid = append(valid, r)
		}
	}
	return valid
}

// AvailableModes возвращает форматы, которые есть в расписании.
// Пустой результат означает, что расписания нет совсем.
func AvailableModes(valid []model.ScheduleRecord) []model.Mode {
	var modes []model.Mode
	for _, m := range []model.Mode{model.ModeOnline, model.ModeOffline} {
		if slices.ContainsFunc(valid, func(r model.ScheduleRecord) bool { return r.Mode == m }) {
			modes = append(modes, m)
		}
	}
	return modes
}

// AvailableLocations возвращает непустые места для offline занятий.
// Для online выбор места пропускается, поэтому результат пустой.
func AvailableLocations(valid []model.ScheduleRecord, mode model.Mode) []string {
	if mode != model.ModeOffline {
		return nil
	}

	seen := make(map[string]struct{})
	for _, r := range valid {
		if r.Mode != mode {
			continue
		}
		loc := model.NormalizeLocation(r.Location)
		if loc == "" {
			continue
		}
		seen[loc] = struct{}{}
	}
	return sortedKeys(seen)
}

// AvailableDates возвращает даты для формата и места.
// Пока место для offline не выбрано, возвращаются все offline даты.
func AvailableDates(valid []model.ScheduleRecord, mode model.Mode, location string) []string {
	seen := make(map[string]struct{})
	for _, r := range valid {
		if !matchesMode(r, mode, location) {
			continue
		}
		seen[model.NormalizeDate(r.Date)] = struct{}{}
	}
	return sortedKeys(seen)
}

// AvailableTimes возвращает время занятий для формата, места и даты
func AvailableTimes(valid []model.ScheduleRecord, mode model.Mode, location, date string) []string {
	date = model.NormalizeDate(date)

	seen := make(map[string]struct{})
	for _, r := range valid {
		if !matchesMode(r, mode, location) || model.NormalizeDate(r.Date) != date {
			continue
		}
		seen[model.NormalizeTime(r.Time)] = struct{}{}
	}
	return sortedKeys(seen)
}

// FindExactMatch ищет запись, полностью совпадающую с выбором.
// Для online место не учитывается. Для offline место сравнивается строго,
// в том числе пустое. При дубликатах возвращается первая запись в порядке входа.
func FindExactMatch(valid []model.ScheduleRecord, mode model.Mode, location, date, clock string) (model.ScheduleRecord, bool) {
	if !mode.Valid() {
		return model.ScheduleRecord{}, false
	}

	date = model.NormalizeDate(date)
	clock = model.NormalizeTime(clock)
	location = model.NormalizeLocation(location)

	for _, r := range valid {
		if r.Mode != mode {
			continue
		}
		if mode == model.ModeOffline && model.NormalizeLocation(r.Location) != location {
			continue
		}
		if model.NormalizeDate(r.Date) == date && model.NormalizeTime(r.Time) == clock {
			return r, true
		}
	}
	return model.ScheduleRecord{}, false
}

func matchesMode(r model.ScheduleRecord, mode model.Mode, location string) bool {
	if r.Mode != mode {
		return false
	}
	location = model.NormalizeLocation(location)
	if mode == model.ModeOffline && location != "" {
		return model.NormalizeLocation(r.Location) == location
	}
	return true
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
