package formatting

// pluralize выбирает форму слова для числа: one (1, 21), few (2-4, 22-24), many
func pluralize(count int, one, few, many string) string {
	if count < 0 {
		count = -count
	}
	if count%10 == 1 && count%100 != 11 {
		return one
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return few
	}
	return many
}

// PluralizeDates возвращает правильное склонение слова "дата"
func PluralizeDates(count int) string {
	return pluralize(count, "дата", "даты", "дат")
}

// PluralizeBookings возвращает правильное склонение слова "запись"
func PluralizeBookings(count int) string {
	return pluralize(count, "запись", "записи", "записей")
}

