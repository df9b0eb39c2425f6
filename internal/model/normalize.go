package model

import (
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// NormalizeDate приводит дату к виду YYYY-MM-DD.
// Дата берётся из строки как есть, без перевода между часовыми поясами:
// "2024-06-03T00:00:00.000Z" -> "2024-06-03".
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= len(DateLayout) {
		if _, err := time.Parse(DateLayout, s[:len(DateLayout)]); err == nil {
			return s[:len(DateLayout)]
		}
	}
	// Встречается формат 03.06.2024
	if t, err := time.Parse("02.01.2006", s); err == nil {
		return t.Format(DateLayout)
	}
	return s
}

// NormalizeTime приводит время к виду HH:MM:SS.
// "10:00" -> "10:00:00", "10:00:00.000000" -> "10:00:00", "9:05" -> "09:05:00".
func NormalizeTime(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	for _, layout := range []string{TimeLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeLayout)
		}
	}
	return s
}

// NormalizeLocation убирает лишние пробелы в названии места
func NormalizeLocation(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DisplayTime возвращает только часы и минуты: "10:00:00" -> "10:00"
func DisplayTime(s string) string {
	s = NormalizeTime(s)
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}
