package utils

import (
	"time"

	"github.com/aarondl/null/v8"
)

const DateTimeLayout = "2006-01-02 15:04:05"

// FormatDateTime форматирует метку времени как "YYYY-MM-DD HH:MM:SS" или возвращает null.
func FormatDateTime(t null.Time) null.String {
	if !t.Valid {
		return null.String{}
	}
	return null.StringFrom(t.Time.Format(DateTimeLayout))
}

// Now - текущее время без долей секунды, в том виде, в каком оно попадет в ответ.
func Now() time.Time {
	return time.Now().Truncate(time.Second)
}
