// Package month содержит вспомогательные функции работы с календарными
// ключами: журнал использования агрегируется по дням, гостевые пропуска —
// по месяцам.
package month

import "time"

// Key возвращает месячный ключ даты в формате 2006-01.
// Счётчики гостевых пропусков хранятся по такому ключу.
func Key(t time.Time) string {
	return t.Format("2006-01")
}

// DayStart обнуляет время, оставляя только календарную дату в UTC.
// Журнал использования оперирует датами без времени суток.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay сообщает, приходятся ли два момента на одну календарную дату.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
