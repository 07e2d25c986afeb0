package models

import "time"

// Session представляет забронированную сессию симулятора:
// дата, длительность, хост и список участников. Используется
// при перерасчёте стоимости уже существующей сессии.
type Session struct {
	ID              int           // Идентификатор сессии
	Date            time.Time     // Дата сессии (без времени)
	DurationMinutes int           // Общая длительность в минутах
	HostEmail       string        // Почта хоста сессии
	Participants    []Participant // Участники в порядке добавления
}

// DummyBillingRequest используется для приёма данных расчёта из JSON-запроса.
// Дата приходит строкой в формате 2006-01-02 и парсится после валидации.
type DummyBillingRequest struct {
	Date             string             `json:"date" validate:"required,datetime=2006-01-02"`           // Дата сессии
	DurationMinutes  int                `json:"duration_minutes" validate:"required,gt=0"`              // Длительность в минутах
	HostEmail        string             `json:"host_email" validate:"required,email"`                   // Почта хоста
	Participants     []DummyParticipant `json:"participants" validate:"required,min=1,dive"`            // Участники
	ExcludeSessionID int                `json:"exclude_session_id,omitempty" validate:"omitempty,gt=0"` // Не учитывать минуты этой сессии
}

// DummyCommitRequest используется для приёма данных фиксации расчёта:
// тот же набор полей, что и для предварительного расчёта, плюс
// идентификатор сессии, за которой закрепляются записи журнала.
type DummyCommitRequest struct {
	SessionID       int                `json:"session_id" validate:"required,gt=0"`          // Идентификатор сессии
	Date            string             `json:"date" validate:"required,datetime=2006-01-02"` // Дата сессии
	DurationMinutes int                `json:"duration_minutes" validate:"required,gt=0"`    // Длительность в минутах
	HostEmail       string             `json:"host_email" validate:"required,email"`         // Почта хоста
	Participants    []DummyParticipant `json:"participants" validate:"required,min=1,dive"`  // Участники
}
