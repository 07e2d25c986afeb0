package models

import "time"

// UsageLedgerEntry — запись журнала использования: сколько минут
// член клуба потратил в конкретной сессии в конкретный день.
// На пару (почта, сессия) приходится не более одной записи;
// сумма записей за день — дневное использование члена клуба.
type UsageLedgerEntry struct {
	MemberEmail string    // Почта члена клуба
	Date        time.Time // Дата использования
	SessionID   int       // Сессия, в которой потрачены минуты
	Minutes     int       // Потраченные минуты
}

// LedgerWrite — минуты одного участника для записи в журнал
// при фиксации или перерасчёте сессии.
type LedgerWrite struct {
	Email   string // Почта члена клуба
	Minutes int    // Минуты, отнесённые на участника
}

// GuestPassRecord — счётчик гостевых пропусков члена клуба за месяц.
type GuestPassRecord struct {
	MemberEmail string `json:"member_email"` // Почта члена клуба
	Month       string `json:"month"`        // Месяц в формате 2006-01
	PassesUsed  int    `json:"passes_used"`  // Использовано пропусков
	PassesTotal int    `json:"passes_total"` // Всего пропусков в месяц
}

// DailyUsageSummary — сводка дневного использования члена клуба,
// отдаётся экрану регистрации на стойке.
type DailyUsageSummary struct {
	Email            string `json:"email"`                     // Почта члена клуба
	Date             string `json:"date"`                      // Дата в формате 2006-01-02
	TierName         string `json:"tier_name,omitempty"`       // Тариф члена клуба
	MinutesUsed      int    `json:"minutes_used"`              // Потрачено минут за день
	DailyAllowance   int    `json:"daily_allowance"`           // Дневной лимит тарифа
	RemainingMinutes int    `json:"remaining_minutes"`         // Остаток минут на день
	Unlimited        bool   `json:"unlimited"`                 // Безлимитный тариф
	TierUnresolved   bool   `json:"tier_unresolved,omitempty"` // Тариф не определён, нужна проверка данных
}

// GuestPassStatus — состояние гостевых пропусков члена клуба за текущий месяц.
type GuestPassStatus struct {
	Email           string `json:"email"`               // Почта члена клуба
	Month           string `json:"month"`               // Месяц в формате 2006-01
	TierName        string `json:"tier_name,omitempty"` // Тариф члена клуба
	HasBenefit      bool   `json:"has_benefit"`         // Есть ли право на пропуска
	PassesUsed      int    `json:"passes_used"`         // Использовано за месяц
	PassesTotal     int    `json:"passes_total"`        // Всего в месяц
	PassesRemaining int    `json:"passes_remaining"`    // Остаток
	UnlimitedPasses bool   `json:"unlimited_passes"`    // Безлимитные пропуска
}
