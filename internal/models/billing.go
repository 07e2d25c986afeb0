package models

// ParticipantBilling — расчёт по одному участнику сессии.
// Не персистится: пересчитывается при каждом запросе расчёта.
// Для гостей поля тарифа и переработки остаются нулевыми,
// для членов клуба нулевыми остаются поля гостевого сбора.
type ParticipantBilling struct {
	DisplayName            string          `json:"display_name"`              // Отображаемое имя участника
	Email                  string          `json:"email,omitempty"`           // Почта (для owner и member)
	GuestID                string          `json:"guest_id,omitempty"`        // Идентификатор гостя
	Type                   ParticipantType `json:"type"`                      // Роль участника
	TierName               string          `json:"tier_name,omitempty"`       // Тариф участника
	TierUnresolved         bool            `json:"tier_unresolved,omitempty"` // Тариф или член клуба не найдены
	DailyAllowance         int             `json:"daily_allowance"`           // Дневной лимит тарифа
	UnlimitedAllowance     bool            `json:"unlimited_allowance"`       // Безлимитный тариф
	UsedMinutesToday       int             `json:"used_minutes_today"`        // Минуты, уже потраченные сегодня
	RemainingMinutesBefore int             `json:"remaining_minutes_before"`  // Остаток лимита до этой сессии
	MinutesAllocated       int             `json:"minutes_allocated"`         // Минуты, отнесённые на участника
	OverageMinutes         int             `json:"overage_minutes"`           // Минуты сверх лимита
	OverageFee             int             `json:"overage_fee"`               // Плата за переработку, долларов
	GuestPassUsed          bool            `json:"guest_pass_used"`           // Гостевой пропуск использован
	GuestFee               int             `json:"guest_fee"`                 // Гостевой сбор, долларов
}

// SessionBillingResult — полный результат расчёта стоимости сессии.
type SessionBillingResult struct {
	ParticipantCount int                  `json:"participant_count"`  // Всего участников
	GuestCount       int                  `json:"guest_count"`        // Из них гостей
	BillingBreakdown []ParticipantBilling `json:"billing_breakdown"`  // Построчный расчёт
	TotalOverageFees int                  `json:"total_overage_fees"` // Сумма плат за переработку
	TotalGuestFees   int                  `json:"total_guest_fees"`   // Сумма гостевых сборов
	TotalFees        int                  `json:"total_fees"`         // Итого к оплате
	GuestPassesUsed  int                  `json:"guest_passes_used"`  // Использовано гостевых пропусков
}

// RecalcResult — итог перерасчёта стоимости существующей сессии.
type RecalcResult struct {
	SessionID           int  `json:"session_id"`           // Идентификатор сессии
	LedgerUpdated       bool `json:"ledger_updated"`       // Журнал использования перезаписан
	ParticipantsUpdated int  `json:"participants_updated"` // Количество пересчитанных участников
}

// BillingEvent — событие биллинга, публикуемое в очередь для
// подсистемы уведомлений после фиксации или перерасчёта сессии.
type BillingEvent struct {
	EventID         string `json:"event_id"`          // Уникальный идентификатор события
	SessionID       int    `json:"session_id"`        // Сессия, по которой прошёл расчёт
	HostEmail       string `json:"host_email"`        // Хост сессии
	Date            string `json:"date"`              // Дата сессии в формате 2006-01-02
	TotalFees       int    `json:"total_fees"`        // Итоговая сумма, долларов
	GuestPassesUsed int    `json:"guest_passes_used"` // Использовано гостевых пропусков
}
