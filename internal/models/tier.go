// Package models содержит доменные структуры биллинга клуба:
// тарифные уровни членства, участников сессий, записи журнала использования
// и результаты расчёта стоимости, а также вспомогательные типы для приёма
// данных из внешних источников (например, JSON-запросов).
package models

// UnlimitedSentinel — числовое значение, которым в таблице тарифов
// исторически обозначается "без ограничений". Нормализуется в явные
// булевы флаги на границе хранилища и дальше по коду не используется.
const UnlimitedSentinel = 999

// TierLimits описывает политику тарифного уровня членства:
// дневной лимит минут, месячный лимит гостевых пропусков и признаки
// безлимитного доступа. Поля Unlimited и UnlimitedPasses заполняются
// при чтении из хранилища и имеют приоритет над числовыми значениями.
type TierLimits struct {
	Name                  string `json:"name"`                    // Название тарифа
	DailyAllowanceMinutes int    `json:"daily_allowance_minutes"` // Дневной лимит минут
	GuestPassesPerMonth   int    `json:"guest_passes_per_month"`  // Гостевых пропусков в месяц
	HasGuestPassBenefit   bool   `json:"has_guest_pass_benefit"`  // Есть ли право на гостевые пропуска
	Unlimited             bool   `json:"unlimited"`               // Безлимитные минуты
	UnlimitedPasses       bool   `json:"unlimited_passes"`        // Безлимитные гостевые пропуска
}
