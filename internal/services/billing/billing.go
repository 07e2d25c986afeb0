// Package services содержит бизнес-логику расчёта стоимости сессий:
// распределение минут между участниками, переработку дневных лимитов,
// гостевые сборы и идемпотентную запись журнала использования.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clubhouse/club-billing/internal/billing"
	"github.com/clubhouse/club-billing/internal/events"
	"github.com/clubhouse/club-billing/internal/lib/month"
	"github.com/clubhouse/club-billing/internal/lib/sl"
	"github.com/clubhouse/club-billing/internal/metrics"
	"github.com/clubhouse/club-billing/internal/models"
)

// TierRepository определяет методы чтения тарифной политики.
type TierRepository interface {
	// GetTierLimits возвращает лимиты тарифа; (nil, nil) для неизвестного тарифа.
	GetTierLimits(ctx context.Context, tierName string) (*models.TierLimits, error)
	// GetMemberTier возвращает тариф члена клуба; ("", nil) для неизвестной почты.
	GetMemberTier(ctx context.Context, email string) (string, error)
}

// LedgerRepository определяет методы работы с журналом использования минут.
type LedgerRepository interface {
	// GetDailyUsage возвращает минуты члена клуба за дату, исключая сессию excludeSessionID при > 0.
	GetDailyUsage(ctx context.Context, email string, date time.Time, excludeSessionID int) (int, error)
	// ReplaceSessionEntries атомарно заменяет записи журнала сессии.
	ReplaceSessionEntries(ctx context.Context, sessionID int, date time.Time, entries []models.LedgerWrite) error
}

// GuestPassRepository определяет методы работы со счётчиками гостевых пропусков.
type GuestPassRepository interface {
	// GetGuestPassRecord возвращает счётчик пропусков члена клуба за месяц.
	GetGuestPassRecord(ctx context.Context, email, month string, passesTotal int) (*models.GuestPassRecord, error)
	// ConsumeGuestPass списывает один пропуск; false — пропуска нет.
	ConsumeGuestPass(ctx context.Context, email, month string, passesTotal int, unlimited bool) (bool, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// EventPublisher публикует события биллинга для подсистемы уведомлений.
type EventPublisher interface {
	PublishBilled(routingKey string, sessionID int, hostEmail string, date time.Time, res *models.SessionBillingResult)
}

// BillingService реализует оркестрацию расчёта стоимости сессии.
type BillingService struct {
	tiers  TierRepository
	ledger LedgerRepository
	passes GuestPassRepository
	cache  Cache
	events EventPublisher
	log    *slog.Logger
}

// NewBillingService создает новый экземпляр BillingService.
// events может быть nil, если публикация событий не нужна.
func NewBillingService(tiers TierRepository, ledger LedgerRepository, passes GuestPassRepository,
	cache Cache, events EventPublisher, log *slog.Logger) *BillingService {
	return &BillingService{
		tiers:  tiers,
		ledger: ledger,
		passes: passes,
		cache:  cache,
		events: events,
		log:    log,
	}
}

// CalculateFullSessionBilling выполняет предварительный расчёт стоимости
// сессии без записи в журнал и без списания пропусков. Используется
// экраном регистрации до подтверждения оплаты. excludeSessionID > 0
// исключает прежний вклад этой сессии из дневного использования.
func (s *BillingService) CalculateFullSessionBilling(ctx context.Context, date time.Time, durationMinutes int,
	participants []models.Participant, hostEmail string, excludeSessionID int) (*models.SessionBillingResult, error) {
	return s.compute(ctx, date, durationMinutes, participants, hostEmail, excludeSessionID, false, 0)
}

// CommitSessionBilling рассчитывает стоимость сессии, списывает гостевые
// пропуска и атомарно заменяет записи журнала использования этой сессии.
func (s *BillingService) CommitSessionBilling(ctx context.Context, sessionID int, date time.Time, durationMinutes int,
	participants []models.Participant, hostEmail string) (*models.SessionBillingResult, error) {
	result, err := s.compute(ctx, date, durationMinutes, participants, hostEmail, sessionID, true, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.ReplaceSessionEntries(ctx, sessionID, month.DayStart(date), ledgerWrites(result)); err != nil {
		return nil, err
	}
	s.log.Info("session billing committed",
		slog.Int("session_id", sessionID),
		slog.Int("total_fees", result.TotalFees))

	metrics.SessionsBilled.Inc()
	metrics.FeesCharged.WithLabelValues("overage").Add(float64(result.TotalOverageFees))
	metrics.FeesCharged.WithLabelValues("guest").Add(float64(result.TotalGuestFees))

	if s.events != nil {
		s.events.PublishBilled(events.RouteCommitted, sessionID, hostEmail, date, result)
	}
	return result, nil
}

// Reprice пересчитывает стоимость существующей сессии после изменения
// длительности или состава участников и заменяет её записи журнала.
// Минуты, записанные этой же сессией ранее, исключаются из дневного
// использования, поэтому повторный перерасчёт не накапливает итоги.
// Счётчики гостевых пропусков при перерасчёте не изменяются: пропуска
// списываются только при первичной фиксации.
func (s *BillingService) Reprice(ctx context.Context, session *models.Session) (*models.SessionBillingResult, error) {
	result, err := s.compute(ctx, session.Date, session.DurationMinutes, session.Participants,
		session.HostEmail, session.ID, false, session.ID)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.ReplaceSessionEntries(ctx, session.ID, month.DayStart(session.Date), ledgerWrites(result)); err != nil {
		return nil, err
	}
	s.log.Info("session fees recalculated",
		slog.Int("session_id", session.ID),
		slog.Int("total_fees", result.TotalFees))

	metrics.SessionsRecalculated.Inc()

	if s.events != nil {
		s.events.PublishBilled(events.RouteRecalculated, session.ID, session.HostEmail, session.Date, result)
	}
	return result, nil
}

// compute выполняет полный расчёт: распределяет минуты, тарифицирует
// переработку членов клуба и начисляет гостевые сборы. При consume
// пропуска списываются атомарно через хранилище, иначе решение
// принимается по текущему остатку без изменения счётчиков.
func (s *BillingService) compute(ctx context.Context, date time.Time, durationMinutes int,
	participants []models.Participant, hostEmail string, excludeSessionID int, consume bool, sessionID int) (*models.SessionBillingResult, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("session has no participants")
	}

	allocated := billing.AllocateMinutes(durationMinutes, len(participants))
	day := month.DayStart(date)

	result := &models.SessionBillingResult{
		ParticipantCount: len(participants),
		BillingBreakdown: make([]models.ParticipantBilling, 0, len(participants)),
	}

	hostLimits, _, err := s.resolveMemberLimits(ctx, hostEmail)
	if err != nil {
		return nil, err
	}

	var guestIdx []int
	for i, p := range participants {
		line := models.ParticipantBilling{
			DisplayName:      p.DisplayName,
			Email:            p.Email,
			GuestID:          p.GuestID,
			Type:             p.Type,
			MinutesAllocated: allocated[i],
		}

		if p.IsGuest() {
			// Минуты гостя показываются для аудита, но не тарифицируются.
			result.GuestCount++
			guestIdx = append(guestIdx, len(result.BillingBreakdown))
			result.BillingBreakdown = append(result.BillingBreakdown, line)
			continue
		}

		limits, unresolved, err := s.resolveMemberLimits(ctx, p.Email)
		if err != nil {
			return nil, err
		}

		used, err := s.ledger.GetDailyUsage(ctx, p.Email, day, excludeSessionID)
		if err != nil {
			return nil, err
		}

		overage := billing.Overage(limits, used, allocated[i])

		line.TierName = limits.Name
		line.TierUnresolved = unresolved
		line.DailyAllowance = limits.DailyAllowanceMinutes
		line.UnlimitedAllowance = limits.Unlimited
		line.UsedMinutesToday = used
		line.RemainingMinutesBefore = overage.RemainingBefore
		line.OverageMinutes = overage.OverageMinutes
		line.OverageFee = overage.OverageFee

		result.TotalOverageFees += overage.OverageFee
		result.BillingBreakdown = append(result.BillingBreakdown, line)
	}

	if len(guestIdx) > 0 {
		charges, err := s.chargeGuests(ctx, hostEmail, hostLimits, date, len(guestIdx), consume)
		if err != nil {
			return nil, err
		}
		for n, idx := range guestIdx {
			result.BillingBreakdown[idx].GuestPassUsed = charges[n].PassUsed
			result.BillingBreakdown[idx].GuestFee = charges[n].Fee
			result.TotalGuestFees += charges[n].Fee
			if charges[n].PassUsed {
				result.GuestPassesUsed++
			}
		}
	}

	result.TotalFees = result.TotalOverageFees + result.TotalGuestFees

	s.log.Info("session billing calculated",
		slog.Int("session_id", sessionID),
		slog.Int("participants", result.ParticipantCount),
		slog.Int("guests", result.GuestCount),
		slog.Int("total_fees", result.TotalFees))

	return result, nil
}

// chargeGuests начисляет сборы гостям. При consume каждый пропуск
// списывается атомарным декрементом; отказ декремента трактуется как
// "пропуска нет" и гость платит фиксированный сбор.
func (s *BillingService) chargeGuests(ctx context.Context, hostEmail string, hostLimits models.TierLimits,
	date time.Time, guestCount int, consume bool) ([]billing.GuestCharge, error) {
	monthKey := month.Key(date)

	if !consume {
		remaining := 0
		if hostLimits.HasGuestPassBenefit {
			record, err := s.passes.GetGuestPassRecord(ctx, hostEmail, monthKey, hostLimits.GuestPassesPerMonth)
			if err != nil {
				return nil, err
			}
			remaining = record.PassesTotal - record.PassesUsed
			if remaining < 0 {
				remaining = 0
			}
		}
		return billing.GuestCharges(hostLimits, remaining, guestCount), nil
	}

	charges := make([]billing.GuestCharge, guestCount)
	for i := range charges {
		if !hostLimits.HasGuestPassBenefit {
			charges[i] = billing.GuestCharge{Fee: billing.FlatGuestFee}
			continue
		}
		ok, err := s.passes.ConsumeGuestPass(ctx, hostEmail, monthKey, hostLimits.GuestPassesPerMonth, hostLimits.UnlimitedPasses)
		if err != nil {
			return nil, err
		}
		if ok {
			charges[i] = billing.GuestCharge{PassUsed: true}
			metrics.GuestPassesConsumed.Inc()
			continue
		}
		charges[i] = billing.GuestCharge{Fee: billing.FlatGuestFee}
	}
	return charges, nil
}

// resolveMemberLimits определяет тариф члена клуба по почте и возвращает
// его лимиты. Неизвестная почта или неизвестный тариф дают консервативный
// нулевой лимит (переработка тарифицируется с первой минуты) и признак
// unresolved для пометки строки расчёта.
func (s *BillingService) resolveMemberLimits(ctx context.Context, email string) (models.TierLimits, bool, error) {
	tierName, err := s.memberTier(ctx, email)
	if err != nil {
		return models.TierLimits{}, false, err
	}
	if tierName == "" {
		s.log.Warn("member tier not found, billing with zero allowance", slog.String("email", email))
		return models.TierLimits{}, true, nil
	}

	limits, err := s.tierLimits(ctx, tierName)
	if err != nil {
		return models.TierLimits{}, false, err
	}
	if limits == nil {
		s.log.Warn("tier limits not found, billing with zero allowance", slog.String("tier", tierName))
		return models.TierLimits{Name: tierName}, true, nil
	}
	return *limits, false, nil
}

// memberTier возвращает тариф члена клуба, используя кеш или хранилище.
func (s *BillingService) memberTier(ctx context.Context, email string) (string, error) {
	cacheKey := fmt.Sprintf("member:tier:%s", email)

	var tierName string
	found, err := s.cache.Get(cacheKey, &tierName)
	if err != nil {
		s.log.Warn("failed to read member tier from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return tierName, nil
	}

	tierName, err = s.tiers.GetMemberTier(ctx, email)
	if err != nil {
		return "", err
	}
	if tierName != "" {
		if err := s.cache.Set(cacheKey, tierName, time.Hour); err != nil {
			s.log.Warn("failed to cache member tier", slog.String("key", cacheKey), sl.Err(err))
		}
	}
	return tierName, nil
}

// tierLimits возвращает лимиты тарифа, используя кеш или хранилище.
func (s *BillingService) tierLimits(ctx context.Context, tierName string) (*models.TierLimits, error) {
	cacheKey := fmt.Sprintf("tier:%s", tierName)

	var cached models.TierLimits
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read tier limits from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	limits, err := s.tiers.GetTierLimits(ctx, tierName)
	if err != nil {
		return nil, err
	}
	if limits != nil {
		if err := s.cache.Set(cacheKey, limits, time.Hour); err != nil {
			s.log.Warn("failed to cache tier limits", slog.String("key", cacheKey), sl.Err(err))
		}
	}
	return limits, nil
}

// ledgerWrites собирает записи журнала по членам клуба из результата
// расчёта. Минуты одного и того же члена клуба в нескольких строках
// складываются: на пару (почта, сессия) приходится одна запись.
func ledgerWrites(result *models.SessionBillingResult) []models.LedgerWrite {
	byEmail := make(map[string]int)
	var order []string
	for _, line := range result.BillingBreakdown {
		if line.Type == models.ParticipantGuest || line.Email == "" {
			continue
		}
		if _, seen := byEmail[line.Email]; !seen {
			order = append(order, line.Email)
		}
		byEmail[line.Email] += line.MinutesAllocated
	}

	writes := make([]models.LedgerWrite, 0, len(order))
	for _, email := range order {
		writes = append(writes, models.LedgerWrite{Email: email, Minutes: byEmail[email]})
	}
	return writes
}
