package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhouse/club-billing/internal/models"
)

func TestGetTierLimits(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateTier(t, "core", 60, 0, false, false)
	factory.CreateTier(t, "premium", 90, 8, true, false)
	factory.CreateTier(t, "executive", 999, 999, true, true)

	ctx := context.Background()

	t.Run("обычный тариф", func(t *testing.T) {
		limits, err := storage.GetTierLimits(ctx, "core")
		require.NoError(t, err)
		require.NotNil(t, limits)
		assert.Equal(t, 60, limits.DailyAllowanceMinutes)
		assert.False(t, limits.Unlimited)
		assert.False(t, limits.HasGuestPassBenefit)
	})

	t.Run("сентинель нормализуется в явные флаги", func(t *testing.T) {
		limits, err := storage.GetTierLimits(ctx, "executive")
		require.NoError(t, err)
		require.NotNil(t, limits)
		assert.True(t, limits.Unlimited)
		assert.True(t, limits.UnlimitedPasses)
	})

	t.Run("неизвестный тариф не является ошибкой", func(t *testing.T) {
		limits, err := storage.GetTierLimits(ctx, "platinum")
		require.NoError(t, err)
		assert.Nil(t, limits)
	})
}

func TestGetMemberTier(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateTier(t, "core", 60, 0, false, false)
	factory.CreateMember(t, "core@club.test", "Core Member", "core")

	ctx := context.Background()

	t.Run("известный член клуба", func(t *testing.T) {
		tier, err := storage.GetMemberTier(ctx, "core@club.test")
		require.NoError(t, err)
		assert.Equal(t, "core", tier)
	})

	t.Run("неизвестная почта не является ошибкой", func(t *testing.T) {
		tier, err := storage.GetMemberTier(ctx, "stranger@club.test")
		require.NoError(t, err)
		assert.Equal(t, "", tier)
	})
}

func TestGetSession(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	sessionID := factory.CreateSession(t, date, 90, "host@club.test")
	factory.AddParticipant(t, sessionID, 1, "owner", "host@club.test", "", "Host")
	factory.AddParticipant(t, sessionID, 2, "guest", "", "guest-1", "Guest One")
	factory.AddParticipant(t, sessionID, 3, "member", "friend@club.test", "", "Friend")

	ctx := context.Background()

	t.Run("сессия с участниками в порядке добавления", func(t *testing.T) {
		session, err := storage.GetSession(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 90, session.DurationMinutes)
		assert.Equal(t, "host@club.test", session.HostEmail)
		require.Len(t, session.Participants, 3)
		assert.Equal(t, models.ParticipantOwner, session.Participants[0].Type)
		assert.Equal(t, "guest-1", session.Participants[1].GuestID)
		assert.Equal(t, "friend@club.test", session.Participants[2].Email)
	})

	t.Run("несуществующая сессия", func(t *testing.T) {
		_, err := storage.GetSession(ctx, 99999)
		require.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestGetDailyUsage(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	factory.CreateLedgerEntry(t, "core@club.test", date, 10, 30)
	factory.CreateLedgerEntry(t, "core@club.test", date, 11, 45)
	factory.CreateLedgerEntry(t, "core@club.test", date.AddDate(0, 0, 1), 12, 60)

	ctx := context.Background()

	t.Run("сумма минут за день", func(t *testing.T) {
		minutes, err := storage.GetDailyUsage(ctx, "core@club.test", date, 0)
		require.NoError(t, err)
		assert.Equal(t, 75, minutes)
	})

	t.Run("исключение собственной сессии при перерасчёте", func(t *testing.T) {
		minutes, err := storage.GetDailyUsage(ctx, "core@club.test", date, 11)
		require.NoError(t, err)
		assert.Equal(t, 30, minutes)
	})

	t.Run("нет записей за день", func(t *testing.T) {
		minutes, err := storage.GetDailyUsage(ctx, "empty@club.test", date, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, minutes)
	})
}

func TestReplaceSessionEntries(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	verify := NewTestVerification(storage)
	ctx := context.Background()
	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	entries := []models.LedgerWrite{
		{Email: "host@club.test", Minutes: 45},
		{Email: "friend@club.test", Minutes: 45},
	}

	t.Run("повторная запись тех же данных не меняет итог", func(t *testing.T) {
		require.NoError(t, storage.ReplaceSessionEntries(ctx, 20, date, entries))
		require.NoError(t, storage.ReplaceSessionEntries(ctx, 20, date, entries))

		verify.VerifyLedgerEntryCount(t, 20, 2)
		verify.VerifyLedgerMinutes(t, "host@club.test", 20, 45)
		verify.VerifyLedgerMinutes(t, "friend@club.test", 20, 45)
	})

	t.Run("перерасчёт заменяет прежние записи", func(t *testing.T) {
		updated := []models.LedgerWrite{
			{Email: "host@club.test", Minutes: 60},
		}
		require.NoError(t, storage.ReplaceSessionEntries(ctx, 20, date, updated))

		verify.VerifyLedgerEntryCount(t, 20, 1)
		verify.VerifyLedgerMinutes(t, "host@club.test", 20, 60)
	})

	t.Run("пустой список очищает записи сессии", func(t *testing.T) {
		require.NoError(t, storage.ReplaceSessionEntries(ctx, 20, date, nil))
		verify.VerifyLedgerEntryCount(t, 20, 0)
	})
}

func TestConsumeGuestPass(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	verify := NewTestVerification(storage)
	ctx := context.Background()

	t.Run("списание до исчерпания лимита", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			ok, err := storage.ConsumeGuestPass(ctx, "premium@club.test", "2025-06", 2, false)
			require.NoError(t, err)
			assert.True(t, ok)
		}

		ok, err := storage.ConsumeGuestPass(ctx, "premium@club.test", "2025-06", 2, false)
		require.NoError(t, err)
		assert.False(t, ok, "third pass should be refused with total of 2")

		verify.VerifyGuestPassesUsed(t, "premium@club.test", "2025-06", 2)
	})

	t.Run("безлимитные пропуска списываются всегда", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			ok, err := storage.ConsumeGuestPass(ctx, "executive@club.test", "2025-06", 999, true)
			require.NoError(t, err)
			assert.True(t, ok)
		}
		verify.VerifyGuestPassesUsed(t, "executive@club.test", "2025-06", 5)
	})

	t.Run("новый месяц начинается с нуля", func(t *testing.T) {
		ok, err := storage.ConsumeGuestPass(ctx, "premium@club.test", "2025-07", 2, false)
		require.NoError(t, err)
		assert.True(t, ok)
		verify.VerifyGuestPassesUsed(t, "premium@club.test", "2025-07", 1)
	})
}

func TestGetGuestPassRecord(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateGuestPassRecord(t, "premium@club.test", "2025-06", 3, 8)

	ctx := context.Background()

	t.Run("существующий счётчик", func(t *testing.T) {
		record, err := storage.GetGuestPassRecord(ctx, "premium@club.test", "2025-06", 8)
		require.NoError(t, err)
		assert.Equal(t, 3, record.PassesUsed)
		assert.Equal(t, 8, record.PassesTotal)
	})

	t.Run("отсутствующий счётчик возвращается нулевым без создания строки", func(t *testing.T) {
		record, err := storage.GetGuestPassRecord(ctx, "premium@club.test", "2025-08", 8)
		require.NoError(t, err)
		assert.Equal(t, 0, record.PassesUsed)
		assert.Equal(t, 8, record.PassesTotal)

		var count int
		err = storage.DB.QueryRow(
			"SELECT COUNT(*) FROM guest_passes WHERE member_email = $1 AND month = $2",
			"premium@club.test", "2025-08").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
