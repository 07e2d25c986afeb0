package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clubhouse/club-billing/internal/models"
)

// GetSession возвращает сессию с участниками в порядке их добавления.
// Отсутствующая сессия — ErrSessionNotFound.
func (s *Storage) GetSession(ctx context.Context, sessionID int) (*models.Session, error) {
	const op = "storage.GetSession"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, session_date, duration_minutes, host_email
			  FROM sessions WHERE id = $1`
	var session models.Session
	err := s.DB.QueryRowContext(ctx, query, sessionID).Scan(
		&session.ID, &session.Date, &session.DurationMinutes, &session.HostEmail)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	participantsQuery := `SELECT participant_type, COALESCE(email, ''), COALESCE(guest_id, ''), display_name
			  FROM session_participants
			  WHERE session_id = $1
			  ORDER BY position`
	rows, err := s.DB.QueryContext(ctx, participantsQuery, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.Type, &p.Email, &p.GuestID, &p.DisplayName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		session.Participants = append(session.Participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &session, nil
}
