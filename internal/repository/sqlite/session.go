package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/intervyou/intervyou/internal/models"
)

const sessionColumns = `id, user_id, type, level, role, duration, score, feedback, strengths, improvements, created`

func (r *SQLiteRepo) CreateSession(ctx context.Context, s *models.InterviewSession) (string, error) {
	if s == nil {
		return "", fmt.Errorf("session is nil")
	}

	id := s.ID
	if id == "" {
		id = uuid.NewString()
	}

	feedback, err := json.Marshal(emptyIfNilFeedback(s.Feedback))
	if err != nil {
		return "", fmt.Errorf("marshal feedback: %w", err)
	}
	strengths, err := json.Marshal(emptyIfNil(s.Strengths))
	if err != nil {
		return "", fmt.Errorf("marshal strengths: %w", err)
	}
	improvements, err := json.Marshal(emptyIfNil(s.Improvements))
	if err != nil {
		return "", fmt.Errorf("marshal improvements: %w", err)
	}

	created := s.Created
	if created == 0 {
		created = now()
	}

	_, err = r.conn.Exec(ctx, `INSERT INTO interview_sessions (`+sessionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, s.UserID, s.Type, s.Level, s.Role, s.Duration, s.Score, string(feedback), string(strengths), string(improvements), created)
	if err != nil {
		return "", err
	}

	s.ID = id
	s.Created = created
	return id, nil
}

func (r *SQLiteRepo) ListByUser(ctx context.Context, userID int64) ([]models.InterviewSession, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+sessionColumns+` FROM interview_sessions WHERE user_id = ? ORDER BY created DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSessions(rows)
}

func (r *SQLiteRepo) ListPageByUser(ctx context.Context, userID int64, limit, offset int) ([]models.InterviewSession, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT `+sessionColumns+` FROM interview_sessions WHERE user_id = ? ORDER BY created DESC LIMIT ? OFFSET ?`,
		userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSessions(rows)
}

func (r *SQLiteRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM interview_sessions WHERE user_id = ?`, userID)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}

func (r *SQLiteRepo) GetSessionByID(ctx context.Context, userID int64, id string) (*models.InterviewSession, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+sessionColumns+` FROM interview_sessions WHERE id = ? AND user_id = ?`, id, userID)

	s, err := scanSession(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return s, nil
}

func (r *SQLiteRepo) DeleteSessionByID(ctx context.Context, userID int64, id string) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM interview_sessions WHERE id = ? AND user_id = ?`, id, userID)
	return err
}

func collectSessions(rows *sql.Rows) ([]models.InterviewSession, error) {
	var out []models.InterviewSession
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}

		out = append(out, *s)
	}

	return out, rows.Err()
}

func scanSession(scan func(dest ...any) error) (*models.InterviewSession, error) {
	var s models.InterviewSession
	var feedback, strengths, improvements string
	if err := scan(&s.ID, &s.UserID, &s.Type, &s.Level, &s.Role, &s.Duration, &s.Score, &feedback, &strengths, &improvements, &s.Created); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(feedback), &s.Feedback); err != nil {
		return nil, fmt.Errorf("unmarshal feedback for session %s: %w", s.ID, err)
	}
	if err := json.Unmarshal([]byte(strengths), &s.Strengths); err != nil {
		return nil, fmt.Errorf("unmarshal strengths for session %s: %w", s.ID, err)
	}
	if err := json.Unmarshal([]byte(improvements), &s.Improvements); err != nil {
		return nil, fmt.Errorf("unmarshal improvements for session %s: %w", s.ID, err)
	}

	return &s, nil
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

func emptyIfNilFeedback(fs []models.FeedbackItem) []models.FeedbackItem {
	if fs == nil {
		return []models.FeedbackItem{}
	}
	return fs
}
