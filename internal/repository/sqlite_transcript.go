package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"healthassist/internal/db"
	"healthassist/internal/domain"
)

// SQLiteTranscriptRepo implements TranscriptRepo on a SQLite database.
type SQLiteTranscriptRepo struct {
	db db.DBTX
}

// NewSQLiteTranscriptRepo creates a new SQLiteTranscriptRepo.
func NewSQLiteTranscriptRepo(db db.DBTX) *SQLiteTranscriptRepo {
	return &SQLiteTranscriptRepo{db: db}
}

func (r *SQLiteTranscriptRepo) CreateSession(ctx context.Context, s *domain.ChatSession) error {
	query := `INSERT INTO chat_sessions (id, started_at) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.StartedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting chat session: %w", err)
	}
	return nil
}

func (r *SQLiteTranscriptRepo) EndSession(ctx context.Context, id string) error {
	query := `UPDATE chat_sessions SET ended_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("ending chat session: %w", err)
	}
	return nil
}

func (r *SQLiteTranscriptRepo) GetSession(ctx context.Context, id string) (*domain.ChatSession, error) {
	query := `SELECT id, started_at, ended_at FROM chat_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.ChatSession
	var startedAtStr string
	var endedAtStr sql.NullString
	if err := row.Scan(&s.ID, &startedAtStr, &endedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("chat session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning chat session: %w", err)
	}
	return r.populateSession(&s, startedAtStr, endedAtStr)
}

func (r *SQLiteTranscriptRepo) ListSessions(ctx context.Context, limit int) ([]*domain.ChatSession, error) {
	query := `SELECT id, started_at, ended_at FROM chat_sessions ORDER BY started_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing chat sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.ChatSession
	for rows.Next() {
		var s domain.ChatSession
		var startedAtStr string
		var endedAtStr sql.NullString
		if err := rows.Scan(&s.ID, &startedAtStr, &endedAtStr); err != nil {
			return nil, fmt.Errorf("scanning chat session row: %w", err)
		}
		session, err := r.populateSession(&s, startedAtStr, endedAtStr)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chat sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteTranscriptRepo) AppendMessage(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (id, session_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.SessionID, string(m.Role), m.Content, m.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

func (r *SQLiteTranscriptRepo) ListMessages(ctx context.Context, sessionID string) ([]*domain.Message, error) {
	query := `SELECT id, session_id, role, content, created_at
		FROM messages WHERE session_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		var m domain.Message
		var role, createdAtStr string
		if err := rows.Scan(&m.ID, &m.SessionID, &role, &m.Content, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning message row: %w", err)
		}
		m.Role = domain.MessageRole(role)
		m.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing message created_at: %w", err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return messages, nil
}

func (r *SQLiteTranscriptRepo) populateSession(s *domain.ChatSession, startedAtStr string, endedAtStr sql.NullString) (*domain.ChatSession, error) {
	var err error
	s.StartedAt, err = time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if endedAtStr.Valid {
		endedAt, err := time.Parse(time.RFC3339, endedAtStr.String)
		if err != nil {
			return nil, fmt.Errorf("parsing ended_at: %w", err)
		}
		s.EndedAt = &endedAt
	}
	return s, nil
}
