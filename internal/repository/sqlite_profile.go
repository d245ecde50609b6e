package repository

import (
	"context"
	"database/sql"
	"fmt"

	"healthassist/internal/db"
	"healthassist/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo on a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(db db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: db}
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, sessionID string, p *domain.UserProfile) error {
	query := `INSERT INTO profiles (session_id, name, age, gender, medical_history, medications, allergies)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			gender = excluded.gender,
			medical_history = excluded.medical_history,
			medications = excluded.medications,
			allergies = excluded.allergies`
	_, err := r.db.ExecContext(ctx, query,
		sessionID, p.Name, p.Age, p.Gender, p.MedicalHistory, p.CurrentMedications, p.Allergies)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, sessionID string) (*domain.UserProfile, error) {
	query := `SELECT name, age, gender, medical_history, medications, allergies
		FROM profiles WHERE session_id = ?`
	row := r.db.QueryRowContext(ctx, query, sessionID)

	var p domain.UserProfile
	err := row.Scan(&p.Name, &p.Age, &p.Gender, &p.MedicalHistory, &p.CurrentMedications, &p.Allergies)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	return &p, nil
}
