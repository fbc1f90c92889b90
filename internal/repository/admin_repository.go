package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Admin mirrors the 'admin' table.  Rows are written only by the addadmin
// utility; the server reads them solely in bearer auth mode.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
}

type AdminRepo struct{ db *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{db: db} }

// Create inserts an admin and returns ErrUsernameExists when the username
// is already taken.
func (r *AdminRepo) Create(ctx context.Context, username, passwordHash, email string) error {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM admin WHERE username = ?`, username).Scan(&id)
	if err == nil {
		return ErrUsernameExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO admin (username, password_hash, email) VALUES (?, ?, ?)`,
		username, passwordHash, email)
	return err
}

// GetByUsername fetches an admin by username.  Returns sql.ErrNoRows when
// absent; callers treat that as invalid credentials.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (Admin, error) {
	var a Admin
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, email FROM admin WHERE username = ?`, username).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Email)
	return a, err
}
