package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/intervyou/intervyou/internal/models"
)

func (r *SQLiteRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if u == nil {
		return 0, fmt.Errorf("user is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO users (username, email, password_hash, created) VALUES (?, ?, ?, ?)`,
		u.Username, u.Email, u.PasswordHash, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, username, email, password_hash, created, last_login FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *SQLiteRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, username, email, password_hash, created, last_login FROM users WHERE username = ? OR email = ?`,
		identifier, identifier)
	return scanUser(row)
}

func (r *SQLiteRepo) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `UPDATE users SET last_login = ? WHERE id = ?`, now(), id)
	return err
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var lastLogin sql.NullInt64
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Created, &lastLogin); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if lastLogin.Valid {
		u.LastLogin = &lastLogin.Int64
	}

	return &u, nil
}
