package repositories

import (
	"context"
	"database/sql"
)

type SessionRepository struct {
	DB *sql.DB
}

// Exists reports whether a session row holds token for userID.
func (r SessionRepository) Exists(ctx context.Context, userID int64, token string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sessions WHERE user_id = ? AND token = ?`, userID, token).Scan(&n)
	if err != nil {
		return false, wrapErr(err, "session", userID)
	}
	return n > 0, nil
}
