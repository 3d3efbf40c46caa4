package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/ports"
)

// RevocationRepository keeps one row per user holding the latest
// revocation watermark. Tokens issued before the watermark are dead; the
// row itself becomes garbage once expires_at passes, since every token it
// could cover has expired on its own by then.
type RevocationRepository struct {
	db *sql.DB
}

func NewRevocationRepository(db *sql.DB) ports.RevocationRepository {
	return &RevocationRepository{db: db}
}

func (r *RevocationRepository) Revoke(ctx context.Context, userID uuid.UUID, before, expiresAt time.Time) error {
	query := `
		INSERT INTO token_revocations (user_id, revoked_before, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET revoked_before = greatest(token_revocations.revoked_before, excluded.revoked_before),
		    expires_at = greatest(token_revocations.expires_at, excluded.expires_at)
	`
	_, err := r.db.ExecContext(ctx, query, userID, before, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to record revocation: %w", err)
	}
	return nil
}

func (r *RevocationRepository) IsRevoked(ctx context.Context, userID uuid.UUID, issuedAt time.Time) (bool, error) {
	query := `
		SELECT count(*) FROM token_revocations
		WHERE user_id = $1 AND revoked_before > $2
	`
	var n int
	if err := r.db.QueryRowContext(ctx, query, userID, issuedAt).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to query revocation: %w", err)
	}
	return n > 0, nil
}

func (r *RevocationRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM token_revocations WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge revocations: %w", err)
	}
	return res.RowsAffected()
}
