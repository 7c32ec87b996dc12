package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/xavierca1/ligue-gestao/internal/entity"
)

type CalendarTokenRepository struct {
	DB *sql.DB
}

func NewCalendarTokenRepository(db *sql.DB) *CalendarTokenRepository {
	return &CalendarTokenRepository{DB: db}
}

// Upsert grava os tokens do callback. Refresh token novo só substitui o
// antigo quando o provedor mandou um (reautorização sem prompt não manda).
func (r *CalendarTokenRepository) Upsert(ctx context.Context, token *entity.CalendarToken) error {
	query := `
		INSERT INTO calendar_tokens (user_id, provider, access_token, refresh_token, expiry, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id, provider)
		DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = CASE WHEN EXCLUDED.refresh_token <> '' THEN EXCLUDED.refresh_token ELSE calendar_tokens.refresh_token END,
			expiry = EXCLUDED.expiry,
			updated_at = NOW()
	`

	_, err := r.DB.ExecContext(ctx, query,
		token.UserID,
		token.Provider,
		token.AccessToken,
		token.RefreshToken,
		token.Expiry,
	)
	return err
}

func (r *CalendarTokenRepository) FindByUser(ctx context.Context, userID, provider string) (*entity.CalendarToken, error) {
	query := `
		SELECT user_id, provider, access_token, refresh_token, expiry, updated_at
		FROM calendar_tokens
		WHERE user_id = $1 AND provider = $2
	`

	var t entity.CalendarToken
	err := r.DB.QueryRowContext(ctx, query, userID, provider).Scan(
		&t.UserID,
		&t.Provider,
		&t.AccessToken,
		&t.RefreshToken,
		&t.Expiry,
		&t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrTokensNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *CalendarTokenRepository) UpdateAccessToken(ctx context.Context, userID, provider, accessToken string, expiry time.Time) error {
	query := `
		UPDATE calendar_tokens
		SET access_token = $3, expiry = $4, updated_at = NOW()
		WHERE user_id = $1 AND provider = $2
	`

	result, err := r.DB.ExecContext(ctx, query, userID, provider, accessToken, expiry)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrTokensNotFound
	}
	return nil
}
