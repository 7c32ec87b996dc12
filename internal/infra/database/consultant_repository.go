package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-gestao/internal/entity"
)

type ConsultantRepository struct {
	DB *sql.DB
}

func NewConsultantRepository(db *sql.DB) *ConsultantRepository {
	return &ConsultantRepository{DB: db}
}

func (r *ConsultantRepository) Upsert(ctx context.Context, c *entity.Consultant) error {
	query := `
		INSERT INTO profiles (id, email, first_name, last_name, login, role, needs_password_change, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id)
		DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			login = COALESCE(EXCLUDED.login, profiles.login),
			role = EXCLUDED.role,
			needs_password_change = EXCLUDED.needs_password_change,
			updated_at = NOW()
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.Email,
		c.FirstName,
		c.LastName,
		nullString(c.Login),
		c.Role,
		c.NeedsPasswordChange,
	)
	return err
}

func (r *ConsultantRepository) SetNeedsPasswordChange(ctx context.Context, id string, value bool) error {
	query := `UPDATE profiles SET needs_password_change = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, id, value)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrConsultantNotFound
	}
	return nil
}

func (r *ConsultantRepository) FindByID(ctx context.Context, id string) (*entity.Consultant, error) {
	query := `
		SELECT id, email, first_name, last_name, COALESCE(login, ''), role, needs_password_change, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var c entity.Consultant
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Email,
		&c.FirstName,
		&c.LastName,
		&c.Login,
		&c.Role,
		&c.NeedsPasswordChange,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrConsultantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
