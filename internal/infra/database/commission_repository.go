package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-gestao/internal/entity"
)

type CommissionRepository struct {
	DB *sql.DB
}

func NewCommissionRepository(db *sql.DB) *CommissionRepository {
	return &CommissionRepository{DB: db}
}

func (r *CommissionRepository) ListByConsultant(ctx context.Context, consultantID string) ([]*entity.Commission, error) {
	query := `
		SELECT id, consultant_id, COALESCE(lead_id::text, ''), amount_cents, status, created_at
		FROM commissions
		WHERE consultant_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, consultantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var commissions []*entity.Commission
	for rows.Next() {
		var c entity.Commission
		if err := rows.Scan(&c.ID, &c.ConsultantID, &c.LeadID, &c.AmountCents, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		commissions = append(commissions, &c)
	}
	return commissions, rows.Err()
}
