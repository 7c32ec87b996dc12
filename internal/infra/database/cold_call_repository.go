package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-gestao/internal/entity"
)

type ColdCallRepository struct {
	DB *sql.DB
}

func NewColdCallRepository(db *sql.DB) *ColdCallRepository {
	return &ColdCallRepository{DB: db}
}

func (r *ColdCallRepository) FindByID(ctx context.Context, id string) (*entity.ColdCallLead, error) {
	query := `
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(notes, ''),
		       COALESCE(consultant_id::text, ''), COALESCE(crm_lead_id::text, ''), created_at, updated_at
		FROM cold_call_leads
		WHERE id = $1
	`

	var c entity.ColdCallLead
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.Notes,
		&c.ConsultantID,
		&c.CRMLeadID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrColdCallNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// LinkCRMLead grava o vínculo uma única vez. O WHERE protege contra
// corrida: se outra conversão chegou antes, nenhuma linha é afetada.
func (r *ColdCallRepository) LinkCRMLead(ctx context.Context, coldCallID, crmLeadID string) error {
	query := `
		UPDATE cold_call_leads
		SET crm_lead_id = $2, updated_at = NOW()
		WHERE id = $1 AND crm_lead_id IS NULL
	`

	result, err := r.DB.ExecContext(ctx, query, coldCallID, crmLeadID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrColdCallAlreadyConverted
	}
	return nil
}
