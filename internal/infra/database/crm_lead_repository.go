package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/xavierca1/ligue-gestao/internal/entity"
)

type CRMLeadRepository struct {
	DB *sql.DB
}

func NewCRMLeadRepository(db *sql.DB) *CRMLeadRepository {
	return &CRMLeadRepository{DB: db}
}

func (r *CRMLeadRepository) Create(ctx context.Context, lead *entity.CRMLead) error {
	data, err := json.Marshal(lead.Data)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO crm_leads (id, name, consultant_id, stage_id, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		nullString(lead.ConsultantID),
		lead.StageID,
		data,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	return err
}

// Delete é a compensação da saga de conversão. Remove antes os
// compromissos pendurados no lead.
func (r *CRMLeadRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM lead_tasks WHERE lead_id = $1`, id); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx, `DELETE FROM crm_leads WHERE id = $1`, id)
	return err
}

func (r *CRMLeadRepository) CreateTask(ctx context.Context, task *entity.LeadTask) error {
	query := `
		INSERT INTO lead_tasks (id, lead_id, user_id, manager_id, title, notes, modality,
		                        start_time, end_time, invite_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		task.ID,
		task.LeadID,
		nullString(task.UserID),
		nullString(task.ManagerID),
		task.Title,
		nullString(task.Notes),
		nullString(task.Modality),
		task.StartTime,
		task.EndTime,
		task.InviteStatus,
		task.CreatedAt,
	)
	return err
}
