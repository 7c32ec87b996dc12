package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-gestao/internal/entity"
)

type PipelineRepository struct {
	DB *sql.DB
}

func NewPipelineRepository(db *sql.DB) *PipelineRepository {
	return &PipelineRepository{DB: db}
}

func (r *PipelineRepository) FindActiveByOwner(ctx context.Context, ownerID string) (*entity.Pipeline, error) {
	query := `
		SELECT id, name, owner_id, active
		FROM pipelines
		WHERE owner_id = $1 AND active = TRUE
		LIMIT 1
	`

	var p entity.Pipeline
	err := r.DB.QueryRowContext(ctx, query, ownerID).Scan(&p.ID, &p.Name, &p.OwnerID, &p.Active)
	if err == sql.ErrNoRows {
		return nil, entity.ErrPipelineNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PipelineRepository) ListActiveStages(ctx context.Context, pipelineID string) ([]*entity.Stage, error) {
	query := `
		SELECT id, pipeline_id, name, order_index, active
		FROM pipeline_stages
		WHERE pipeline_id = $1 AND active = TRUE
		ORDER BY order_index
	`

	rows, err := r.DB.QueryContext(ctx, query, pipelineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stages []*entity.Stage
	for rows.Next() {
		var s entity.Stage
		if err := rows.Scan(&s.ID, &s.PipelineID, &s.Name, &s.OrderIndex, &s.Active); err != nil {
			return nil, err
		}
		stages = append(stages, &s)
	}
	return stages, rows.Err()
}
