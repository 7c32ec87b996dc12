package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-gestao/internal/entity"
)

type ChecklistRepository struct {
	DB *sql.DB
}

func NewChecklistRepository(db *sql.DB) *ChecklistRepository {
	return &ChecklistRepository{DB: db}
}

func (r *ChecklistRepository) Create(ctx context.Context, item *entity.ChecklistItem) error {
	query := `
		INSERT INTO checklist_items (id, user_id, title, due_date, done, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		item.ID,
		item.UserID,
		item.Title,
		item.DueDate,
		item.Done,
		item.CreatedAt,
	)
	return err
}

func (r *ChecklistRepository) FindByID(ctx context.Context, id string) (*entity.ChecklistItem, error) {
	query := `
		SELECT id, user_id, title, to_char(due_date, 'YYYY-MM-DD'), done, completed_at, created_at
		FROM checklist_items
		WHERE id = $1
	`

	var item entity.ChecklistItem
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.UserID,
		&item.Title,
		&item.DueDate,
		&item.Done,
		&item.CompletedAt,
		&item.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrChecklistItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ChecklistRepository) SetDone(ctx context.Context, id string, done bool) (*entity.ChecklistItem, error) {
	query := `
		UPDATE checklist_items
		SET done = $2,
		    completed_at = CASE WHEN $2 THEN NOW() ELSE NULL END
		WHERE id = $1
		RETURNING id, user_id, title, to_char(due_date, 'YYYY-MM-DD'), done, completed_at, created_at
	`

	var item entity.ChecklistItem
	err := r.DB.QueryRowContext(ctx, query, id, done).Scan(
		&item.ID,
		&item.UserID,
		&item.Title,
		&item.DueDate,
		&item.Done,
		&item.CompletedAt,
		&item.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrChecklistItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
