package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrChecklistItemNotFound = errors.New("item do checklist não encontrado")

// ChecklistItem é uma tarefa do checklist diário de onboarding do
// consultor.
type ChecklistItem struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	DueDate     string     `json:"due_date"` // YYYY-MM-DD
	Done        bool       `json:"done"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewChecklistItem(userID, title, dueDate string) (*ChecklistItem, error) {
	if userID == "" {
		return nil, errors.New("user_id é obrigatório")
	}
	if title == "" {
		return nil, errors.New("title é obrigatório")
	}
	if _, err := time.Parse("2006-01-02", dueDate); err != nil {
		return nil, errors.New("due_date deve ser uma data válida (YYYY-MM-DD)")
	}

	return &ChecklistItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		DueDate:   dueDate,
		CreatedAt: time.Now(),
	}, nil
}

type ChecklistRepositoryInterface interface {
	Create(ctx context.Context, item *ChecklistItem) error
	FindByID(ctx context.Context, id string) (*ChecklistItem, error)
	SetDone(ctx context.Context, id string, done bool) (*ChecklistItem, error)
}
