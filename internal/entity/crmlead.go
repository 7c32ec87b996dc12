package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CRMLead é o lead dentro do funil de vendas. Data carrega os campos
// livres vindos da ligação (telefone, email, observações).
type CRMLead struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	ConsultantID string            `json:"consultant_id,omitempty"`
	StageID      string            `json:"stage_id"`
	Data         map[string]string `json:"data,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func NewCRMLead(name, consultantID, stageID string, data map[string]string) *CRMLead {
	return &CRMLead{
		ID:           uuid.New().String(),
		Name:         name,
		ConsultantID: consultantID,
		StageID:      stageID,
		Data:         data,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusDeclined = "declined"
)

// LeadTask é o compromisso (reunião) vinculado a um lead. O convite do
// gestor nasce pendente.
type LeadTask struct {
	ID           string    `json:"id"`
	LeadID       string    `json:"lead_id"`
	UserID       string    `json:"user_id"`
	ManagerID    string    `json:"manager_id,omitempty"`
	Title        string    `json:"title"`
	Notes        string    `json:"notes,omitempty"`
	Modality     string    `json:"modality,omitempty"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	InviteStatus string    `json:"invite_status"`
	CreatedAt    time.Time `json:"created_at"`
}

type CRMLeadRepositoryInterface interface {
	Create(ctx context.Context, lead *CRMLead) error
	Delete(ctx context.Context, id string) error
	CreateTask(ctx context.Context, task *LeadTask) error
}
