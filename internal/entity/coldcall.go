package entity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrColdCallNotFound         = errors.New("ligação não encontrada")
	ErrColdCallAlreadyConverted = errors.New("ligação já convertida em lead do CRM")
)

// ColdCallLead é o registro bruto de prospecção telefônica. Ele é criado
// pelo front e só é alterado aqui uma vez, para receber o vínculo com o
// lead do CRM (crm_lead_id é gravado uma única vez, nunca sobrescrito).
type ColdCallLead struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	ConsultantID string    `json:"consultant_id,omitempty"`
	CRMLeadID    string    `json:"crm_lead_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *ColdCallLead) Converted() bool {
	return c.CRMLeadID != ""
}

type ColdCallRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*ColdCallLead, error)
	LinkCRMLead(ctx context.Context, coldCallID, crmLeadID string) error
}
