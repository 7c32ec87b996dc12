package entity

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrPipelineNotFound = errors.New("nenhum funil ativo encontrado")
	ErrNoActiveStage    = errors.New("funil sem etapas ativas")
)

// Pipeline é o funil de vendas do CRM. Só existe um ativo por dono.
type Pipeline struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
	Active  bool   `json:"active"`
}

// Stage é uma etapa do funil, ordenada por OrderIndex.
type Stage struct {
	ID         string `json:"id"`
	PipelineID string `json:"pipeline_id"`
	Name       string `json:"name"`
	OrderIndex int    `json:"order_index"`
	Active     bool   `json:"active"`
}

// MeetingStageHint é o fragmento que identifica a etapa de reunião
// ("Reunião agendada", "1ª reunião", etc).
const MeetingStageHint = "reuni"

// FindMeetingStage devolve a primeira etapa cujo nome contém o fragmento
// de reunião, ou nil quando não existe.
func FindMeetingStage(stages []*Stage) *Stage {
	for _, s := range stages {
		if strings.Contains(strings.ToLower(s.Name), MeetingStageHint) {
			return s
		}
	}
	return nil
}

type PipelineRepositoryInterface interface {
	FindActiveByOwner(ctx context.Context, ownerID string) (*Pipeline, error)
	// ListActiveStages devolve as etapas ativas ordenadas por order_index.
	ListActiveStages(ctx context.Context, pipelineID string) ([]*Stage, error)
}
