package usecase

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/ligue-gestao/internal/entity"
)

type ConvertColdCallInput struct {
	ColdCallLeadID  string `json:"coldCallLeadId"`
	MeetingDate     string `json:"meetingDate,omitempty"` // YYYY-MM-DD
	MeetingTime     string `json:"meetingTime,omitempty"` // HH:MM
	MeetingModality string `json:"meetingModality,omitempty"`
	MeetingNotes    string `json:"meetingNotes,omitempty"`
}

type ConvertColdCallOutput struct {
	Message   string `json:"message"`
	CRMLeadID string `json:"crmLeadId"`
}

// MeetingDuration é a janela fixa do compromisso criado na conversão.
const MeetingDuration = time.Hour

// BRT: o front manda data/hora local sem offset, interpretado sempre
// como UTC-3.
var meetingZone = time.FixedZone("-03", -3*60*60)

// ConvertColdCallUseCase transforma uma ligação de prospecção em lead do
// CRM: resolve o funil ativo do dono configurado, escolhe a etapa,
// insere o lead e grava o vínculo de volta na ligação. Lead + vínculo
// rodam como saga: se o vínculo falhar, o lead recém-criado é removido
// em vez de ficar órfão.
type ConvertColdCallUseCase struct {
	ColdCalls       entity.ColdCallRepositoryInterface
	Pipelines       entity.PipelineRepositoryInterface
	Leads           entity.CRMLeadRepositoryInterface
	PipelineOwnerID string
}

func NewConvertColdCallUseCase(
	coldCalls entity.ColdCallRepositoryInterface,
	pipelines entity.PipelineRepositoryInterface,
	leads entity.CRMLeadRepositoryInterface,
	pipelineOwnerID string,
) *ConvertColdCallUseCase {
	return &ConvertColdCallUseCase{
		ColdCalls:       coldCalls,
		Pipelines:       pipelines,
		Leads:           leads,
		PipelineOwnerID: pipelineOwnerID,
	}
}

func (uc *ConvertColdCallUseCase) Execute(ctx context.Context, input ConvertColdCallInput) (*ConvertColdCallOutput, error) {
	if strings.TrimSpace(input.ColdCallLeadID) == "" {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "coldCallLeadId é obrigatório",
		}
	}

	coldCall, err := uc.ColdCalls.FindByID(ctx, input.ColdCallLeadID)
	if err != nil {
		if errors.Is(err, entity.ErrColdCallNotFound) {
			return nil, &DomainError{
				Code:    "COLD_CALL_NOT_FOUND",
				Message: entity.ErrColdCallNotFound.Error(),
				Status:  http.StatusNotFound,
			}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	// Guarda de idempotência: o vínculo é gravado uma vez e nunca
	// sobrescrito, então segunda conversão falha rápido.
	if coldCall.Converted() {
		return nil, &DomainError{
			Code:    "ALREADY_CONVERTED",
			Message: entity.ErrColdCallAlreadyConverted.Error(),
			Status:  http.StatusConflict,
		}
	}

	pipeline, err := uc.Pipelines.FindActiveByOwner(ctx, uc.PipelineOwnerID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "PIPELINE_NOT_FOUND",
			Message: "falha ao resolver o funil ativo: " + err.Error(),
		}
	}

	stages, err := uc.Pipelines.ListActiveStages(ctx, pipeline.ID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STAGE_LOOKUP_FAILED",
			Message: "falha ao listar etapas do funil: " + err.Error(),
		}
	}
	if len(stages) == 0 {
		return nil, &TechnicalError{
			Code:    "NO_ACTIVE_STAGE",
			Message: entity.ErrNoActiveStage.Error(),
		}
	}

	meetingRequested := input.MeetingDate != "" && input.MeetingTime != ""

	// A etapa de reunião só entra na disputa quando uma reunião foi
	// pedida; senão vale a primeira etapa ativa por ordem.
	var stage *entity.Stage
	if meetingRequested {
		if stage = entity.FindMeetingStage(stages); stage == nil {
			log.Printf("⚠️ Funil %s sem etapa de reunião, usando a primeira etapa ativa", pipeline.ID)
		}
	}
	if stage == nil {
		stage = stages[0]
	}

	data := map[string]string{}
	if coldCall.Phone != "" {
		data["phone"] = coldCall.Phone
	}
	if coldCall.Email != "" {
		data["email"] = coldCall.Email
	}
	if coldCall.Notes != "" {
		data["notes"] = coldCall.Notes
	}

	lead := entity.NewCRMLead(coldCall.Name, coldCall.ConsultantID, stage.ID, data)

	txn := NewTransaction()
	txn.AddOperation("create_crm_lead", func(ctx context.Context) error {
		return uc.Leads.Create(ctx, lead)
	})
	txn.AddCompensation("delete_crm_lead", func(ctx context.Context) error {
		return uc.Leads.Delete(ctx, lead.ID)
	})
	txn.AddOperation("link_cold_call", func(ctx context.Context) error {
		return uc.ColdCalls.LinkCRMLead(ctx, coldCall.ID, lead.ID)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "CONVERSION_FAILED",
			Message: "failed to persist lead and back-link: " + err.Error(),
		}
	}

	// Compromisso é best-effort: falha vira log, o lead já está criado e
	// vinculado.
	if meetingRequested {
		if err := uc.createMeetingTask(ctx, coldCall, lead, input); err != nil {
			log.Printf("⚠️ Lead %s criado, mas o compromisso falhou: %v", lead.ID, err)
		}
	}

	return &ConvertColdCallOutput{
		Message:   "Lead criado no CRM com sucesso",
		CRMLeadID: lead.ID,
	}, nil
}

func (uc *ConvertColdCallUseCase) createMeetingTask(ctx context.Context, coldCall *entity.ColdCallLead, lead *entity.CRMLead, input ConvertColdCallInput) error {
	start, end, err := MeetingWindow(input.MeetingDate, input.MeetingTime)
	if err != nil {
		return err
	}

	task := &entity.LeadTask{
		ID:           uuid.New().String(),
		LeadID:       lead.ID,
		UserID:       coldCall.ConsultantID,
		ManagerID:    uc.PipelineOwnerID,
		Title:        "Reunião com " + coldCall.Name,
		Notes:        input.MeetingNotes,
		Modality:     input.MeetingModality,
		StartTime:    start,
		EndTime:      end,
		InviteStatus: entity.InviteStatusPending,
		CreatedAt:    time.Now(),
	}

	return uc.Leads.CreateTask(ctx, task)
}

// MeetingWindow interpreta data/hora locais em UTC-3 e devolve a janela
// fixa de uma hora.
func MeetingWindow(date, hour string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hour, meetingZone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.Add(MeetingDuration), nil
}
