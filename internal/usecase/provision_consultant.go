package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/xavierca1/ligue-gestao/internal/entity"
	"github.com/xavierca1/ligue-gestao/internal/infra/integration/authgate"
	"github.com/xavierca1/ligue-gestao/internal/infra/queue"
)

type ProvisionConsultantInput struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	TempPassword string `json:"tempPassword"`
	Login        string `json:"login,omitempty"`
	Role         string `json:"role"`
}

type ProvisionConsultantOutput struct {
	AuthUserID string `json:"authUserId"`
	UserExists bool   `json:"userExists"`
	Message    string `json:"message"`
}

// ProvisionConsultantUseCase cria a conta do consultor na plataforma de
// auth — ou, se o email já tem conta, sobrescreve a senha e o papel.
type ProvisionConsultantUseCase struct {
	AuthGateway AuthAdminGateway
	Repo        ConsultantRepositoryInterface
	Queue       QueueProducerInterface
}

func NewProvisionConsultantUseCase(
	authGateway AuthAdminGateway,
	repo ConsultantRepositoryInterface,
	producer QueueProducerInterface,
) *ProvisionConsultantUseCase {
	return &ProvisionConsultantUseCase{
		AuthGateway: authGateway,
		Repo:        repo,
		Queue:       producer,
	}
}

func (uc *ProvisionConsultantUseCase) Execute(ctx context.Context, input ProvisionConsultantInput) (*ProvisionConsultantOutput, error) {
	if validationErrors := ValidateProvisionInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(validationErrors),
		}
	}

	metadata := map[string]any{
		"role":                  input.Role,
		"needs_password_change": true,
	}
	if input.Login != "" {
		metadata["login"] = input.Login
	}

	var authUserID string
	var userExists bool
	var message string

	// Lookup direto por email — a API admin indexa email, não precisa
	// listar tudo e varrer.
	user, err := uc.AuthGateway.FindUserByEmail(ctx, input.Email)
	switch {
	case err == nil:
		userExists = true
		authUserID = user.ID

		err = uc.AuthGateway.UpdateUser(ctx, user.ID, authgate.UpdateUserInput{
			Password: input.TempPassword,
			Metadata: metadata,
		})
		if err != nil {
			return nil, &DomainError{
				Code:    "AUTH_UPDATE_FAILED",
				Message: "falha ao atualizar a conta existente: " + err.Error(),
			}
		}
		message = "Usuário existente atualizado com senha temporária"

	case errors.Is(err, authgate.ErrUserNotFound):
		authUserID, err = uc.AuthGateway.CreateUser(ctx, authgate.CreateUserInput{
			Email:        input.Email,
			Password:     input.TempPassword,
			EmailConfirm: true,
			Metadata:     metadata,
		})
		if err != nil {
			return nil, &TechnicalError{
				Code:    "AUTH_CREATE_FAILED",
				Message: "falha ao criar a conta: " + err.Error(),
			}
		}
		message = "Novo usuário criado com senha temporária"

	default:
		return nil, &TechnicalError{
			Code:    "AUTH_LOOKUP_FAILED",
			Message: "falha ao consultar a plataforma de auth: " + err.Error(),
		}
	}

	firstName, lastName := entity.SplitName(input.Name)
	consultant := &entity.Consultant{
		ID:                  authUserID,
		Email:               input.Email,
		FirstName:           firstName,
		LastName:            lastName,
		Login:               input.Login,
		Role:                input.Role,
		NeedsPasswordChange: true,
	}
	if err := uc.Repo.Upsert(ctx, consultant); err != nil {
		return nil, &TechnicalError{
			Code:    "PROFILE_UPSERT_FAILED",
			Message: "conta criada, mas falhou ao gravar o profile: " + err.Error(),
		}
	}

	// Email com a senha temporária sai pela fila; falha aqui não derruba
	// o provisionamento.
	if uc.Queue != nil {
		payload := queue.CredentialsPayload{
			UserID:       authUserID,
			Email:        input.Email,
			Name:         input.Name,
			Login:        input.Login,
			TempPassword: input.TempPassword,
		}
		if err := uc.Queue.PublishCredentials(ctx, payload); err != nil {
			log.Printf("⚠️ Falha ao publicar credenciais na fila: %v", err)
		}
	}

	return &ProvisionConsultantOutput{
		AuthUserID: authUserID,
		UserExists: userExists,
		Message:    message,
	}, nil
}
