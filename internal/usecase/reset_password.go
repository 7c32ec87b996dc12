package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/xavierca1/ligue-gestao/internal/infra/integration/authgate"
	"github.com/xavierca1/ligue-gestao/internal/infra/queue"
)

type ResetPasswordInput struct {
	UserID      string `json:"userId"`
	NewPassword string `json:"newPassword"`
}

type ResetPasswordOutput struct {
	Message     string `json:"message"`
	NewPassword string `json:"newPassword"`
}

// ResetConsultantPasswordUseCase troca a senha na plataforma de auth e
// marca o profile com needs_password_change. Não há rollback: se a
// segunda escrita falhar, a senha já foi trocada e o erro sobe cru.
type ResetConsultantPasswordUseCase struct {
	AuthGateway AuthAdminGateway
	Repo        ConsultantRepositoryInterface
	Queue       QueueProducerInterface
}

func NewResetConsultantPasswordUseCase(
	authGateway AuthAdminGateway,
	repo ConsultantRepositoryInterface,
	producer QueueProducerInterface,
) *ResetConsultantPasswordUseCase {
	return &ResetConsultantPasswordUseCase{
		AuthGateway: authGateway,
		Repo:        repo,
		Queue:       producer,
	}
}

func (uc *ResetConsultantPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) (*ResetPasswordOutput, error) {
	if strings.TrimSpace(input.UserID) == "" || strings.TrimSpace(input.NewPassword) == "" {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "userId e newPassword são obrigatórios",
		}
	}

	err := uc.AuthGateway.UpdateUser(ctx, input.UserID, authgate.UpdateUserInput{
		Password: input.NewPassword,
		Metadata: map[string]any{"needs_password_change": true},
	})
	if err != nil {
		return nil, &TechnicalError{
			Code:    "AUTH_UPDATE_FAILED",
			Message: "falha ao trocar a senha: " + err.Error(),
		}
	}

	if err := uc.Repo.SetNeedsPasswordChange(ctx, input.UserID, true); err != nil {
		return nil, &TechnicalError{
			Code:    "PROFILE_UPDATE_FAILED",
			Message: "senha trocada, mas falhou ao marcar o profile: " + err.Error(),
		}
	}

	if uc.Queue != nil {
		if consultant, err := uc.Repo.FindByID(ctx, input.UserID); err == nil {
			payload := queue.CredentialsPayload{
				UserID:       consultant.ID,
				Email:        consultant.Email,
				Name:         strings.TrimSpace(consultant.FirstName + " " + consultant.LastName),
				Login:        consultant.Login,
				TempPassword: input.NewPassword,
				Reset:        true,
			}
			if err := uc.Queue.PublishCredentials(ctx, payload); err != nil {
				log.Printf("⚠️ Falha ao publicar reset na fila: %v", err)
			}
		}
	}

	return &ResetPasswordOutput{
		Message:     "Senha temporária definida. O consultor deverá trocá-la no próximo login.",
		NewPassword: input.NewPassword,
	}, nil
}
