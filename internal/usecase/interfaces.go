package usecase

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"github.com/xavierca1/ligue-gestao/internal/entity"
	"github.com/xavierca1/ligue-gestao/internal/infra/integration/authgate"
	"github.com/xavierca1/ligue-gestao/internal/infra/queue"
)

// AuthAdminGateway é o contrato com a API admin da plataforma de auth.
type AuthAdminGateway interface {
	// FindUserByEmail devolve authgate.ErrUserNotFound quando não existe.
	FindUserByEmail(ctx context.Context, email string) (*authgate.User, error)
	CreateUser(ctx context.Context, input authgate.CreateUserInput) (string, error)
	UpdateUser(ctx context.Context, id string, input authgate.UpdateUserInput) error
}

// CalendarGateway é o contrato com o provedor de agenda (Google).
type CalendarGateway interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	ListEvents(ctx context.Context, accessToken string, start, end time.Time) ([]entity.CalendarEvent, error)
}

type ConsultantRepositoryInterface interface {
	Upsert(ctx context.Context, c *entity.Consultant) error
	SetNeedsPasswordChange(ctx context.Context, id string, value bool) error
	FindByID(ctx context.Context, id string) (*entity.Consultant, error)
}

type QueueProducerInterface interface {
	PublishCredentials(ctx context.Context, payload queue.CredentialsPayload) error
}
