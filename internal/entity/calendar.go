package entity

import (
	"context"
	"errors"
	"time"
)

var ErrTokensNotFound = errors.New("nenhum token de calendário para este usuário")

const ProviderGoogle = "google"

// CalendarToken guarda as credenciais OAuth do usuário para um provedor
// de agenda. Upsert no callback, access token renovado no fetch.
type CalendarToken struct {
	UserID       string    `json:"user_id"`
	Provider     string    `json:"provider"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	Expiry       time.Time `json:"expiry"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshMargin é a folga de segurança antes do vencimento do access
// token. Dentro dela o token é tratado como vencido.
const RefreshMargin = 60 * time.Second

func (t *CalendarToken) NeedsRefresh(now time.Time) bool {
	return now.Add(RefreshMargin).After(t.Expiry)
}

// CalendarEvent é o formato achatado devolvido ao front, independente
// do provedor.
type CalendarEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	AllDay      bool   `json:"all_day"`
}

type CalendarTokenRepositoryInterface interface {
	Upsert(ctx context.Context, token *CalendarToken) error
	FindByUser(ctx context.Context, userID, provider string) (*CalendarToken, error)
	UpdateAccessToken(ctx context.Context, userID, provider, accessToken string, expiry time.Time) error
}
