package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/ligue-gestao/internal/entity"
	"github.com/xavierca1/ligue-gestao/internal/infra/http/middleware"
)

// CalendarUseCase cobre os dois fluxos da agenda: autorização (start +
// callback) e listagem de eventos com renovação de token.
type CalendarUseCase struct {
	Gateway CalendarGateway
	Tokens  entity.CalendarTokenRepositoryInterface
}

func NewCalendarUseCase(gateway CalendarGateway, tokens entity.CalendarTokenRepositoryInterface) *CalendarUseCase {
	return &CalendarUseCase{
		Gateway: gateway,
		Tokens:  tokens,
	}
}

// StartAuth devolve a URL de autorização do provedor com o id interno
// do usuário embutido no state.
func (uc *CalendarUseCase) StartAuth(userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "user_id é obrigatório",
		}
	}
	return uc.Gateway.AuthURL(userID), nil
}

// CompleteAuth troca o code por tokens e grava (upsert) na conta do
// usuário que veio no state.
func (uc *CalendarUseCase) CompleteAuth(ctx context.Context, code, state string) error {
	if strings.TrimSpace(code) == "" || strings.TrimSpace(state) == "" {
		return &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "code e state são obrigatórios",
		}
	}

	token, err := uc.Gateway.Exchange(ctx, code)
	if err != nil {
		return &TechnicalError{
			Code:    "TOKEN_EXCHANGE_FAILED",
			Message: err.Error(),
		}
	}

	record := &entity.CalendarToken{
		UserID:       state,
		Provider:     entity.ProviderGoogle,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
	if err := uc.Tokens.Upsert(ctx, record); err != nil {
		return &TechnicalError{
			Code:    "TOKEN_PERSIST_FAILED",
			Message: err.Error(),
		}
	}

	return nil
}

// ListEvents busca os eventos do usuário no intervalo [startDate,
// endDate]. Token a menos de 60s do vencimento é renovado, e a nova
// expiração é persistida ANTES da chamada de eventos.
func (uc *CalendarUseCase) ListEvents(ctx context.Context, userID, startDate, endDate string) ([]entity.CalendarEvent, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "user_id é obrigatório",
		}
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "start_date deve ser uma data válida (YYYY-MM-DD)",
		}
	}
	endDay, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "end_date deve ser uma data válida (YYYY-MM-DD)",
		}
	}
	end := endDay.AddDate(0, 0, 1) // intervalo inclui o último dia

	token, err := uc.Tokens.FindByUser(ctx, userID, entity.ProviderGoogle)
	if err != nil {
		if errors.Is(err, entity.ErrTokensNotFound) {
			return nil, &DomainError{
				Code:    "TOKENS_NOT_FOUND",
				Message: entity.ErrTokensNotFound.Error(),
				Status:  http.StatusNotFound,
			}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	if token.NeedsRefresh(time.Now()) {
		if token.RefreshToken == "" {
			return nil, &DomainError{
				Code:    "TOKEN_EXPIRED",
				Message: "access token vencido e sem refresh token; reautorize a agenda",
				Status:  http.StatusUnauthorized,
			}
		}

		fresh, err := uc.Gateway.Refresh(ctx, token.RefreshToken)
		if err != nil {
			return nil, &TechnicalError{
				Code:    "TOKEN_REFRESH_FAILED",
				Message: err.Error(),
			}
		}

		middleware.RecordCalendarRefresh()

		if err := uc.Tokens.UpdateAccessToken(ctx, userID, entity.ProviderGoogle, fresh.AccessToken, fresh.Expiry); err != nil {
			return nil, &TechnicalError{
				Code:    "TOKEN_PERSIST_FAILED",
				Message: err.Error(),
			}
		}
		token.AccessToken = fresh.AccessToken
	}

	events, err := uc.Gateway.ListEvents(ctx, token.AccessToken, start, end)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "EVENTS_FETCH_FAILED",
			Message: err.Error(),
		}
	}

	return events, nil
}
