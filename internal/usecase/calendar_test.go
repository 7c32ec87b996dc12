package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"

	"github.com/xavierca1/ligue-gestao/internal/entity"
)

// MockCalendarGateway
type MockCalendarGateway struct {
	mock.Mock
}

func (m *MockCalendarGateway) AuthURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockCalendarGateway) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockCalendarGateway) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockCalendarGateway) ListEvents(ctx context.Context, accessToken string, start, end time.Time) ([]entity.CalendarEvent, error) {
	args := m.Called(ctx, accessToken, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CalendarEvent), args.Error(1)
}

// MockTokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Upsert(ctx context.Context, token *entity.CalendarToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) FindByUser(ctx context.Context, userID, provider string) (*entity.CalendarToken, error) {
	args := m.Called(ctx, userID, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CalendarToken), args.Error(1)
}

func (m *MockTokenRepository) UpdateAccessToken(ctx context.Context, userID, provider, accessToken string, expiry time.Time) error {
	args := m.Called(ctx, userID, provider, accessToken, expiry)
	return args.Error(0)
}

// ============ TESTES ============

// TestListEventsRefreshesExpiringToken - token a menos de 60s do fim:
// exatamente um refresh, nova expiração persistida, fetch com o token novo
func TestListEventsRefreshesExpiringToken(t *testing.T) {
	ctx := context.Background()

	mockGateway := new(MockCalendarGateway)
	mockTokens := new(MockTokenRepository)

	stored := &entity.CalendarToken{
		UserID:       "user-1",
		Provider:     entity.ProviderGoogle,
		AccessToken:  "velho",
		RefreshToken: "refresh-abc",
		Expiry:       time.Now().Add(30 * time.Second),
	}
	fresh := &oauth2.Token{AccessToken: "novo", Expiry: time.Now().Add(time.Hour)}

	mockTokens.On("FindByUser", ctx, "user-1", entity.ProviderGoogle).Return(stored, nil)
	mockGateway.On("Refresh", ctx, "refresh-abc").Return(fresh, nil)
	mockTokens.On("UpdateAccessToken", ctx, "user-1", entity.ProviderGoogle, "novo", fresh.Expiry).Return(nil)
	mockGateway.On("ListEvents", ctx, "novo", mock.Anything, mock.Anything).
		Return([]entity.CalendarEvent{{ID: "ev-1", Title: "Reunião"}}, nil)

	uc := NewCalendarUseCase(mockGateway, mockTokens)
	events, err := uc.ListEvents(ctx, "user-1", "2026-02-01", "2026-02-07")

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	mockGateway.AssertNumberOfCalls(t, "Refresh", 1)
	mockTokens.AssertCalled(t, "UpdateAccessToken", ctx, "user-1", entity.ProviderGoogle, "novo", fresh.Expiry)
}

// TestListEventsSkipsRefreshWhenValid - token com folga: nenhum refresh
func TestListEventsSkipsRefreshWhenValid(t *testing.T) {
	ctx := context.Background()

	mockGateway := new(MockCalendarGateway)
	mockTokens := new(MockTokenRepository)

	stored := &entity.CalendarToken{
		UserID:       "user-1",
		Provider:     entity.ProviderGoogle,
		AccessToken:  "valido",
		RefreshToken: "refresh-abc",
		Expiry:       time.Now().Add(10 * time.Minute),
	}

	mockTokens.On("FindByUser", ctx, "user-1", entity.ProviderGoogle).Return(stored, nil)
	mockGateway.On("ListEvents", ctx, "valido", mock.Anything, mock.Anything).
		Return([]entity.CalendarEvent{}, nil)

	uc := NewCalendarUseCase(mockGateway, mockTokens)
	_, err := uc.ListEvents(ctx, "user-1", "2026-02-01", "2026-02-07")

	assert.NoError(t, err)
	mockGateway.AssertNotCalled(t, "Refresh")
	mockTokens.AssertNotCalled(t, "UpdateAccessToken")
}

// TestListEventsWithoutTokens - sem tokens gravados: 404
func TestListEventsWithoutTokens(t *testing.T) {
	ctx := context.Background()

	mockGateway := new(MockCalendarGateway)
	mockTokens := new(MockTokenRepository)

	mockTokens.On("FindByUser", ctx, "user-1", entity.ProviderGoogle).Return(nil, entity.ErrTokensNotFound)

	uc := NewCalendarUseCase(mockGateway, mockTokens)
	_, err := uc.ListEvents(ctx, "user-1", "2026-02-01", "2026-02-07")

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 404, domainErr.StatusCode())
}

// TestCompleteAuthPersistsTokens - callback grava os tokens na conta do
// state
func TestCompleteAuthPersistsTokens(t *testing.T) {
	ctx := context.Background()

	mockGateway := new(MockCalendarGateway)
	mockTokens := new(MockTokenRepository)

	expiry := time.Now().Add(time.Hour)
	mockGateway.On("Exchange", ctx, "code-xyz").Return(&oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       expiry,
	}, nil)
	mockTokens.On("Upsert", ctx, mock.MatchedBy(func(tok *entity.CalendarToken) bool {
		return tok.UserID == "user-7" && tok.Provider == entity.ProviderGoogle && tok.RefreshToken == "refresh"
	})).Return(nil)

	uc := NewCalendarUseCase(mockGateway, mockTokens)
	err := uc.CompleteAuth(ctx, "code-xyz", "user-7")

	assert.NoError(t, err)
	mockTokens.AssertNumberOfCalls(t, "Upsert", 1)
}

// TestStartAuthEmbedsUserID - o state é o id interno do usuário
func TestStartAuthEmbedsUserID(t *testing.T) {
	mockGateway := new(MockCalendarGateway)
	mockGateway.On("AuthURL", "user-7").Return("https://accounts.google.com/o/oauth2/auth?state=user-7")

	uc := NewCalendarUseCase(mockGateway, new(MockTokenRepository))

	url, err := uc.StartAuth("user-7")
	assert.NoError(t, err)
	assert.Contains(t, url, "state=user-7")

	_, err = uc.StartAuth("")
	assert.True(t, IsDomainError(err))
}
