package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-gestao/internal/entity"
	"github.com/xavierca1/ligue-gestao/internal/infra/integration/authgate"
	"github.com/xavierca1/ligue-gestao/internal/infra/queue"
)

// MockAuthGateway
type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) FindUserByEmail(ctx context.Context, email string) (*authgate.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authgate.User), args.Error(1)
}

func (m *MockAuthGateway) CreateUser(ctx context.Context, input authgate.CreateUserInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockAuthGateway) UpdateUser(ctx context.Context, id string, input authgate.UpdateUserInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

// MockConsultantRepository
type MockConsultantRepository struct {
	mock.Mock
}

func (m *MockConsultantRepository) Upsert(ctx context.Context, c *entity.Consultant) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockConsultantRepository) SetNeedsPasswordChange(ctx context.Context, id string, value bool) error {
	args := m.Called(ctx, id, value)
	return args.Error(0)
}

func (m *MockConsultantRepository) FindByID(ctx context.Context, id string) (*entity.Consultant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultant), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishCredentials(ctx context.Context, payload queue.CredentialsPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// ============ TESTES ============

func validProvisionInput() ProvisionConsultantInput {
	return ProvisionConsultantInput{
		Email:        "maria@liguemedicina.com",
		Name:         "Maria Souza",
		TempPassword: "Trocar@123",
		Login:        "maria.souza",
		Role:         entity.RoleConsultant,
	}
}

// TestProvisionCreatesNewUser - email sem conta: cria exatamente uma e
// devolve userExists=false
func TestProvisionCreatesNewUser(t *testing.T) {
	ctx := context.Background()

	mockAuth := new(MockAuthGateway)
	mockRepo := new(MockConsultantRepository)
	mockQueue := new(MockQueueProducer)

	mockAuth.On("FindUserByEmail", ctx, "maria@liguemedicina.com").Return(nil, authgate.ErrUserNotFound)
	mockAuth.On("CreateUser", ctx, mock.Anything).Return("auth-123", nil)
	mockRepo.On("Upsert", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishCredentials", ctx, mock.Anything).Return(nil)

	uc := NewProvisionConsultantUseCase(mockAuth, mockRepo, mockQueue)
	output, err := uc.Execute(ctx, validProvisionInput())

	assert.NoError(t, err)
	assert.False(t, output.UserExists)
	assert.Equal(t, "auth-123", output.AuthUserID)
	mockAuth.AssertNumberOfCalls(t, "CreateUser", 1)
	mockAuth.AssertNotCalled(t, "UpdateUser")

	// Profile gravado com a flag de troca de senha
	mockRepo.AssertCalled(t, "Upsert", ctx, mock.MatchedBy(func(c *entity.Consultant) bool {
		return c.ID == "auth-123" && c.NeedsPasswordChange && c.FirstName == "Maria" && c.LastName == "Souza"
	}))
}

// TestProvisionUpdatesExistingUser - email já tem conta: atualiza senha
// e metadata, não cria segunda conta
func TestProvisionUpdatesExistingUser(t *testing.T) {
	ctx := context.Background()

	mockAuth := new(MockAuthGateway)
	mockRepo := new(MockConsultantRepository)
	mockQueue := new(MockQueueProducer)

	existing := &authgate.User{ID: "auth-999", Email: "maria@liguemedicina.com"}
	mockAuth.On("FindUserByEmail", ctx, "maria@liguemedicina.com").Return(existing, nil)
	mockAuth.On("UpdateUser", ctx, "auth-999", mock.MatchedBy(func(input authgate.UpdateUserInput) bool {
		return input.Password == "Trocar@123" && input.Metadata["needs_password_change"] == true
	})).Return(nil)
	mockRepo.On("Upsert", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishCredentials", ctx, mock.Anything).Return(nil)

	uc := NewProvisionConsultantUseCase(mockAuth, mockRepo, mockQueue)
	output, err := uc.Execute(ctx, validProvisionInput())

	assert.NoError(t, err)
	assert.True(t, output.UserExists)
	assert.Equal(t, "auth-999", output.AuthUserID)
	mockAuth.AssertNotCalled(t, "CreateUser")
}

// TestProvisionValidation - campos obrigatórios ausentes caem em
// DomainError antes de qualquer chamada externa
func TestProvisionValidation(t *testing.T) {
	ctx := context.Background()

	mockAuth := new(MockAuthGateway)
	mockRepo := new(MockConsultantRepository)

	uc := NewProvisionConsultantUseCase(mockAuth, mockRepo, nil)

	input := validProvisionInput()
	input.Email = ""
	input.Role = ""

	_, err := uc.Execute(ctx, input)

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	mockAuth.AssertNotCalled(t, "FindUserByEmail")
}

// TestProvisionQueueFailureIsNonFatal - fila fora do ar não derruba o
// provisionamento
func TestProvisionQueueFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()

	mockAuth := new(MockAuthGateway)
	mockRepo := new(MockConsultantRepository)
	mockQueue := new(MockQueueProducer)

	mockAuth.On("FindUserByEmail", ctx, mock.Anything).Return(nil, authgate.ErrUserNotFound)
	mockAuth.On("CreateUser", ctx, mock.Anything).Return("auth-123", nil)
	mockRepo.On("Upsert", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishCredentials", ctx, mock.Anything).Return(errors.New("rabbit down"))

	uc := NewProvisionConsultantUseCase(mockAuth, mockRepo, mockQueue)
	output, err := uc.Execute(ctx, validProvisionInput())

	assert.NoError(t, err)
	assert.Equal(t, "auth-123", output.AuthUserID)
}

// TestResetPasswordMarksProfile - reset troca a senha e marca o profile
func TestResetPasswordMarksProfile(t *testing.T) {
	ctx := context.Background()

	mockAuth := new(MockAuthGateway)
	mockRepo := new(MockConsultantRepository)

	mockAuth.On("UpdateUser", ctx, "auth-123", mock.MatchedBy(func(input authgate.UpdateUserInput) bool {
		return input.Password == "NovaSenha@1"
	})).Return(nil)
	mockRepo.On("SetNeedsPasswordChange", ctx, "auth-123", true).Return(nil)

	uc := NewResetConsultantPasswordUseCase(mockAuth, mockRepo, nil)
	output, err := uc.Execute(ctx, ResetPasswordInput{UserID: "auth-123", NewPassword: "NovaSenha@1"})

	assert.NoError(t, err)
	assert.Equal(t, "NovaSenha@1", output.NewPassword)
	mockRepo.AssertCalled(t, "SetNeedsPasswordChange", ctx, "auth-123", true)
}

// TestResetPasswordMissingFields
func TestResetPasswordMissingFields(t *testing.T) {
	uc := NewResetConsultantPasswordUseCase(new(MockAuthGateway), new(MockConsultantRepository), nil)

	_, err := uc.Execute(context.Background(), ResetPasswordInput{UserID: "auth-123"})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
}
