package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-gestao/internal/entity"
	"github.com/xavierca1/ligue-gestao/internal/usecase"
)

// MockColdCallRepo
type MockColdCallRepo struct {
	mock.Mock
}

func (m *MockColdCallRepo) FindByID(ctx context.Context, id string) (*entity.ColdCallLead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ColdCallLead), args.Error(1)
}

func (m *MockColdCallRepo) LinkCRMLead(ctx context.Context, coldCallID, crmLeadID string) error {
	args := m.Called(ctx, coldCallID, crmLeadID)
	return args.Error(0)
}

// MockPipelineRepo
type MockPipelineRepo struct {
	mock.Mock
}

func (m *MockPipelineRepo) FindActiveByOwner(ctx context.Context, ownerID string) (*entity.Pipeline, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Pipeline), args.Error(1)
}

func (m *MockPipelineRepo) ListActiveStages(ctx context.Context, pipelineID string) ([]*entity.Stage, error) {
	args := m.Called(ctx, pipelineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Stage), args.Error(1)
}

// MockCRMLeadRepo
type MockCRMLeadRepo struct {
	mock.Mock
}

func (m *MockCRMLeadRepo) Create(ctx context.Context, lead *entity.CRMLead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockCRMLeadRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCRMLeadRepo) CreateTask(ctx context.Context, task *entity.LeadTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func newConvertHandler(coldCalls *MockColdCallRepo, pipelines *MockPipelineRepo, leads *MockCRMLeadRepo) *ColdCallHandler {
	uc := usecase.NewConvertColdCallUseCase(coldCalls, pipelines, leads, "manager-001")
	return NewColdCallHandler(uc)
}

// TestHandleConvertSuccess - conversão limpa devolve 201 com o id do
// lead criado
func TestHandleConvertSuccess(t *testing.T) {
	mockColdCalls := new(MockColdCallRepo)
	mockPipelines := new(MockPipelineRepo)
	mockLeads := new(MockCRMLeadRepo)

	mockColdCalls.On("FindByID", mock.Anything, "cc-1").Return(&entity.ColdCallLead{
		ID:    "cc-1",
		Name:  "Carlos Pereira",
		Phone: "(11) 98888-7777",
	}, nil)
	mockPipelines.On("FindActiveByOwner", mock.Anything, "manager-001").
		Return(&entity.Pipeline{ID: "pipe-1", OwnerID: "manager-001", Active: true}, nil)
	mockPipelines.On("ListActiveStages", mock.Anything, "pipe-1").Return([]*entity.Stage{
		{ID: "stage-1", PipelineID: "pipe-1", Name: "Contato inicial", OrderIndex: 0, Active: true},
	}, nil)
	mockLeads.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockColdCalls.On("LinkCRMLead", mock.Anything, "cc-1", mock.Anything).Return(nil)

	handler := newConvertHandler(mockColdCalls, mockPipelines, mockLeads)

	req := httptest.NewRequest(http.MethodPost, "/cold-calls/convert", strings.NewReader(`{"coldCallLeadId":"cc-1"}`))
	rec := httptest.NewRecorder()
	handler.HandleConvert(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	json.Unmarshal(rec.Body.Bytes(), &body)
	assert.NotEmpty(t, body["crmLeadId"])
}

// TestHandleConvertInvalidJSON
func TestHandleConvertInvalidJSON(t *testing.T) {
	handler := newConvertHandler(new(MockColdCallRepo), new(MockPipelineRepo), new(MockCRMLeadRepo))

	req := httptest.NewRequest(http.MethodPost, "/cold-calls/convert", strings.NewReader(`{invalido`))
	rec := httptest.NewRecorder()
	handler.HandleConvert(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "JSON inválido")
}

// TestHandleConvertMissingID - validação do usecase vira 400 no handler
func TestHandleConvertMissingID(t *testing.T) {
	handler := newConvertHandler(new(MockColdCallRepo), new(MockPipelineRepo), new(MockCRMLeadRepo))

	req := httptest.NewRequest(http.MethodPost, "/cold-calls/convert", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.HandleConvert(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestHandleConvertAlreadyConverted - ligação já vinculada vira 409
func TestHandleConvertAlreadyConverted(t *testing.T) {
	mockColdCalls := new(MockColdCallRepo)

	mockColdCalls.On("FindByID", mock.Anything, "cc-1").Return(&entity.ColdCallLead{
		ID:        "cc-1",
		Name:      "Carlos Pereira",
		CRMLeadID: "lead-existente",
	}, nil)

	handler := newConvertHandler(mockColdCalls, new(MockPipelineRepo), new(MockCRMLeadRepo))

	req := httptest.NewRequest(http.MethodPost, "/cold-calls/convert", strings.NewReader(`{"coldCallLeadId":"cc-1"}`))
	rec := httptest.NewRecorder()
	handler.HandleConvert(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "ALREADY_CONVERTED")
}

// TestHandleConvertNotFound
func TestHandleConvertNotFound(t *testing.T) {
	mockColdCalls := new(MockColdCallRepo)
	mockColdCalls.On("FindByID", mock.Anything, "cc-404").Return(nil, entity.ErrColdCallNotFound)

	handler := newConvertHandler(mockColdCalls, new(MockPipelineRepo), new(MockCRMLeadRepo))

	req := httptest.NewRequest(http.MethodPost, "/cold-calls/convert", strings.NewReader(`{"coldCallLeadId":"cc-404"}`))
	rec := httptest.NewRecorder()
	handler.HandleConvert(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
