package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-gestao/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-gestao/internal/usecase"
)

type ConsultantHandler struct {
	ProvisionUC *usecase.ProvisionConsultantUseCase
	ResetUC     *usecase.ResetConsultantPasswordUseCase
}

func NewConsultantHandler(provisionUC *usecase.ProvisionConsultantUseCase, resetUC *usecase.ResetConsultantPasswordUseCase) *ConsultantHandler {
	return &ConsultantHandler{
		ProvisionUC: provisionUC,
		ResetUC:     resetUC,
	}
}

func (h *ConsultantHandler) HandleProvision(w http.ResponseWriter, r *http.Request) {
	var input usecase.ProvisionConsultantInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido: " + err.Error()})
		return
	}

	output, err := h.ProvisionUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("authgate")
		}
		respondError(w, err)
		return
	}

	if output.UserExists {
		middleware.RecordProvisioning("updated")
	} else {
		middleware.RecordProvisioning("created")
	}

	respondJSON(w, http.StatusOK, output)
}

func (h *ConsultantHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var input usecase.ResetPasswordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido: " + err.Error()})
		return
	}

	output, err := h.ResetUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("authgate")
		}
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output)
}
