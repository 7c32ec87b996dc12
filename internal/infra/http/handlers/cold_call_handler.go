package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-gestao/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-gestao/internal/usecase"
)

type ColdCallHandler struct {
	ConvertUC *usecase.ConvertColdCallUseCase
}

func NewColdCallHandler(convertUC *usecase.ConvertColdCallUseCase) *ColdCallHandler {
	return &ColdCallHandler{ConvertUC: convertUC}
}

func (h *ColdCallHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	var input usecase.ConvertColdCallInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido: " + err.Error()})
		return
	}

	output, err := h.ConvertUC.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordLeadConversion()
	respondJSON(w, http.StatusCreated, output)
}
