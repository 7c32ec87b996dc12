package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-gestao/internal/entity"
)

type CommissionHandler struct {
	Repo entity.CommissionRepositoryInterface
}

func NewCommissionHandler(repo entity.CommissionRepositoryInterface) *CommissionHandler {
	return &CommissionHandler{Repo: repo}
}

// HandleGetSummary agrega as comissões do consultor por status, já com
// os valores formatados em reais.
func (h *CommissionHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	consultantID := chi.URLParam(r, "consultantId")
	if consultantID == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "consultantId é obrigatório"})
		return
	}

	commissions, err := h.Repo.ListByConsultant(r.Context(), consultantID)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, entity.SummarizeCommissions(commissions))
}
