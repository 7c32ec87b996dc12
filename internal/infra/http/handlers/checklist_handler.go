package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/ligue-gestao/internal/entity"
	"github.com/xavierca1/ligue-gestao/internal/usecase"
)

// ChecklistHandler gerencia os itens do checklist diário. Quem assina a
// requisição é o actorId: consultor mexe só no próprio checklist,
// manager/admin mexem em qualquer um.
type ChecklistHandler struct {
	Repo        entity.ChecklistRepositoryInterface
	Consultants usecase.ConsultantRepositoryInterface
}

func NewChecklistHandler(repo entity.ChecklistRepositoryInterface, consultants usecase.ConsultantRepositoryInterface) *ChecklistHandler {
	return &ChecklistHandler{
		Repo:        repo,
		Consultants: consultants,
	}
}

type checklistRequest struct {
	Action  string `json:"action"`
	ActorID string `json:"actorId"`

	// insert
	UserID  string `json:"userId,omitempty"`
	Title   string `json:"title,omitempty"`
	DueDate string `json:"dueDate,omitempty"`

	// update
	ID   string `json:"id,omitempty"`
	Done *bool  `json:"done,omitempty"`
}

func (h *ChecklistHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req checklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido: " + err.Error()})
		return
	}

	if req.ActorID == "" {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "actorId é obrigatório"})
		return
	}

	actor, err := h.Consultants.FindByID(r.Context(), req.ActorID)
	if err != nil {
		if errors.Is(err, entity.ErrConsultantNotFound) {
			respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "actor desconhecido"})
			return
		}
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	switch req.Action {
	case "insert":
		h.handleInsert(w, r, actor, req)
	case "update":
		h.handleUpdate(w, r, actor, req)
	default:
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "action deve ser insert ou update"})
	}
}

func (h *ChecklistHandler) handleInsert(w http.ResponseWriter, r *http.Request, actor *entity.Consultant, req checklistRequest) {
	targetUser := req.UserID
	if targetUser == "" {
		targetUser = actor.ID
	}

	if targetUser != actor.ID && !isManager(actor) {
		respondJSON(w, http.StatusForbidden, map[string]string{
			"error": "apenas manager/admin criam itens para outros usuários",
		})
		return
	}

	item, err := entity.NewChecklistItem(targetUser, req.Title, req.DueDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Repo.Create(r.Context(), item); err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

func (h *ChecklistHandler) handleUpdate(w http.ResponseWriter, r *http.Request, actor *entity.Consultant, req checklistRequest) {
	if req.ID == "" || req.Done == nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "id e done são obrigatórios no update"})
		return
	}

	item, err := h.Repo.FindByID(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, entity.ErrChecklistItemNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if item.UserID != actor.ID && !isManager(actor) {
		respondJSON(w, http.StatusForbidden, map[string]string{
			"error": "item pertence a outro usuário",
		})
		return
	}

	updated, err := h.Repo.SetDone(r.Context(), req.ID, *req.Done)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func isManager(c *entity.Consultant) bool {
	return c.Role == entity.RoleManager || c.Role == entity.RoleAdmin
}
