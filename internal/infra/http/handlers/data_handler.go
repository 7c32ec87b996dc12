package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// TableAdmin é o contrato das operações genéricas do painel admin.
type TableAdmin interface {
	Insert(ctx context.Context, table string, data map[string]any) (map[string]any, error)
	Update(ctx context.Context, table, id string, data map[string]any) (map[string]any, error)
	Delete(ctx context.Context, table, id string) error
	UpdateConfig(ctx context.Context, key string, value any) error
}

// DataManagerHandler atende o painel administrativo: insert/update/
// delete sobre tabelas permitidas, mais update_config. Fica atrás do
// middleware de service token.
type DataManagerHandler struct {
	Repo TableAdmin
}

func NewDataManagerHandler(repo TableAdmin) *DataManagerHandler {
	return &DataManagerHandler{Repo: repo}
}

type dataManagerRequest struct {
	TableName string         `json:"tableName"`
	Operation string         `json:"operation"`
	Data      map[string]any `json:"data,omitempty"`
	ID        string         `json:"id,omitempty"`
	ConfigKey string         `json:"configKey,omitempty"`
}

func (h *DataManagerHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req dataManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "JSON inválido: " + err.Error()})
		return
	}

	ctx := r.Context()

	switch req.Operation {
	case "insert":
		row, err := h.Repo.Insert(ctx, req.TableName, req.Data)
		if err != nil {
			respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		respondJSON(w, http.StatusOK, row)

	case "update":
		row, err := h.Repo.Update(ctx, req.TableName, req.ID, req.Data)
		if err != nil {
			respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		respondJSON(w, http.StatusOK, row)

	case "delete":
		if err := h.Repo.Delete(ctx, req.TableName, req.ID); err != nil {
			respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"success": true})

	case "update_config":
		var value any
		if req.Data != nil {
			value = req.Data
		}
		if err := h.Repo.UpdateConfig(ctx, req.ConfigKey, value); err != nil {
			respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"success": true})

	default:
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "operation deve ser insert, update, delete ou update_config",
		})
	}
}
