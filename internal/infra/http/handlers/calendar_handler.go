package handlers

import (
	"fmt"
	"net/http"

	"github.com/xavierca1/ligue-gestao/internal/entity"
	"github.com/xavierca1/ligue-gestao/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-gestao/internal/usecase"
)

type CalendarHandler struct {
	UC *usecase.CalendarUseCase
}

func NewCalendarHandler(uc *usecase.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{UC: uc}
}

// HandleAuthStart devolve a URL de autorização do Google com o user_id
// no state.
func (h *CalendarHandler) HandleAuthStart(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	authURL, err := h.UC.StartAuth(userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"auth_url": authURL})
}

// HandleAuthCallback recebe o redirect do Google, troca o code por
// tokens e mostra uma página simples pro usuário fechar a aba.
func (h *CalendarHandler) HandleAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": "autorização negada pelo provedor: " + errParam,
		})
		return
	}

	if err := h.UC.CompleteAuth(r.Context(), code, state); err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `
<!DOCTYPE html>
<html>
<head>
    <title>Agenda conectada</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #f5f5f5; }
        .container { text-align: center; background: white; padding: 2rem;
                     border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { color: #0b8457; margin: 0 0 1rem 0; }
        p { color: #666; margin: 0; }
    </style>
</head>
<body>
    <div class="container">
        <h1>✓ Agenda conectada</h1>
        <p>Pode fechar esta janela e voltar pro portal.</p>
    </div>
</body>
</html>
`)
}

// HandleListEvents busca os eventos no intervalo pedido. Renova o
// access token por baixo quando necessário.
func (h *CalendarHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	events, err := h.UC.ListEvents(r.Context(), q.Get("user_id"), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("google_calendar")
		}
		respondError(w, err)
		return
	}

	if events == nil {
		events = []entity.CalendarEvent{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"events": events})
}
