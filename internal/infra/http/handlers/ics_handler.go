package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ICSHandler baixa um arquivo .ics externo por conta do front (o
// browser esbarra em CORS ao buscar direto).
type ICSHandler struct {
	http *http.Client
}

func NewICSHandler() *ICSHandler {
	return &ICSHandler{
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

type fetchICSRequest struct {
	URL string `json:"url"`
}

func (h *ICSHandler) HandleFetch(w http.ResponseWriter, r *http.Request) {
	var req fetchICSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido: " + err.Error()})
		return
	}

	parsed, err := url.Parse(req.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "url deve ser http(s) válida"})
		return
	}

	upstream, err := h.http.Get(req.URL)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "falha ao buscar o ICS: " + err.Error()})
		return
	}
	defer upstream.Body.Close()

	if upstream.StatusCode < 200 || upstream.StatusCode > 299 {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "origem respondeu status " + upstream.Status,
		})
		return
	}

	// ICS de agenda dificilmente passa de alguns MB; o limite protege o
	// processo de payloads abusivos.
	body, err := io.ReadAll(io.LimitReader(upstream.Body, 5<<20))
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "falha ao ler o ICS: " + err.Error()})
		return
	}

	// O corpo volta cru; quem interpreta o ICS é o front.
	respondJSON(w, http.StatusOK, map[string]string{"text": string(body)})
}
