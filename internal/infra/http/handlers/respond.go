package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/ligue-gestao/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError mapeia DomainError pro status sugerido e o resto pra 500.
// A mensagem crua do erro vai no corpo, como o front espera.
func respondError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		respondJSON(w, domainErr.StatusCode(), map[string]string{
			"error": domainErr.Message,
			"code":  domainErr.Code,
		})
		return
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error": techErr.Message,
			"code":  techErr.Code,
		})
		return
	}

	respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
