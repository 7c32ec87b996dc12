package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleICS = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nBEGIN:VEVENT\r\nSUMMARY:Reunião\r\nEND:VEVENT\r\nEND:VCALENDAR\r\n"

// TestICSFetchSuccess - proxy devolve o texto do .ics
func TestICSFetchSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		w.Write([]byte(sampleICS))
	}))
	defer upstream.Close()

	handler := NewICSHandler()

	req := httptest.NewRequest(http.MethodPost, "/ics/fetch", strings.NewReader(`{"url":"`+upstream.URL+`"}`))
	rec := httptest.NewRecorder()
	handler.HandleFetch(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
}

// TestICSFetchRejectsBadURL - só http(s) passa
func TestICSFetchRejectsBadURL(t *testing.T) {
	handler := NewICSHandler()

	for _, bad := range []string{`{"url":"ftp://example.com/cal.ics"}`, `{"url":""}`, `{"url":"notaurl"}`} {
		req := httptest.NewRequest(http.MethodPost, "/ics/fetch", strings.NewReader(bad))
		rec := httptest.NewRecorder()
		handler.HandleFetch(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

// TestICSFetchPassesBodyThrough - o proxy não interpreta o conteúdo, o
// corpo volta cru mesmo quando não parece agenda
func TestICSFetchPassesBodyThrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>login necessário</html>"))
	}))
	defer upstream.Close()

	handler := NewICSHandler()

	req := httptest.NewRequest(http.MethodPost, "/ics/fetch", strings.NewReader(`{"url":"`+upstream.URL+`"}`))
	rec := httptest.NewRecorder()
	handler.HandleFetch(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "login necessário")
}

// TestICSFetchUpstreamError - origem com 404 vira 500 no proxy
func TestICSFetchUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer upstream.Close()

	handler := NewICSHandler()

	req := httptest.NewRequest(http.MethodPost, "/ics/fetch", strings.NewReader(`{"url":"`+upstream.URL+`"}`))
	rec := httptest.NewRecorder()
	handler.HandleFetch(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
