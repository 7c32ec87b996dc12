package googlecal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/xavierca1/ligue-gestao/internal/entity"
)

const (
	authURL          = "https://accounts.google.com/o/oauth2/auth"
	tokenURL         = "https://oauth2.googleapis.com/token"
	defaultEventsURL = "https://www.googleapis.com/calendar/v3/calendars/primary/events"

	scopeCalendarReadonly = "https://www.googleapis.com/auth/calendar.readonly"
)

// Client encapsula o fluxo OAuth2 (authorization code + refresh) e a
// listagem de eventos da agenda principal.
type Client struct {
	config    *oauth2.Config
	http      *http.Client
	eventsURL string
}

func NewClient(clientID, clientSecret, redirectURL string) *Client {
	return &Client{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{scopeCalendarReadonly},
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		http:      &http.Client{Timeout: 10 * time.Second},
		eventsURL: defaultEventsURL,
	}
}

// AuthURL monta a URL de autorização. O state carrega o id interno do
// usuário para o callback saber de quem são os tokens.
func (c *Client) AuthURL(state string) string {
	return c.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange troca o authorization code por access + refresh token.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("erro ao trocar code por token: %w", err)
	}
	return token, nil
}

// Refresh usa o refresh token para obter um access token novo.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	source := c.config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("erro ao renovar access token: %w", err)
	}
	return token, nil
}

// ListEvents busca os eventos no intervalo e achata pro formato do front.
// Evento de dia inteiro vem com start date-only (sem dateTime).
func (c *Client) ListEvents(ctx context.Context, accessToken string, start, end time.Time) ([]entity.CalendarEvent, error) {
	q := url.Values{}
	q.Set("timeMin", start.Format(time.RFC3339))
	q.Set("timeMax", end.Format(time.RFC3339))
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")

	req, err := http.NewRequestWithContext(ctx, "GET", c.eventsURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request google calendar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("google calendar rejeitou (status %d): %s", resp.StatusCode, string(body))
	}

	var response listEventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro decode google calendar: %w", err)
	}

	events := make([]entity.CalendarEvent, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Status == "cancelled" {
			continue
		}
		events = append(events, entity.CalendarEvent{
			ID:          item.ID,
			Title:       item.Summary,
			Description: item.Description,
			StartTime:   item.Start.value(),
			EndTime:     item.End.value(),
			AllDay:      item.Start.Date != "",
		})
	}

	return events, nil
}
