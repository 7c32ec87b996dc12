package authgate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrUserNotFound = errors.New("usuário não encontrado na plataforma de auth")

// Client fala com a API admin da plataforma de auth usando a service key.
type Client struct {
	baseURL    string
	serviceKey string
	http       *http.Client
}

func NewClient(serviceKey, baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// FindUserByEmail faz lookup direto por email (a API indexa email, não
// precisamos listar tudo e varrer).
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	u := fmt.Sprintf("%s/admin/users?email=%s", c.baseURL, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request auth admin: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("erro listar usuários (status %d): %s", resp.StatusCode, string(body))
	}

	var response listUsersResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro decode auth admin: %w", err)
	}

	if len(response.Users) == 0 {
		return nil, ErrUserNotFound
	}

	return &response.Users[0], nil
}

// CreateUser cria a conta já com email confirmado e devolve o ID.
func (c *Client) CreateUser(ctx context.Context, input CreateUserInput) (string, error) {
	u := fmt.Sprintf("%s/admin/users", c.baseURL)

	payload := createUserRequest{
		Email:        input.Email,
		Password:     input.Password,
		EmailConfirm: input.EmailConfirm,
		UserMetadata: input.Metadata,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("erro ao marshal user: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", u, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro request auth admin: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("erro criar usuário (status %d): %s", resp.StatusCode, string(body))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", fmt.Errorf("erro decode auth admin: %w", err)
	}

	return user.ID, nil
}

// UpdateUser sobrescreve senha e/ou metadata da conta.
func (c *Client) UpdateUser(ctx context.Context, id string, input UpdateUserInput) error {
	u := fmt.Sprintf("%s/admin/users/%s", c.baseURL, id)

	payload := updateUserRequest{
		Password:     input.Password,
		UserMetadata: input.Metadata,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao marshal update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "PUT", u, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request auth admin: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrUserNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("erro atualizar usuário (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}

// setHeaders centraliza os headers obrigatórios
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "LigueGestao/1.0")
}
