package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mikinet/chat-server/internal/adapter/api/dto"
)

// Erros retornados pelo cliente da API
var (
	ErrNotFound   = errors.New("mensagem não encontrada")
	ErrBadRequest = errors.New("requisição inválida")
)

// ValidationFailure carrega os erros de validação devolvidos pelo servidor
type ValidationFailure struct {
	Errors []dto.ErrorResponse
}

func (v *ValidationFailure) Error() string {
	msgs := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		msgs = append(msgs, e.Msg)
	}
	return strings.Join(msgs, "; ")
}

// Client acessa a API HTTP do chat
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient cria um cliente para o servidor informado
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

func (c *Client) List(ctx context.Context) ([]dto.MessageResponse, error) {
	var out []dto.MessageResponse
	_, err := c.do(ctx, http.MethodGet, "/messages", nil, &out)
	return out, err
}

func (c *Client) Latest(ctx context.Context) ([]dto.MessageResponse, error) {
	var out []dto.MessageResponse
	_, err := c.do(ctx, http.MethodGet, "/messages/latest", nil, &out)
	return out, err
}

func (c *Client) Search(ctx context.Context, text string) ([]dto.MessageResponse, error) {
	var out []dto.MessageResponse
	_, err := c.do(ctx, http.MethodGet, "/messages/search?text="+url.QueryEscape(text), nil, &out)
	return out, err
}

func (c *Client) Get(ctx context.Context, id string) (dto.MessageResponse, error) {
	var out dto.MessageResponse
	_, err := c.do(ctx, http.MethodGet, "/message/"+url.PathEscape(id), nil, &out)
	return out, err
}

// Send publica uma mensagem. Falhas de validação chegam com status 200 e
// são convertidas em *ValidationFailure.
func (c *Client) Send(ctx context.Context, from, text string) ([]dto.MessageResponse, error) {
	body, err := json.Marshal(dto.MessageRequest{From: from, Text: text})
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	status, err := c.do(ctx, http.MethodPost, "/message", body, &raw)
	if err != nil {
		return nil, err
	}

	if status == http.StatusOK {
		failure := &ValidationFailure{}
		if err := json.Unmarshal(raw, &failure.Errors); err != nil {
			return nil, fmt.Errorf("erro ao decodificar validação: %w", err)
		}
		return nil, failure
	}

	var out []dto.MessageResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("erro ao decodificar mensagens: %w", err)
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/message/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("erro ao montar requisição: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("erro ao chamar %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return resp.StatusCode, ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return resp.StatusCode, ErrBadRequest
	case resp.StatusCode >= 300:
		return resp.StatusCode, fmt.Errorf("status inesperado: %d", resp.StatusCode)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}
	return resp.StatusCode, nil
}
