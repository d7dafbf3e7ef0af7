// Package api is the generic client for the MasterStack admin API: every
// endpoint answers the same {success, message, data, pagination} envelope
// and is classified purely by HTTP status code.
package api

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

	"go.uber.org/zap"

	"github.com/tarekmagdym/MasterStack/internal/i18n"
)

var (
	ErrNetwork         = errors.New("network error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrServer          = errors.New("server error")
	ErrRequestFailed   = errors.New("request failed")
)

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

type Client struct {
	http    *http.Client
	baseURL string
	msgs    *i18n.Catalog
	log     *zap.Logger
}

// NewClient wraps httpClient, which is expected to already carry the
// request-authorizer transport so every call leaves with the bearer header.
func NewClient(httpClient *http.Client, baseURL string, msgs *i18n.Catalog, log *zap.Logger) *Client {
	if msgs == nil {
		msgs = i18n.NewCatalog(i18n.LangArabic)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		msgs:    msgs,
		log:     log,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (Envelope, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (Envelope, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (Envelope, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (Envelope, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

func (c *Client) Delete(ctx context.Context, path string) (Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (Envelope, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return Envelope{}, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return Envelope{}, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %s", ErrNetwork, c.msgs.T(i18n.MsgNetworkError))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %s", ErrNetwork, c.msgs.T(i18n.MsgNetworkError))
	}

	var env Envelope
	decodeErr := json.Unmarshal(raw, &env)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return env, fmt.Errorf("%w: %s", ErrUnauthenticated, c.message(env, i18n.MsgUnauthenticated))
	case resp.StatusCode == http.StatusForbidden:
		return env, fmt.Errorf("%w: %s", ErrUnauthorized, c.message(env, i18n.MsgUnauthorized))
	case resp.StatusCode >= http.StatusInternalServerError:
		return env, fmt.Errorf("%w: %s", ErrServer, c.message(env, i18n.MsgServerError))
	}

	if decodeErr != nil {
		c.log.Debug("malformed response body",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(decodeErr),
		)
		return Envelope{}, fmt.Errorf("%w: %s", ErrServer, c.msgs.T(i18n.MsgServerError))
	}

	if resp.StatusCode >= 400 || !env.Success {
		return env, fmt.Errorf("%w: %s", ErrRequestFailed, c.message(env, i18n.MsgServerError))
	}

	return env, nil
}

// DecodeData unmarshals the envelope payload into out.
func DecodeData(env Envelope, out any) error {
	if len(env.Data) == 0 {
		return fmt.Errorf("response has no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func (c *Client) message(env Envelope, fallbackKey string) string {
	if strings.TrimSpace(env.Message) != "" {
		return env.Message
	}
	return c.msgs.T(fallbackKey)
}
