package estoquefacil

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
	"time"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://os.estoquefacil.net/api"

// maxErrorBody caps how much of a failed response is kept on RemoteError.
const maxErrorBody = 2 << 10

var ErrEmptyToken = errors.New("empty shop token")

// RemoteError is returned for any non-2xx answer of the API.
type RemoteError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("estoquefacil %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("estoquefacil %s: status %d", e.Op, e.StatusCode)
}

// NotFound reports whether the API answered 404.
func (e *RemoteError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client talks to the service order REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IServiceOrderGateway = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: baseURL, httpClient: &http.Client{Timeout: timeout}}
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]entities.ServiceOrder, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrEmptyToken
	}
	var raw json.RawMessage
	if err := c.do(ctx, "list orders", http.MethodGet, c.path("order-services", token), nil, &raw); err != nil {
		return nil, err
	}
	var orders []entities.ServiceOrder
	if err := decodeList(raw, &orders, "data", "orders", "order_services"); err != nil {
		return nil, fmt.Errorf("estoquefacil list orders: %w", err)
	}
	return orders, nil
}

func (c *Client) ListClients(ctx context.Context, token string) ([]entities.Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrEmptyToken
	}
	var raw json.RawMessage
	if err := c.do(ctx, "list clients", http.MethodGet, c.path("order-services", "client", token), nil, &raw); err != nil {
		return nil, err
	}
	var clients []entities.Client
	if err := decodeList(raw, &clients, "data", "clients"); err != nil {
		return nil, fmt.Errorf("estoquefacil list clients: %w", err)
	}
	return clients, nil
}

// ShopLogo returns the logo URL configured for the shop, if any.
func (c *Client) ShopLogo(ctx context.Context, token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", ErrEmptyToken
	}
	var body struct {
		LogoURL struct {
			ImageURL string `json:"imageUrl"`
		} `json:"logo_url"`
	}
	if err := c.do(ctx, "shop logo", http.MethodGet, c.path("order-services", "shop", "logo", token), nil, &body); err != nil {
		return "", err
	}
	return body.LogoURL.ImageURL, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	if strings.TrimSpace(token) == "" {
		return entities.ServiceOrder{}, ErrEmptyToken
	}
	var created entities.ServiceOrder
	if err := c.do(ctx, "create order", http.MethodPost, c.path("order-services", "create", token), o, &created); err != nil {
		return entities.ServiceOrder{}, err
	}
	return created, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	var updated entities.ServiceOrder
	if err := c.do(ctx, "update order", http.MethodPut, c.path("order-services", "update", id), o, &updated); err != nil {
		return entities.ServiceOrder{}, err
	}
	return updated, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) error {
	body := map[string]entities.OrderStatus{"status": status}
	return c.do(ctx, "update status", http.MethodPut, c.path("order-services", "update", id), body, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, number string) error {
	return c.do(ctx, "delete order", http.MethodDelete, c.path("order-services", "del", number), nil, nil)
}

func (c *Client) path(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

// do sends in as JSON (when non-nil) and decodes a 2xx body into out (when
// non-nil and the body is not empty).
func (c *Client) do(ctx context.Context, op, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("estoquefacil %s: encode: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("estoquefacil %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		zap.L().Warn("[estoquefacil][client] request failed", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("estoquefacil %s: %w", op, err)
	}
	defer resp.Body.Close()

	zap.L().Debug("[estoquefacil][client] response",
		zap.String("op", op),
		zap.String("method", method),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &RemoteError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("estoquefacil %s: read body: %w", op, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("estoquefacil %s: decode: %w", op, err)
	}
	return nil
}

// decodeList accepts a bare JSON array or an object wrapping it under one of
// keys.
func decodeList(raw json.RawMessage, out any, keys ...string) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return err
	}
	for _, k := range keys {
		if v, ok := wrapper[k]; ok {
			return json.Unmarshal(v, out)
		}
	}
	return errors.New("unexpected list payload")
}
