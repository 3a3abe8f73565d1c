// Package client talks to the octosupply HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"octosupply/pkg/resource"
	"octosupply/pkg/supply"
)

// StatusError reports a response outside the 2xx range other than 404.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("octosupply: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// Client sends requests to one API server.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a client for baseURL, e.g. http://localhost:3000. A nil hc
// uses a client with a 10 second timeout.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// WithToken returns a copy of c that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Login opens a session and returns its token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	in := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/login", in, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Suppliers addresses the supplier collection.
func (c *Client) Suppliers() *Resource[supply.Supplier] {
	return NewResource[supply.Supplier](c, "suppliers")
}

// Products addresses the product catalogue.
func (c *Client) Products() *Resource[supply.Product] {
	return NewResource[supply.Product](c, "products")
}

// Headquarters addresses the headquarters collection.
func (c *Client) Headquarters() *Resource[supply.Headquarters] {
	return NewResource[supply.Headquarters](c, "headquarters")
}

// Branches addresses the branch collection.
func (c *Client) Branches() *Resource[supply.Branch] {
	return NewResource[supply.Branch](c, "branches")
}

// Orders addresses the order collection.
func (c *Client) Orders() *Resource[supply.Order] {
	return NewResource[supply.Order](c, "orders")
}

// OrderDetails addresses the order line items.
func (c *Client) OrderDetails() *Resource[supply.OrderDetail] {
	return NewResource[supply.OrderDetail](c, "order-details")
}

// Deliveries addresses the delivery collection.
func (c *Client) Deliveries() *Resource[supply.Delivery] {
	return NewResource[supply.Delivery](c, "deliveries")
}

// OrderDetailDeliveries addresses the links between order lines and deliveries.
func (c *Client) OrderDetailDeliveries() *Resource[supply.OrderDetailDelivery] {
	return NewResource[supply.OrderDetailDelivery](c, "order-detail-deliveries")
}

// StatusResult is the outcome of UpdateDeliveryStatus.
type StatusResult struct {
	Delivery      supply.Delivery `json:"delivery"`
	NotifyAction  string          `json:"notifyAction"`
	CommandOutput string          `json:"commandOutput"`
}

// UpdateDeliveryStatus sets the status of delivery id and runs the named
// notify action when action is not empty.
func (c *Client) UpdateDeliveryStatus(ctx context.Context, id int, status, action string) (StatusResult, error) {
	in := map[string]string{"status": status}
	if action != "" {
		in["notifyAction"] = action
	}
	path := "/api/deliveries/" + strconv.Itoa(id) + "/status"

	if action == "" {
		var d supply.Delivery
		if err := c.do(ctx, http.MethodPut, path, in, &d); err != nil {
			return StatusResult{}, err
		}
		return StatusResult{Delivery: d}, nil
	}
	var out StatusResult
	if err := c.do(ctx, http.MethodPut, path, in, &out); err != nil {
		return StatusResult{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, resource.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts {"error": ...} bodies and falls back to the raw text.
func errorMessage(data []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(data))
}

// Resource addresses one collection.
type Resource[T resource.Record] struct {
	c    *Client
	path string
}

// NewResource returns a handle on the collection mounted at /api/<prefix>.
func NewResource[T resource.Record](c *Client, prefix string) *Resource[T] {
	return &Resource[T]{c: c, path: "/api/" + prefix}
}

// List returns the whole collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the record with id. A missing record yields
// resource.ErrNotFound.
func (r *Resource[T]) Get(ctx context.Context, id int) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodGet, r.item(id), nil, &out)
	return out, err
}

// Create appends v.
func (r *Resource[T]) Create(ctx context.Context, v T) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPost, r.path, v, &out)
	return out, err
}

// Update replaces the record with id by v.
func (r *Resource[T]) Update(ctx context.Context, id int, v T) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPut, r.item(id), v, &out)
	return out, err
}

// Delete removes the record with id.
func (r *Resource[T]) Delete(ctx context.Context, id int) error {
	return r.c.do(ctx, http.MethodDelete, r.item(id), nil, nil)
}

// Verbatim returns a handle on the same collection that sends and receives
// records as untouched JSON documents.
func Verbatim[K interface {
	resource.Record
	resource.Keyed
}](r *Resource[K]) *Resource[resource.Document[K]] {
	return &Resource[resource.Document[K]]{c: r.c, path: r.path}
}

func (r *Resource[T]) item(id int) string {
	return r.path + "/" + strconv.Itoa(id)
}
