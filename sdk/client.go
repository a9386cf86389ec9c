// Package sdk is the Go client for the Salesforce-style CRUD API. It mirrors
// every HTTP endpoint one method each, turns non-2xx responses into
// *APIError and transport failures into *NetworkError.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go-salesforce-cart/models"
)

// Config configures a Client.
type Config struct {
	// BaseURL is the server root, e.g. http://localhost:3000.
	BaseURL string
	// APIKey, when set, is sent as a bearer token.
	APIKey string
	// Timeout defaults to 30s.
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored then.
	HTTPClient *http.Client
}

// Client talks to the API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a Client.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    httpClient,
	}
}

// Account methods

func (c *Client) CreateAccount(ctx context.Context, in models.CreateAccountInput) (*models.Account, error) {
	var account models.Account
	if err := c.do(ctx, http.MethodPost, "/api/salesforce/accounts", nil, in, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	var account models.Account
	if err := c.do(ctx, http.MethodGet, "/api/salesforce/accounts/"+id, nil, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) ListAccounts(ctx context.Context, limit, offset int64) (*ListResponse[models.Account], error) {
	var list ListResponse[models.Account]
	if err := c.do(ctx, http.MethodGet, "/api/salesforce/accounts", pageQuery(limit, offset, ""), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) UpdateAccount(ctx context.Context, id string, in models.UpdateAccountInput) (*models.Account, error) {
	var account models.Account
	if err := c.do(ctx, http.MethodPut, "/api/salesforce/accounts/"+id, nil, in, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/salesforce/accounts/"+id, nil, nil, nil)
}

// Contact methods

func (c *Client) CreateContact(ctx context.Context, in models.CreateContactInput) (*models.Contact, error) {
	var contact models.Contact
	if err := c.do(ctx, http.MethodPost, "/api/salesforce/contacts", nil, in, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (c *Client) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	var contact models.Contact
	if err := c.do(ctx, http.MethodGet, "/api/salesforce/contacts/"+id, nil, nil, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListContacts lists contacts. A non-empty accountID filters server-side by
// account and bypasses pagination.
func (c *Client) ListContacts(ctx context.Context, limit, offset int64, accountID string) (*ListResponse[models.Contact], error) {
	var list ListResponse[models.Contact]
	if err := c.do(ctx, http.MethodGet, "/api/salesforce/contacts", pageQuery(limit, offset, accountID), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetContactsByAccount is shorthand for ListContacts filtered by account.
func (c *Client) GetContactsByAccount(ctx context.Context, accountID string) (*ListResponse[models.Contact], error) {
	return c.ListContacts(ctx, 100, 0, accountID)
}

func (c *Client) UpdateContact(ctx context.Context, id string, in models.UpdateContactInput) (*models.Contact, error) {
	var contact models.Contact
	if err := c.do(ctx, http.MethodPut, "/api/salesforce/contacts/"+id, nil, in, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/salesforce/contacts/"+id, nil, nil, nil)
}

// Cart methods

func (c *Client) CreateCart(ctx context.Context, in models.CreateCartInput) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodPost, "/api/salesforce/carts", nil, in, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) GetCart(ctx context.Context, id string) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, "/api/salesforce/carts/"+id, nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// ListCarts lists carts. A non-empty accountID filters server-side by
// account and bypasses pagination.
func (c *Client) ListCarts(ctx context.Context, limit, offset int64, accountID string) (*ListResponse[models.Cart], error) {
	var list ListResponse[models.Cart]
	if err := c.do(ctx, http.MethodGet, "/api/salesforce/carts", pageQuery(limit, offset, accountID), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetCartsByAccount is shorthand for ListCarts filtered by account.
func (c *Client) GetCartsByAccount(ctx context.Context, accountID string) (*ListResponse[models.Cart], error) {
	return c.ListCarts(ctx, 100, 0, accountID)
}

func (c *Client) AddToCart(ctx context.Context, cartID string, in models.AddItemInput) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodPost, "/api/salesforce/carts/"+cartID+"/items", nil, in, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) RemoveFromCart(ctx context.Context, cartID string, in models.RemoveItemInput) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodDelete, "/api/salesforce/carts/"+cartID+"/items", nil, in, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) DeleteCart(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/salesforce/carts/"+id, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

func pageQuery(limit, offset int64, accountID string) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.FormatInt(limit, 10))
	q.Set("offset", strconv.FormatInt(offset, 10))
	if accountID != "" {
		q.Set("accountId", accountID)
	}
	return q
}
