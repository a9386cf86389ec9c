package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-salesforce-cart/models"
)

func TestCreateAccountSendsBodyAndDecodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/salesforce/accounts", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in models.CreateAccountInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Acme Corp", in.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Account{ID: "acc-1", Name: in.Name})
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})
	account, err := client.CreateAccount(context.Background(), models.CreateAccountInput{Name: "Acme Corp"})
	require.NoError(t, err)
	assert.Equal(t, "acc-1", account.ID)
	assert.Equal(t, "Acme Corp", account.Name)
}

func TestListCartsQueryParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/salesforce/carts", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "25", q.Get("limit"))
		assert.Equal(t, "50", q.Get("offset"))
		assert.Equal(t, "acc-1", q.Get("accountId"))

		_ = json.NewEncoder(w).Encode(ListResponse[models.Cart]{
			Data:       []models.Cart{{ID: "cart-1", AccountID: "acc-1"}},
			Pagination: Pagination{Limit: 25, Offset: 50, Count: 1},
		})
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})
	list, err := client.ListCarts(context.Background(), 25, 50, "acc-1")
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "cart-1", list.Data[0].ID)
	assert.Equal(t, 1, list.Pagination.Count)
}

func TestRemoveFromCartSendsBodyOnDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/salesforce/carts/cart-1/items", r.URL.Path)

		var in models.RemoveItemInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "p1", in.ProductID)

		_ = json.NewEncoder(w).Encode(models.Cart{ID: "cart-1", Items: []models.CartItem{}})
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})
	cart, err := client.RemoveFromCart(context.Background(), "cart-1", models.RemoveItemInput{ProductID: "p1"})
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestAPIErrorCarriesStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Cart not found"}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})
	_, err := client.GetCart(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "Cart not found")
}

func TestNetworkErrorWhenServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := New(Config{BaseURL: server.URL})
	_, err := client.GetAccount(context.Background(), "any")
	require.Error(t, err)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestAPIKeySentAsBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(models.Account{ID: "acc-1"})
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL, APIKey: "token-123"})
	_, err := client.GetAccount(context.Background(), "acc-1")
	require.NoError(t, err)
}

func TestDeleteAccountAccepts204(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})
	require.NoError(t, client.DeleteAccount(context.Background(), "acc-1"))
}
