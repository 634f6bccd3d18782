package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/recruiting-assistant/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.Email{
		Endpoint: server.URL,
		APIKey:   "mail-key",
		From:     "recruiting@example.com",
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_MissingValues(t *testing.T) {
	_, err := NewClient(config.Email{APIKey: "k", From: "a@b.com"})
	require.Error(t, err)
	var missingErr *config.MissingEnvError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "EMAIL_ENDPOINT", missingErr.Variable)
}

func TestSend(t *testing.T) {
	var got Message
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer mail-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	})

	err := client.Send(context.Background(), Message{
		To:      "alice@example.com",
		Subject: "Opportunity at Acme",
		Body:    "Hi Alice, ...",
	})
	require.NoError(t, err)
	// Configured sender fills in the empty From.
	assert.Equal(t, "recruiting@example.com", got.From)
	assert.Equal(t, "alice@example.com", got.To)
}

func TestSend_InvalidMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	err := client.Send(context.Background(), Message{
		To:      "not-an-email",
		Subject: "s",
		Body:    "b",
	})
	assert.Error(t, err)
}

func TestSend_ProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "suppressed recipient", http.StatusUnprocessableEntity)
	})

	err := client.Send(context.Background(), Message{
		To:      "alice@example.com",
		Subject: "s",
		Body:    "b",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}
