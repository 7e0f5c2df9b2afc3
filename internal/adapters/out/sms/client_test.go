package sms_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/adapters/out/sms"
	"fulfillment/internal/pkg/errs"
)

func Test_Send_PostsMessageToGateway(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/sms/send", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := sms.NewClient(server.URL, "test-key")
	require.NoError(t, err)

	err = client.Send(t.Context(), "+255700000001", "Your order is ready for delivery.")

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "+255700000001", gotBody["phone"])
	assert.Equal(t, "Your order is ready for delivery.", gotBody["message"])
}

func Test_Send_GatewayErrorIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := sms.NewClient(server.URL, "test-key")
	require.NoError(t, err)

	err = client.Send(t.Context(), "+255700000001", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func Test_NewClient_RequiresConfig(t *testing.T) {
	_, err := sms.NewClient("", "key")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = sms.NewClient("http://gateway", "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_Send_RequiresPhoneAndMessage(t *testing.T) {
	client, err := sms.NewClient("http://gateway", "key")
	require.NoError(t, err)

	assert.ErrorIs(t, client.Send(t.Context(), "", "hello"), errs.ErrValueIsRequired)
	assert.ErrorIs(t, client.Send(t.Context(), "+255700000001", ""), errs.ErrValueIsRequired)
}
