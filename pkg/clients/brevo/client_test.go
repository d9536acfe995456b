package brevo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() ContactPayload {
	return ContactPayload{
		Email: "jane.doe@placeholder.com",
		Attributes: map[string]interface{}{
			"FIRSTNAME": "Jane Doe",
			"CITY":      "Rabat",
		},
		ListIDs: []int{2},
	}
}

func TestCreateContactSuccess(t *testing.T) {
	var gotAuth, gotPath, gotMethod string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("api-key")
		gotPath = r.URL.Path
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":42}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	err := client.CreateContact(context.Background(), testPayload())

	assert.NoError(t, err)
	assert.Equal(t, "test-key", gotAuth)
	assert.Equal(t, "/contacts", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "jane.doe@placeholder.com", gotBody["email"])
	assert.Equal(t, []interface{}{2.0}, gotBody["listIds"])
}

func TestCreateContactConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"duplicate_parameter","message":"Unable to create contact, email is already associated with another Contact"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	err := client.CreateContact(context.Background(), testPayload())

	assert.ErrorIs(t, err, ErrContactExists)
	assert.Contains(t, err.Error(), "duplicate_parameter")
}

func TestCreateContactServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message":"try later"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	err := client.CreateContact(context.Background(), testPayload())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrContactExists)
	assert.Contains(t, err.Error(), "503")
}

func TestUpdateContactSuccess(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	update := ContactUpdate{
		Attributes: map[string]interface{}{"CITY": "Rabat"},
		ListIDs:    []int{2},
	}

	err := client.UpdateContact(context.Background(), "jane.doe@placeholder.com", update)

	assert.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/contacts/jane.doe@placeholder.com", gotPath)

	// the identifying email addresses the resource, never the body
	_, hasEmail := gotBody["email"]
	assert.False(t, hasEmail)
}

func TestUpdateContactFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid attribute"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)

	err := client.UpdateContact(context.Background(), "jane.doe@placeholder.com", ContactUpdate{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid attribute")
}
