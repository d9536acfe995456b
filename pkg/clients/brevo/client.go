package brevo

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

const defaultBaseURL = "https://api.brevo.com/v3"

// statusContactExists is the status Brevo returns when creating a contact whose
// email is already registered. It belongs to this client, not to callers: if the
// API changes its conflict signalling only this constant moves.
const statusContactExists = http.StatusBadRequest

// requestTimeout bounds each outbound call; Brevo documents no server-side limit
const requestTimeout = 10 * time.Second

// ErrContactExists is returned by CreateContact when the contact is already
// registered, so callers can fall back to an update.
var ErrContactExists = errors.New("contact already exists")

// ContactPayload is the create-contact request body
type ContactPayload struct {
	Email      string                 `json:"email"`
	Attributes map[string]interface{} `json:"attributes"`
	ListIDs    []int                  `json:"listIds"`
}

// ContactUpdate is the update-contact request body. The email is not part of the
// body; it addresses the contact resource in the URL instead.
type ContactUpdate struct {
	Attributes map[string]interface{} `json:"attributes"`
	ListIDs    []int                  `json:"listIds"`
}

// Client defines the interface for interacting with the Brevo contacts API
type Client interface {
	CreateContact(ctx context.Context, payload ContactPayload) error
	UpdateContact(ctx context.Context, email string, update ContactUpdate) error
}

type clientImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Brevo client
func NewClient(apiKey string) Client {
	return NewClientWithBaseURL(apiKey, defaultBaseURL)
}

// NewClientWithBaseURL creates a client against a non-default API endpoint
func NewClientWithBaseURL(apiKey, baseURL string) Client {
	return &clientImpl{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *clientImpl) CreateContact(ctx context.Context, payload ContactPayload) error {
	body, status, err := c.do(ctx, http.MethodPost, c.baseURL+"/contacts", payload)
	if err != nil {
		return err
	}

	if status == statusContactExists {
		return fmt.Errorf("%w: %s", ErrContactExists, string(body))
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return fmt.Errorf("error from Brevo API (status %d): %s", status, string(body))
	}

	return nil
}

func (c *clientImpl) UpdateContact(ctx context.Context, email string, update ContactUpdate) error {
	endpoint := c.baseURL + "/contacts/" + url.PathEscape(email)

	body, status, err := c.do(ctx, http.MethodPut, endpoint, update)
	if err != nil {
		return err
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return fmt.Errorf("error from Brevo API (status %d): %s", status, string(body))
	}

	return nil
}

// do sends one authenticated JSON request and returns the raw response body and
// status; status interpretation is left to the caller.
func (c *clientImpl) do(ctx context.Context, method, endpoint string, payload interface{}) ([]byte, int, error) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, 0, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Add("api-key", c.apiKey)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("error calling Brevo API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading response: %w", err)
	}

	return body, resp.StatusCode, nil
}
