package export

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/claude/reppulse/internal/models"
)

// Client fetches session history from a RepPulse server over HTTP.
type Client struct {
	serverURL  string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an HTTP client for the given server and API key.
func NewClient(serverURL, apiKey string) *Client {
	return &Client{
		serverURL: serverURL,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// FetchSessions retrieves a user's sessions, newest first. A limit of 0
// fetches the full history.
func (c *Client) FetchSessions(userID, limit int) ([]models.WorkoutSession, error) {
	url := fmt.Sprintf("%s/api/v1/profiles/%d/sessions", c.serverURL, userID)
	if limit > 0 {
		url = fmt.Sprintf("%s?limit=%d", url, limit)
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sessions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("session request failed (status %d): %s", resp.StatusCode, body)
	}

	var sessions []models.WorkoutSession
	if err := json.NewDecoder(resp.Body).Decode(&sessions); err != nil {
		return nil, fmt.Errorf("decoding sessions: %w", err)
	}
	return sessions, nil
}
