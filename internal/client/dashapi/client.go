package dashapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
)

// Client fetches dashboard aggregates from the backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.ILogger
}

func NewClient(baseURL string, timeout time.Duration, log logger.ILogger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// Fetch loads the daily dashboard. The deployed route really is /dashbord;
// do not "fix" the spelling, the backend does not answer on /dashboard.
func (c *Client) Fetch(ctx context.Context, token string) (*dto.DashboardResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/dashbord", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("DashApi", "Dashboard returned unexpected status", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("dashboard fetch failed: status=%d", resp.StatusCode)
	}

	var out dto.DashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
