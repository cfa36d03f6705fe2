package authapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
)

// User-facing failure messages. Wrong credentials get a precise message, any
// other failure gets a retry prompt without leaking transport details.
const (
	MsgInvalidCredentials = "Nom d'utilisateur ou mot de passe incorrect"
	MsgLoginUnavailable   = "Connexion impossible, veuillez réessayer"
)

// Client talks to the central auth backend.
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

// Login exchanges credentials for a token. The backend expects a form-encoded
// body, not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%s", MsgLoginUnavailable)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("AuthApi", "Login request failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%s", MsgLoginUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%s", MsgInvalidCredentials)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("AuthApi", "Login returned unexpected status", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("%s", MsgLoginUnavailable)
	}

	var out dto.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s", MsgLoginUnavailable)
	}
	if out.AccessToken == "" {
		return nil, fmt.Errorf("%s", MsgLoginUnavailable)
	}
	return &out, nil
}
