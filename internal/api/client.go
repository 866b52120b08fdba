package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"jira-assistant-cli/internal/config"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	debug      bool
}

func NewClient(cfg *config.Config) *Client {
	return NewClientWithServer(cfg.Server)
}

func NewClientWithServer(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// SetDebug enables request/response dumps on stderr.
func (c *Client) SetDebug(on bool) {
	c.debug = on
}

func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
}

// Query sends a free-text Jira query and returns the issue search payload.
func (c *Client) Query(query string) (*SearchData, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrBlankInput
	}
	var resp QueryResponse
	if err := c.doJSON("POST", "/api/query", QueryRequest{Query: query}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &AppError{Message: resp.Error}
	}
	if resp.Data == nil {
		return &SearchData{}, nil
	}
	return resp.Data, nil
}

// ValidateOrder checks an order against the backend's mandatory-field rules.
// The location code is upper-cased before send, matching the backend contract.
func (c *Client) ValidateOrder(orderNumber, locationCode string) (*ValidationResult, error) {
	if strings.TrimSpace(orderNumber) == "" || strings.TrimSpace(locationCode) == "" {
		return nil, ErrBlankInput
	}
	reqBody := ValidateOrderRequest{
		OrderNumber:  orderNumber,
		LocationCode: strings.ToUpper(locationCode),
	}
	var resp ValidationResult
	if err := c.doJSON("POST", "/api/validate-order", reqBody, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &AppError{Message: resp.Error}
	}
	return &resp, nil
}

// AnalyzeSecurity runs a security impact analysis for one issue key.
// The issue key is upper-cased before send.
func (c *Client) AnalyzeSecurity(issueKey string) (*SecurityResult, error) {
	if strings.TrimSpace(issueKey) == "" {
		return nil, ErrBlankInput
	}
	reqBody := SecurityAnalysisRequest{
		IssueKey: strings.ToUpper(issueKey),
	}
	var resp SecurityResult
	if err := c.doJSON("POST", "/api/security-analysis", reqBody, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &AppError{Message: resp.Error}
	}
	return &resp, nil
}

// Health fetches the backend health summary.
func (c *Client) Health() (*HealthStatus, error) {
	var resp HealthStatus
	if err := c.doJSON("GET", "/api/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TestConnections asks the backend to probe its own data sources.
func (c *Client) TestConnections() (ConnectionsStatus, error) {
	var resp ConnectionsStatus
	if err := c.doJSON("GET", "/api/test-connections", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// --- Generic JSON helper ---

func (c *Client) doJSON(method, path string, reqBody interface{}, result interface{}) error {
	var bodyReader io.Reader
	hasBody := reqBody != nil && method != "GET"
	if hasBody {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return &TransportError{Op: "marshaling request", Err: err}
		}
		if c.debug {
			fmt.Fprintf(os.Stderr, "[debug] %s %s %s\n", method, path, data)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return &TransportError{Op: "creating request", Err: err}
	}
	c.setHeaders(req, hasBody)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "sending request", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "reading response", Err: err}
	}
	if c.debug {
		fmt.Fprintf(os.Stderr, "[debug] %d %s\n", resp.StatusCode, respBody)
	}

	// The backend reports failures inside the JSON envelope even on non-2xx
	// statuses, so try to decode before treating the status as fatal.
	if result != nil {
		if jsonErr := json.Unmarshal(respBody, result); jsonErr != nil {
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return &TransportError{Op: "request failed",
					Err: fmt.Errorf("server returned %d: %s", resp.StatusCode, respBody)}
			}
			return &TransportError{Op: "parsing response", Err: jsonErr}
		}
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{Op: "request failed",
			Err: fmt.Errorf("server returned %d: %s", resp.StatusCode, respBody)}
	}
	return nil
}
