package api

// AssistantAPI defines the interface for the backend client.
// *Client satisfies this interface. TUI and tests can use mock implementations.
type AssistantAPI interface {
	Query(query string) (*SearchData, error)
	ValidateOrder(orderNumber, locationCode string) (*ValidationResult, error)
	AnalyzeSecurity(issueKey string) (*SecurityResult, error)
	Health() (*HealthStatus, error)
	TestConnections() (ConnectionsStatus, error)
}

var _ AssistantAPI = (*Client)(nil)
