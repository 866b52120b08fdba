package api

// --- Jira query ---

type QueryRequest struct {
	Query string `json:"query"`
}

type QueryResponse struct {
	Success bool        `json:"success"`
	Data    *SearchData `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SearchData is the issue search payload returned for a free-text query.
type SearchData struct {
	Total  int     `json:"total"`
	Issues []Issue `json:"issues"`
}

type Issue struct {
	Key    string      `json:"key"`
	Fields IssueFields `json:"fields"`
}

type IssueFields struct {
	Summary     string      `json:"summary"`
	Status      NamedField  `json:"status"`
	IssueType   NamedField  `json:"issuetype"`
	Assignee    *Assignee   `json:"assignee,omitempty"`
	Priority    *NamedField `json:"priority,omitempty"`
	Created     string      `json:"created"`
	Description string      `json:"description,omitempty"`
}

type NamedField struct {
	Name string `json:"name"`
}

type Assignee struct {
	DisplayName string `json:"displayName"`
}

// --- Order validation ---

type ValidateOrderRequest struct {
	OrderNumber  string `json:"order_number"`
	LocationCode string `json:"location_code"`
}

// OrderData maps raw column names to scalar values. Keys are not statically
// known; arbitrary domain fields arrive from the backend.
type OrderData map[string]any

type ValidationResult struct {
	Success         bool             `json:"success"`
	OrderNumber     string           `json:"order_number"`
	LocationCode    string           `json:"location_code"`
	IsValid         bool             `json:"is_valid"`
	MandatoryFields []MandatoryField `json:"mandatory_fields,omitempty"`
	MissingFields   []string         `json:"missing_fields,omitempty"`
	OrderData       OrderData        `json:"order_data,omitempty"`
	Error           string           `json:"error,omitempty"`
}

type MandatoryField struct {
	FieldName    string `json:"field_name"`
	FieldValue   any    `json:"field_value,omitempty"`
	IsValid      bool   `json:"is_valid"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// --- Security analysis ---

type SecurityAnalysisRequest struct {
	IssueKey string `json:"issue_key"`
}

type SecurityResult struct {
	Success         bool     `json:"success"`
	IssueKey        string   `json:"issue_key"`
	RiskLevel       string   `json:"risk_level,omitempty"`
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// --- Diagnostics ---

type HealthStatus struct {
	Status           string          `json:"status"`
	JiraConfigured   bool            `json:"jira_configured"`
	OpenAIConfigured bool            `json:"openai_configured"`
	OracleConfigured bool            `json:"oracle_configured"`
	Services         map[string]bool `json:"services"`
}

// ConnectionTest is one entry of the /api/test-connections result.
type ConnectionTest struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ConnectionsStatus map[string]ConnectionTest
