package models

import "time"

// Session is an authenticated API session. It is created by login,
// passed to every authenticated call and destroyed by logout.
type Session struct {
	Token       string      // Auth token sent as X-Auth-Token
	Environment Environment // Environment the token was issued for
	LoginID     string      // Login ID the token belongs to
	CreatedAt   time.Time   // Local time the session was opened
}

// AuthenticateRequest represents the form body of the authenticate call
// swagger:model AuthenticateRequest
type AuthenticateRequest struct {
	// Login ID
	// required: true
	// example: development@currencycloud.com
	LoginID string `json:"login_id" form:"login_id"`

	// API key
	// required: true
	// example: deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef
	APIKey string `json:"api_key" form:"api_key"`
}

// AuthenticateResponse represents a successful authenticate response
// swagger:model AuthenticateResponse
type AuthenticateResponse struct {
	// Auth token
	// example: 4df5b3e5882a412f148dcd08fa4e5b73
	AuthToken string `json:"auth_token"`
}

// CloseSessionResponse is the empty body returned by close_session
// swagger:model CloseSessionResponse
type CloseSessionResponse struct{}
