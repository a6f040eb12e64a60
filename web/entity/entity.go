// Package entity defines the response shapes used by the web layer.
package entity

// Msg is the standard API response envelope.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"message,omitempty"`
	Obj     any    `json:"obj,omitempty"`
}

// LoginResult is the login response. An authentication failure is a normal
// 200 response with Success false, not an HTTP error.
type LoginResult struct {
	Success bool   `json:"success"`
	Role    string `json:"role,omitempty"`
	Message string `json:"message"`
}

// CreateResult reports the id assigned to a newly created record.
type CreateResult struct {
	Success bool `json:"success"`
	Id      int  `json:"id"`
}
