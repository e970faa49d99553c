package models

// Caller is the identity resolved from a verified bearer token.
type Caller struct {
	ID   string
	Role string
	Name string
}
