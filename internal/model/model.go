// Package model contains domain models shared by the HTTP, service and repository layers.
// Models carry no persistence tags; identifiers are exposed as plain strings.
package model

// Article status values with special meaning. Any other string is stored as-is.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	// StatusAll is a list filter value that disables status filtering.
	StatusAll = "all"
)

// Defaults applied at the boundary when the client omits a field.
const (
	DefaultLanguage       = "en"
	DefaultUpdateCategory = "General"
)
