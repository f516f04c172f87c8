// Package repository contains data access layer abstractions.
// Implementations live in subpackages (mongodb) inside this directory.
package repository

import "errors"

var (
	// ErrNotFound is returned when no document matches the given identifier or filter.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID is returned when an identifier is not a well-formed document id.
	ErrInvalidID = errors.New("invalid id")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
