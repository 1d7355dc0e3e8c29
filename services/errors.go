package services

import "strings"

// ValidationError carries every violated field of a request at once, so the
// caller sees the full list instead of fixing one field per round-trip.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// NotFoundError means the referenced room or guest does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError means the request lost to current state, e.g. checking in
// to a room that is already occupied.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
