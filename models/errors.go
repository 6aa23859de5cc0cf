package models

import (
	"fmt"
	"sort"
	"strings"
)

// ConfigurationError means the store credentials could not be resolved.
// The store provider stays uninitialized, so the next call retries.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ValidationError carries per-field messages for a rejected payload.
// It is always produced before any network call is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, ", ")
}

// PersistenceError is a failed insert, carrying whatever the row store
// reported. Message is always set; Code, Hint and Details depend on the
// backend.
type PersistenceError struct {
	Message string
	Code    string
	Hint    string
	Details string
}

func (e *PersistenceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("persistence error [%s]: %s", e.Code, e.Message)
	}
	return "persistence error: " + e.Message
}
