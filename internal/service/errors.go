package service

import (
	"errors"
	"strings"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrNoRecipients      = errors.New("no recipients to broadcast to")
	ErrAlreadyDispatched = errors.New("moment broadcast is already in flight")
	ErrQueueFull         = errors.New("dispatch queue is full")
	ErrDispatcherStopped = errors.New("dispatcher is not running")
	ErrDispatcherRunning = errors.New("dispatcher is already running")
)

// ValidationError lists every problem found in a broadcast request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
