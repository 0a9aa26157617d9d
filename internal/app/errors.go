package app

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrSessionNotFound   = errors.New("session not found")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidCredential = errors.New("invalid username or password")
	ErrMessageEnqueue    = errors.New("message enqueue failed")
)
