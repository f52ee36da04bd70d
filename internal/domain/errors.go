package domain

import "errors"

var (
	// ErrStatementNotFound is returned when the statement source does not exist
	ErrStatementNotFound = errors.New("statement not found")

	// ErrMissingColumn is returned when the statement header lacks a required column
	ErrMissingColumn = errors.New("required column missing")

	// ErrMissingCredentials is returned when a quote provider has no API key configured
	ErrMissingCredentials = errors.New("missing API credentials")

	// ErrQuoteUnavailable is returned when a provider has no quote for a symbol
	ErrQuoteUnavailable = errors.New("quote unavailable")
)
