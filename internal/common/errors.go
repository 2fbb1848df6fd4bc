// Package common defines sentinel errors and constants shared by the
// protocol, server and client layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Protocol errors. All of them are answered with the same response code
	// so that a caller cannot tell a stale timestamp from a wrong key.
	ErrAuth           = errors.New("authentication failed")
	ErrMalformedFrame = errors.New("malformed frame")
	ErrTimestamp      = errors.New("timestamp out of window")
	ErrAuthCode       = errors.New("auth code mismatch")

	// Command errors.
	ErrInvalidCommand = errors.New("invalid command")

	// Remote manager errors.
	ErrRemoteRejected = errors.New("remote rejected operation")

	// Reconciler errors.
	ErrTickInProgress = errors.New("reconciliation tick already in progress")
)
