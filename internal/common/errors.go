// Package common defines sentinel errors shared across FounderStack
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level no-ops. The snapshot returned alongside is unchanged.
	ErrorNotFound        = errors.New("not found")
	ErrNoCompanySelected = errors.New("no company selected")

	// Intent decoding errors.
	ErrUnknownKind = errors.New("unknown kind")
	ErrUnknownOp   = errors.New("unknown operation")
	ErrWrongPatch  = errors.New("patch does not match kind")

	// Persistence errors, logged by the adapter rather than returned to the view.
	ErrCorruptState = errors.New("corrupt persisted state")
)
