package core

import (
	"errors"
)

// Sentinel errors for the failure classes the recruitment workflow
// distinguishes. Callers wrap these with fmt.Errorf("…: %w", err) and
// check with errors.Is. Permission denials and relay correlation misses
// never surface as errors: the former become user-facing replies, the
// latter degrade to forward-as-new or a manual-cleanup notice.
var (
	// ErrNotConfigured means a required guild, channel purpose, role or
	// template is missing. User-facing and actionable; no state mutated.
	ErrNotConfigured = errors.New("not configured")

	// ErrNotFound means a referenced entity was absent when it was
	// expected to exist.
	ErrNotFound = errors.New("not found")

	// ErrDeliveryFailure means the Discord API rejected an action,
	// typically a role-hierarchy violation.
	ErrDeliveryFailure = errors.New("delivery failure")
)
