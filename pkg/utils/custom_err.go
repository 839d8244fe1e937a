package utils

import "errors"

var (
	ErrDatabaseError       = errors.New("database error")
	ErrSessionNotFound     = errors.New("questionnaire session not found")
	ErrArtifactNotFound    = errors.New("artifact not found")
	ErrVentureNotFound     = errors.New("venture not found")
	ErrVentureExists       = errors.New("venture already exists")
	ErrModuleLocked        = errors.New("module locked until foundational modules are complete")
	ErrInvalidArtifactID   = errors.New("invalid artifact id")
	ErrInvalidStatus       = errors.New("invalid artifact status")
	ErrInvalidContent      = errors.New("artifact content must be a JSON object")
	ErrInvalidConversation = errors.New("conversation must end with a user message")

	// ErrCollaboratorFailure means saving the artifact failed; the session
	// was left as it was before the request.
	ErrCollaboratorFailure = errors.New("artifact persistence failed")

	ErrCompletionNotConfigured = errors.New("completion service not configured")
	ErrCompletionFailed        = errors.New("completion request failed")
)
