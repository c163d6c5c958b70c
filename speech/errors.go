package speech

import "errors"

// Common errors for the speech pipeline.
var (
	// Engine errors
	ErrEmptyText          = errors.New("text cannot be empty")
	ErrTextTooLong        = errors.New("text exceeds the engine limit")
	ErrEngineClosed       = errors.New("engine has been closed")
	ErrEngineNotAvailable = errors.New("synthesis engine is not available")
	ErrMissingAPIKey      = errors.New("synthesis API key is not configured")

	// Configuration errors
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrUnknownEngine  = errors.New("unknown synthesis engine")
	ErrInvalidVoiceID = errors.New("voice id cannot be empty")
)
