package requirements

import "errors"

var (
	// Validation failures. Detected locally, never sent to a collaborator.
	ErrFileTooLarge        = errors.New("too large")
	ErrUnsupportedType     = errors.New("unsupported type")
	ErrDescriptionRequired = errors.New("description required")
	ErrFileRequired        = errors.New("file required")

	// ErrUploadInFlight rejects an action while an upload for the same
	// owner is still unresolved. The attempt is not queued.
	ErrUploadInFlight = errors.New("wait for upload")

	// ErrAuthRequired signals the AwaitingAuth transition: the staged
	// form is kept and the caller must sign in before retrying.
	ErrAuthRequired = errors.New("sign in required")

	ErrNotFound = errors.New("requirement not found")
)
