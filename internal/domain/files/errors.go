package files

import "errors"

var (
	// ErrMissingFile indicates the multipart request carried no file part.
	ErrMissingFile = errors.New("no file provided")

	// ErrUnknownType indicates the declared category is not contract/worklog/license.
	ErrUnknownType = errors.New("invalid file type")

	// ErrUnsupportedFormat indicates the extension does not match the declared category.
	ErrUnsupportedFormat = errors.New("invalid file format for type")

	// ErrUnknownDemoType indicates an unrecognized demo fixture name.
	ErrUnknownDemoType = errors.New("invalid demo type")

	// ErrTooLarge indicates the upload exceeded the configured size cap.
	ErrTooLarge = errors.New("file too large")

	// ErrNotFound indicates the referenced file id does not exist.
	ErrNotFound = errors.New("file not found")
)
