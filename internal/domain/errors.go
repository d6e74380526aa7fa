package domain

import "errors"

// Business-rule failures raised by the service layer. Storage failures
// are never translated into these; they surface to the caller as-is.
var (
	// ErrNotFound means the referenced post id does not exist.
	ErrNotFound = errors.New("post not found")

	// ErrTitleExists means a post with the same title already exists.
	ErrTitleExists = errors.New("post title already exists")

	// ErrAuthorNotFound means the acting author id does not resolve to a user.
	ErrAuthorNotFound = errors.New("author not found")
)
