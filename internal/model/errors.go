package model

// ErrorKind classifies every failure the API can surface. The set is closed:
// httputil switches over it exhaustively when mapping to HTTP statuses, so a
// new kind without a mapping fails at review rather than at runtime.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
)

// Error is a domain failure with a stable, client-facing message.
// The well-known failures below are declared as sentinel values, so callers
// keep the usual errors.Is checks while handlers recover the kind with
// errors.As for status mapping.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = &Error{Kind: KindNotFound, Message: "user not found"}

	// ErrUsernameTaken is returned when registering a username that already
	// exists. The message mirrors the unique-index wording clients parse.
	ErrUsernameTaken = &Error{Kind: KindConflict, Message: "expected `username` to be unique"}

	// ErrInvalidCredentials is returned for a wrong password or an unknown
	// username; the two cases are deliberately indistinguishable.
	ErrInvalidCredentials = &Error{Kind: KindAuthentication, Message: "invalid username or password"}

	// ErrTokenMissing is returned when a protected route is called without a
	// bearer token. Absence is detected explicitly at the gate; it never
	// reaches a handler as a nil user dereference.
	ErrTokenMissing = &Error{Kind: KindAuthentication, Message: "token missing"}

	// ErrTokenInvalid covers bad signatures and malformed payloads.
	ErrTokenInvalid = &Error{Kind: KindAuthentication, Message: "invalid token"}

	// ErrTokenExpired is returned when the token's exp claim has passed.
	ErrTokenExpired = &Error{Kind: KindAuthentication, Message: "token expired"}

	// ErrBlogNotFound is returned when a blog cannot be found
	ErrBlogNotFound = &Error{Kind: KindNotFound, Message: "blog not found"}

	// ErrNotBlogOwner is returned when a user tries to modify a blog they do not own.
	ErrNotBlogOwner = &Error{Kind: KindAuthorization, Message: "you do not have permission to modify this blog"}

	// ErrMalformedID is returned when a path id does not parse.
	ErrMalformedID = &Error{Kind: KindValidation, Message: "malformatted id"}

	// ErrTitleOrURLMissing is returned when a blog is created without a title or url.
	ErrTitleOrURLMissing = &Error{Kind: KindValidation, Message: "title or url missing"}
)

// NewValidationError builds a validation failure with a per-field message.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}
