package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials indicates a failed login attempt. Unknown user,
// inactive user, and password mismatch all collapse into this one error so
// the caller cannot probe which usernames exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthenticated indicates a missing, malformed, or expired session
// token. Maps to HTTP 401.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden indicates a valid identity that lacks the required
// permission. Maps to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrUnbalancedEntry indicates a journal entry whose debit lines do not sum
// to its credit lines.
var ErrUnbalancedEntry = errors.New("debits must equal credits")
