// Package errors implements the pipeline error taxonomy with per-kind
// classification and user-facing remediation.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure. Every component-level error is
// wrapped into one of these before crossing into the orchestrator.
type Kind int

const (
	// KindInvalidReference indicates an unparseable layout-source input.
	KindInvalidReference Kind = iota

	// KindMissingCredential indicates a required token is absent.
	KindMissingCredential

	// KindServiceError indicates a non-success response from a network
	// collaborator (Figma API or generative backend).
	KindServiceError

	// KindValidationRejected indicates synthesized output violated a
	// styling constraint.
	KindValidationRejected

	// KindAlreadyExists indicates the destination path is occupied.
	KindAlreadyExists

	// KindWriteCancelled indicates the user declined the write
	// confirmation. Silent, non-error termination.
	KindWriteCancelled
)

var kindNames = map[Kind]string{
	KindInvalidReference:   "invalid_reference",
	KindMissingCredential:  "missing_credential",
	KindServiceError:       "service_error",
	KindValidationRejected: "validation_rejected",
	KindAlreadyExists:      "already_exists",
	KindWriteCancelled:     "write_cancelled",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error wraps a failure with its kind classification.
type Error struct {
	Kind       Kind
	Message    string
	Underlying error

	// StatusCode carries the upstream HTTP status for service errors.
	StatusCode int

	// Input carries the offending user input for reference errors.
	Input string

	// Rule names the violated constraint for validation errors.
	Rule string

	// Path is the occupied destination for already-exists errors.
	Path string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is matches another *Error by kind.
func (e *Error) Is(target error) bool {
	var te *Error
	if errors.As(target, &te) {
		return e.Kind == te.Kind
	}
	return false
}

// KindOf extracts the kind from an error chain. The second return is
// false when the chain carries no classified error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// InvalidReference reports an unparseable layout-source reference.
func InvalidReference(input string) *Error {
	return &Error{
		Kind:    KindInvalidReference,
		Message: fmt.Sprintf("could not parse layout reference %q", input),
		Input:   input,
	}
}

// MissingCredential reports an absent token for the named service.
func MissingCredential(service string) *Error {
	return &Error{
		Kind:    KindMissingCredential,
		Message: fmt.Sprintf("no credential configured for %s", service),
	}
}

// ServiceError reports an upstream non-success response.
func ServiceError(service string, status int, msg string) *Error {
	return &Error{
		Kind:       KindServiceError,
		Message:    fmt.Sprintf("%s returned %d: %s", service, status, msg),
		StatusCode: status,
	}
}

// WrapService reports a transport or decode failure talking to a
// collaborator, keeping the same shape as an upstream rejection.
func WrapService(service string, err error) *Error {
	return &Error{
		Kind:       KindServiceError,
		Message:    fmt.Sprintf("%s request failed", service),
		Underlying: err,
	}
}

// ValidationRejected reports output that violated the named styling rule.
func ValidationRejected(rule, detail string) *Error {
	return &Error{
		Kind:    KindValidationRejected,
		Message: fmt.Sprintf("generated output rejected by rule %s: %s", rule, detail),
		Rule:    rule,
	}
}

// AlreadyExists reports an occupied destination path.
func AlreadyExists(path string) *Error {
	return &Error{
		Kind:    KindAlreadyExists,
		Message: fmt.Sprintf("refusing to overwrite existing file %s", path),
		Path:    path,
	}
}

// WriteCancelled reports a declined confirmation.
func WriteCancelled(path string) *Error {
	return &Error{
		Kind:    KindWriteCancelled,
		Message: fmt.Sprintf("write of %s cancelled", path),
		Path:    path,
	}
}

// Remediation returns the user-facing guidance for an error kind. The
// orchestrator performs no recovery itself; it only selects this text.
func Remediation(k Kind) string {
	switch k {
	case KindInvalidReference:
		return "Check the Figma URL or file key and try again."
	case KindMissingCredential:
		return "Set the missing token with `figgen auth set <service>` or the matching environment variable."
	case KindServiceError:
		return "The upstream service rejected the request. The response above is reported verbatim; it was not retried."
	case KindValidationRejected:
		return "The generated markup used a disallowed styling mechanism and was discarded. Re-run to generate again."
	case KindAlreadyExists:
		return "View the diff with --diff or pick a different file name with --name."
	case KindWriteCancelled:
		return ""
	default:
		return ""
	}
}
