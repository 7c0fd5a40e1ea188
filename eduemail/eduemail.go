// Package eduemail validates that a string is a syntactically plausible
// email address whose domain ends in the .edu top-level domain.
//
// The check runs in two independent stages: a general email-shape pattern
// anchored over the whole string, then a case-insensitive .edu suffix match.
// A string can pass the first stage and still fail the second (e.g. a .com
// address), in which case the more specific suffix message is reported.
//
// Validation failure is an expected outcome, not an error: Validate returns
// a Result carrying both the boolean verdict and a human-readable message,
// so callers decide how (or whether) to present it.
package eduemail

import "regexp"

var (
	// emailPattern is the general shape check: local part, '@', domain,
	// and a final TLD of two or more letters. Anchored at both ends, so
	// the whole candidate must match.
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// eduSuffix matches a literal ".edu" at the end of the string only.
	// Case-insensitive, so "SCHOOL.EDU" passes and "b.education" does not.
	eduSuffix = regexp.MustCompile(`(?i)\.edu$`)
)

// Result is the outcome of validating one candidate string.
type Result struct {
	// Valid reports whether the candidate passed both stages.
	Valid bool

	// Message is a human-readable diagnostic suitable for console output.
	Message string
}

// Diagnostic messages returned in Result.Message.
const (
	MsgEmpty         = "Empty email address."
	MsgInvalidFormat = "Invalid email format."
	MsgNotEdu        = "Email does not end with .edu."
	MsgValid         = "Valid .edu email."
)

// Validate checks candidate against the two pattern stages and returns the
// verdict with a diagnostic message. It is pure and safe for concurrent use.
func Validate(candidate string) Result {
	if candidate == "" {
		return Result{Valid: false, Message: MsgEmpty}
	}
	if !emailPattern.MatchString(candidate) {
		return Result{Valid: false, Message: MsgInvalidFormat}
	}
	if !eduSuffix.MatchString(candidate) {
		return Result{Valid: false, Message: MsgNotEdu}
	}
	return Result{Valid: true, Message: MsgValid}
}

// IsValid is a convenience wrapper for callers that only need the verdict.
func IsValid(candidate string) bool {
	return Validate(candidate).Valid
}
