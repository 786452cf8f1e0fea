// Package apperrors provides sentinel errors and exit-code mapping for the
// shardctl command line tool.
package apperrors

import "errors"

// Kind classifies an error into one of the categories the CLI surface
// reports distinct exit codes for.
type Kind int

const (
	// KindUnknown is the zero value, used for errors not raised by this
	// package (e.g. a bare os error that never got wrapped).
	KindUnknown Kind = iota
	KindArgError
	KindSecretTooLarge
	KindRandomFailure
	KindShareParseError
	KindChecksumMismatch
	KindIncompatibleShares
	KindNotEnoughShares
	KindIoError
)

// Argument and usage errors.
var (
	// ErrArg is returned for malformed or contradictory CLI arguments
	// (e.g. a missing or unparsable K,N pair, or K outside 1..N).
	ErrArg = errors.New("argument error")
)

// Encoding errors.
var (
	// ErrSecretTooLarge is returned when the secret read from stdin
	// exceeds the maximum supported size.
	ErrSecretTooLarge = errors.New("secret too large")

	// ErrRandomFailure is returned when the random source used to build
	// polynomial coefficients fails to produce bytes.
	ErrRandomFailure = errors.New("random source failure")
)

// Decoding errors.
var (
	// ErrShareParse is returned when a share line does not match the
	// expected grammar.
	ErrShareParse = errors.New("share parse error")

	// ErrChecksumMismatch is returned when a share's CRC-24 checksum does
	// not match its computed value.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrIncompatibleShares is returned when accepted shares disagree on
	// K or on secret-byte length.
	ErrIncompatibleShares = errors.New("incompatible shares")

	// ErrNotEnoughShares is returned when input ends before K distinct
	// shares have been accumulated.
	ErrNotEnoughShares = errors.New("not enough shares provided")
)

// I/O errors.
var (
	// ErrIO wraps failures reading from stdin or writing to stdout.
	ErrIO = errors.New("i/o error")
)

// kindOf maps a sentinel to its Kind. Wrapped errors are matched with
// errors.Is, so a caller may wrap any of these with additional context via
// fmt.Errorf("...: %w", ...) without losing the classification.
func kindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrArg):
		return KindArgError
	case errors.Is(err, ErrSecretTooLarge):
		return KindSecretTooLarge
	case errors.Is(err, ErrRandomFailure):
		return KindRandomFailure
	case errors.Is(err, ErrShareParse):
		return KindShareParseError
	case errors.Is(err, ErrChecksumMismatch):
		return KindChecksumMismatch
	case errors.Is(err, ErrIncompatibleShares):
		return KindIncompatibleShares
	case errors.Is(err, ErrNotEnoughShares):
		return KindNotEnoughShares
	case errors.Is(err, ErrIO):
		return KindIoError
	default:
		return KindUnknown
	}
}

// exitCodes assigns a distinct, stable exit status per Kind so callers of
// the CLI can discriminate failure modes without parsing stderr text.
var exitCodes = map[Kind]int{
	KindUnknown:            1,
	KindArgError:           2,
	KindSecretTooLarge:     3,
	KindRandomFailure:      4,
	KindShareParseError:    5,
	KindChecksumMismatch:   6,
	KindIncompatibleShares: 7,
	KindNotEnoughShares:    8,
	KindIoError:            9,
}

// ExitCode returns the process exit code that should be used for err. A nil
// err yields 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return exitCodes[kindOf(err)]
}

// KindOf exposes the classification of err for callers that want to branch
// on it directly (e.g. logging a different message per kind).
func KindOf(err error) Kind {
	return kindOf(err)
}
