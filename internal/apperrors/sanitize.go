package apperrors

import "regexp"

// sensitivePatterns matches the parts of an error string that could leak
// share or secret material: base64 payload/checksum segments and the
// K-x-data[-crc] line shape itself. Unlike a generic secret scanner, this is
// scoped to the one wire format this tool ever produces or consumes.
var sensitivePatterns = []*regexp.Regexp{
	// A full share line, or a fragment of one, embedded in an error string.
	regexp.MustCompile(`\b[0-9]{1,3}-[0-9]{1,3}-[A-Za-z0-9+/]+(-[A-Za-z0-9+/]{1,4})?\b`),

	// Bare base64 runs of meaningful length (share payloads are rarely
	// shorter than this once encoded).
	regexp.MustCompile(`\b[A-Za-z0-9+/]{16,}\b`),
}

// SanitizeString redacts share-shaped and base64-shaped substrings from s so
// it is safe to place in a log line or stderr message.
func SanitizeString(s string) string {
	result := s
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, "[REDACTED]")
	}
	return result
}

// SanitizeError returns a redacted form of err's message. A nil err yields
// the empty string.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeString(err.Error())
}
