package errs

import "strings"

// sanitize flattens multi-line values into a single line so error messages
// stay log-friendly. Carriage returns and newlines are replaced with spaces.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
