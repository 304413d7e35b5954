// Package corpus provides line-numbered error reporting for the
// wordlist and cleartext training files.
package corpus

import "fmt"

// LineError reports a problem found at a specific line of a specific
// training file. The readers use it to wrap a scan failure with the
// line at which reading stopped; records too short to carry a fragment
// are skipped silently and produce no LineError.
type LineError struct {
	File    string
	Line    int
	Message string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
}

// NewLineError builds a LineError for the given file and 1-based line
// number.
func NewLineError(file string, line int, format string, args ...any) *LineError {
	return &LineError{File: file, Line: line, Message: fmt.Sprintf(format, args...)}
}
