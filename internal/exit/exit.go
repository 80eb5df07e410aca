// Package exit carries the message and process status a command ends with.
package exit

import (
	"fmt"
	"io"
	"os"
)

// Process exit codes.
const (
	CodeOK       = 0
	CodeNotFound = 1 // the path, search or query selected nothing
	CodeError    = 2 // bad usage, unreadable input or a malformed expression
)

// Result is a terminal message, where it goes and the status to exit with.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the message to Output.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// To redirects the message to w.
func (r *Result) To(w io.Writer) *Result {
	r.Output = w
	return r
}

// Success is a stdout message with CodeOK, used for help text.
func Success(message string) *Result {
	return &Result{Output: os.Stdout, ExitCode: CodeOK, Message: message}
}

// NotFound is a stderr notice with CodeNotFound.
func NotFound(format string, a ...any) *Result {
	return &Result{Output: os.Stderr, ExitCode: CodeNotFound, Message: fmt.Sprintf(format, a...)}
}

// Error is a stderr message with CodeError.
func Error(message string) *Result {
	return &Result{Output: os.Stderr, ExitCode: CodeError, Message: message}
}

// Errorf formats an Error.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}
