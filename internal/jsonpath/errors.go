package jsonpath

import "errors"

// ErrSyntax indicates a path does not match the address grammar.
var ErrSyntax = errors.New("jsonpath: syntax error")
