// Package jsonpath implements the slopjson address notation: a small
// JSONPath-like language that names exactly one node of a document.
//
// Grammar:
//
//	path      := '$' component*
//	component := '.' identifier-chars+
//	           | '[' '"' escaped-key '"' ']'
//	           | '[' digit+ ']'
//
// A dot component runs until the next '.' or '['. Inside a quoted key a
// backslash escapes the following character. Bracketed digits select an
// array element. "$" alone is the document root.
//
// Paths produced by BuildObjectPath and BuildArrayPath always parse back to
// the segments they were built from.
package jsonpath
