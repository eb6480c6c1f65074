// Package perr holds the grammar-construction error channel described
// in spec.md §7: ArgumentError, RedefinedProductionError,
// UndefinedProductionError, CompletedParserError, and the ParserError
// promoted from a parse Failure when its value is forced.
//
// These are the library's "raised immediately" errors, distinct from
// ordinary in-band parse Failures. They are adapted from the shape of
// oleiade/gomme's stray combinators-package Error type (Expected list,
// Err wrapping, IsFatal), split here into the two channels the spec
// requires instead of gomme's single fatal/non-fatal *Error.
package perr

import "fmt"

// ArgumentError reports an invalid argument to a parser constructor,
// e.g. an inverted Range, an empty AnyIn or NewSet, or a malformed
// Pattern.
type ArgumentError struct {
	Func    string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("parsekit: %s: %s", e.Func, e.Message)
}

// NewArgumentError builds an ArgumentError attributed to the given
// constructor function name.
func NewArgumentError(fn, message string) *ArgumentError {
	return &ArgumentError{Func: fn, Message: message}
}

// RedefinedProductionError is raised by grammar.Composite.Def when a
// production name has already been defined.
type RedefinedProductionError struct {
	Name string
}

func (e *RedefinedProductionError) Error() string {
	return fmt.Sprintf("parsekit/grammar: production %q already defined", e.Name)
}

// UndefinedProductionError is raised by grammar.Composite.Ref (after
// completion), Redef, or Action when the named production was never
// Def-ed, or by completion when a forward reference is left dangling.
type UndefinedProductionError struct {
	Name string
}

func (e *UndefinedProductionError) Error() string {
	return fmt.Sprintf("parsekit/grammar: undefined production %q", e.Name)
}

// CompletedParserError is raised by Def, Redef, or Action called after
// the composite grammar has completed initialization.
type CompletedParserError struct {
	Name string
}

func (e *CompletedParserError) Error() string {
	return fmt.Sprintf("parsekit/grammar: grammar already completed, cannot redefine %q", e.Name)
}

// ParserError is the exception a Result's Failure is promoted to when
// a caller asks a Failure for its value (spec.md §7: "Retrieving value
// from a Failure raises a parse error"). It carries the original
// position and message rather than re-deriving them, so line/column
// can still be recovered against the original buffer.
type ParserError struct {
	Position int
	Message  string
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("parsekit: parse failed at position %d: %s", e.Position, e.Message)
}

// NewParserError builds a ParserError from a failure's position and
// message.
func NewParserError(position int, message string) *ParserError {
	return &ParserError{Position: position, Message: message}
}
