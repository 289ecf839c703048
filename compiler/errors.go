package compiler

import (
	"errors"
	"fmt"
)

// SyntaxError reports a malformed expression: unbalanced parens, an empty
// operand, or an operator with nothing to its right.
type SyntaxError struct {
	Expr   string
	Reason string
}

func newSyntaxError(expr, reason string) *SyntaxError {
	return &SyntaxError{Expr: expr, Reason: reason}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error in %q: %s", e.Expr, e.Reason)
}

func (e *SyntaxError) Is(target error) bool {
	var other *SyntaxError
	return errors.As(target, &other)
}

// UnresolvedSymbolError reports a variable or function name with no entry
// in the symbol table handed to Resolve.
type UnresolvedSymbolError struct {
	Name string
}

func newUnresolvedSymbolError(name string) *UnresolvedSymbolError {
	return &UnresolvedSymbolError{Name: name}
}

func (e *UnresolvedSymbolError) Error() string {
	return fmt.Sprintf("unresolved symbol: %s", e.Name)
}

func (e *UnresolvedSymbolError) Is(target error) bool {
	var other *UnresolvedSymbolError
	return errors.As(target, &other)
}

// ArityError reports a function call with no arguments or with more
// than four, the limit imposed by the AAPCS register-argument window
// this compiler targets.
type ArityError struct {
	Name  string
	Count int
}

func newArityError(name string, count int) *ArityError {
	return &ArityError{Name: name, Count: count}
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("call to %s has %d arguments, limit is %d", e.Name, e.Count, maxCallArgs)
}

func (e *ArityError) Is(target error) bool {
	var other *ArityError
	return errors.As(target, &other)
}

// ErrOverflow is defined for API completeness with the error kinds
// described for this compiler, but is never returned by default:
// constant parsing truncates silently to 32 bits, matching the
// documented overflow policy. Callers that want strict arithmetic can
// check for it after implementing their own range validation upstream.
var ErrOverflow = errors.New("constant value overflows 32 bits")
