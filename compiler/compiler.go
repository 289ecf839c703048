// Package compiler turns a textual arithmetic expression over integer
// constants, named variables, and named functions into a self-contained
// ARM A32 subroutine. The pipeline is strictly linear: parse, resolve,
// emit, encode. Nothing is shared between calls and nothing is retained
// past a single Compile.
package compiler

import "fmt"

// Compiler holds no state of its own; it exists as a named entry point
// so callers have somewhere to hang options later.
type Compiler struct{}

// New creates a new Compiler.
func New() *Compiler {
	return &Compiler{}
}

// Compile parses expr, resolves every free name against symbols, emits
// a pseudo-instruction stream, and encodes it to machine code. On any
// error nothing is returned; there is no partial output.
func (c *Compiler) Compile(expr string, symbols SymbolTable) ([]byte, error) {
	root, err := Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}

	if err := Resolve(root, symbols); err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}

	instrs, err := emitProgram(root)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}

	return Encode(instrs), nil
}

// CompileInto behaves like Compile but writes into a caller-provided
// buffer instead of allocating, returning the number of bytes written.
// It fails if the buffer is smaller than the encoded output; the output
// buffer is left untouched in that case, so a failed compile never
// leaves a caller-owned buffer half-written.
func (c *Compiler) CompileInto(expr string, symbols SymbolTable, out []byte) (int, error) {
	code, err := c.Compile(expr, symbols)
	if err != nil {
		return 0, err
	}
	if len(out) < len(code) {
		return 0, fmt.Errorf("compile %q: output buffer too small: need %d bytes, have %d", expr, len(code), len(out))
	}
	copy(out, code)
	return len(code), nil
}

// CompileForInspection parses and emits expr without resolving any
// free name, stamping every Variable and Function address with the
// placeholderAddress sentinel. The
// result is not runnable — it exists so a caller can preview the shape
// of the emitted instruction stream (word count, trampoline placement)
// before a symbol table exists, typically by feeding it to the disasm
// package.
func (c *Compiler) CompileForInspection(expr string) ([]byte, error) {
	root, err := Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}
	resolvePlaceholder(root)

	instrs, err := emitProgram(root)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}

	return Encode(instrs), nil
}

// SizeHint returns a safe upper bound, in bytes, for the buffer a
// compile of expr will need, without resolving symbols or emitting
// code. It follows the conservative formula from the resource model:
// 12 + 28 bytes per tree node.
func SizeHint(expr string) (int, error) {
	root, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return 12 + 28*countNodes(root), nil
}
