/*
Package notx is an extensible notation subsystem for an interactive proof
assistant: it compiles user-declared surface syntax (infix operators, distfix
forms, bracket delimiters, and general notations) into matching parsing and
printing rules, immediately available within the declaring session.

Consists of subpackages:
  - cmd/notxsh: interactive shell demonstrating declarations and round-trip printing;
  - term: arena-backed model of resolved terms and metavariable substitution;
  - format: notation format tokenizer, symbol classifier, and precedence resolver;
  - grammar: grammar rule synthesizer, engine interface, and an in-memory engine;
  - print: print rule synthesizer, rule registry, and renderer;
  - pattern: macro pattern builder (elaborated skeleton with metavariable holes);
  - scope: notation/delimiter scope registry;
  - object: extension object lifecycle (load/open/cache/subst/export/classify);
  - declare: surface declaration forms driving the whole pipeline.

Typical usage is:

1. Create the process-wide state: a scope registry, a grammar engine (or the
bundled in-memory one), and a print registry, tied together by an
object.Adapter.

2. Create a declare.Declarator around the adapter and an elaborator.

3. Declare syntax: Infix, Distfix, Notation, Delimiter. Each declaration
compiles to one descriptor, is checked against the scope registry, and is
installed atomically into the grammar engine and the print registry.

4. Parse input through the engine and render terms through print.Renderer;
both directions use the same symbol sequence, so anything parsed through a
notation prints back through it without spurious parentheses.
*/
package notx

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	FormatErrors  = 1   // used by format
	GrammarErrors = 101 // used by grammar
	PrintErrors   = 201 // used by print
	PatternErrors = 301 // used by pattern
	ScopeErrors   = 401 // used by scope
	ObjectErrors  = 501 // used by object
	DeclareErrors = 601 // used by declare
)

// Error is the error type used by notx subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message.
	Message string
}

// New creates new Error structure.
func New(code int, msg string) *Error {
	return &Error{code, msg}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// Format creates Error structure.
// params will be added to error message using fmt.Sprintf function.
func Format(code int, msg string, params ...interface{}) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return New(code, msg)
}
