// Package errs defines the structured error type shared by every pipeline
// stage. Each error carries a kind tag identifying the failing stage, a
// human-readable message, and the wrapped cause with its stack.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindConfig    Kind = "config"
	KindExtract   Kind = "extract"
	KindTransform Kind = "transform"
	KindLoad      Kind = "load"
	KindPipeline  Kind = "pipeline"
)

// Error is the pipeline error type. Err is nil for leaf errors created with
// New; otherwise it holds the cause, stack-annotated so "%+v" prints the
// originating location.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Format forwards to the wrapped cause under "%+v" so stack traces captured
// at the fault site survive the wrapping.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') && e.Err != nil {
		fmt.Fprintf(s, "%s: %s: %+v", e.Kind, e.Msg, e.Err)
		return
	}
	fmt.Fprint(s, e.Error())
}

// New creates a leaf error of the given kind.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf is New with formatting.
func Newf(kind Kind, format string, args ...interface{}) error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap tags err with a kind and message. Returns nil when err is nil. The
// cause keeps (or gains) a stack trace for diagnostics.
func Wrap(kind Kind, msg string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*Error); !ok {
		err = errors.WithStack(err)
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the kind of the outermost *Error in err's chain, or ""
// when err is not a pipeline error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
