package mlx

import (
	"errors"
	"fmt"
)

// Kind classifies why Init failed. A Kind is itself an error, so callers can
// test with errors.Is(err, mlx.ShaderFailure).
type Kind int

const (
	InvalidArgument Kind = iota + 1
	WindowingFailure
	OutOfMemory
	WindowCreateFailure
	FunctionLoadFailure
	ShaderFailure
)

var kindMessages = map[Kind]string{
	InvalidArgument:     "invalid argument",
	WindowingFailure:    "failed to initialize the windowing subsystem",
	OutOfMemory:         "failed to allocate memory",
	WindowCreateFailure: "failed to create window",
	FunctionLoadFailure: "failed to load OpenGL function pointers",
	ShaderFailure:       "failed to compile or link shaders",
}

var kindLabels = map[Kind]string{
	InvalidArgument:     "invalid_argument",
	WindowingFailure:    "windowing",
	OutOfMemory:         "out_of_memory",
	WindowCreateFailure: "window_create",
	FunctionLoadFailure: "function_load",
	ShaderFailure:       "shader",
}

func (k Kind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

func (k Kind) Error() string {
	return k.String()
}

// Label is the short name used as a metrics label.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return "unknown"
}

// Error is returned by Init. Op names the step that failed and Err holds the
// cause reported by the platform, if any.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the Kind of an error returned by Init, or 0 if err did not
// come from Init.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
