package scope

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateTest    = errors.New("a test with this name was already declared")
	ErrBlankName        = errors.New("name is blank")
	ErrNilBody          = errors.New("test body is nil")
	ErrSealed           = errors.New("declaration made after the suite was built")
	ErrDeclarationPanic = errors.New("panic while declaring tests")
	ErrUnknownTest      = errors.New("no such test")
)

// DeclarationError is returned by Describe when the test tree cannot be built.
type DeclarationError struct {
	Suite string
	Test  string // empty if the error is not about a particular test
	Err   error
}

func (e *DeclarationError) Error() string {
	if e.Test == "" {
		return fmt.Sprintf("suite %q: %s", e.Suite, e.Err)
	}
	return fmt.Sprintf("suite %q, test %q: %s", e.Suite, e.Test, e.Err)
}

func (e *DeclarationError) Unwrap() error { return e.Err }

// HookError is a failure raised while one of a context's hooks was running.
type HookError struct {
	Context string
	Kind    HookKind
	Err     error
}

func (e *HookError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s in context %q: %s", e.Kind, e.Context, e.Err)
}

func (e *HookError) Unwrap() error { return e.Err }

// PanicError is a panic from a hook or test body that was not a test failure.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("unexpected panic: %+v", e.Value)
}

// Unwrap returns the panic value if it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
