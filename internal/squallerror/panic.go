package squallerror

import "fmt"

// PanicError carries a recovered panic value and the stack of the goroutine
// that panicked.
type PanicError struct {
	any
	Stack []byte
}

func NewPanicError(any any, stack []byte) PanicError {
	return PanicError{
		any:   any,
		Stack: stack,
	}
}

// Value returns the recovered panic value.
func (pe PanicError) Value() any {
	return pe.any
}

func (pe PanicError) Error() string {
	return fmt.Sprintf("panic occurred: %v", pe.any)
}
