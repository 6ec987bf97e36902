package assertions

import (
	"fmt"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/constructors"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/format"
	"github.com/pkg/errors"
)

var (
	// ErrAssertionFailed is matched by every failure raised by a check.
	ErrAssertionFailed = errors.New("assertion failed")
	// ErrNullSubject is matched by the failures of checks run on a nil subject.
	ErrNullSubject = errors.New("nil subject")
	// ErrContractViolation is returned when a provider produces something that is not a
	// usable wrapper.
	ErrContractViolation = errors.New("wrapper contract violated")
	// ErrNoSuitableConstructor is returned when a wrapper cannot be constructed for a subject.
	ErrNoSuitableConstructor = constructors.ErrNoSuitableConstructor
)

type Kind int

const (
	KindAssertion Kind = iota
	KindNullSubject
)

func (k Kind) String() string {
	if k == KindNullSubject {
		return "nil subject"
	}
	return "assertion"
}

// Failure is the signal a check raises when its expectation is not met.
type Failure struct {
	Kind    Kind
	Message string
}

var _ error = &Failure{}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() []error {
	if f.Kind == KindNullSubject {
		return []error{ErrNullSubject, ErrAssertionFailed}
	}
	return []error{ErrAssertionFailed}
}

// Failf builds an assertion failure.
func Failf(msg string, args ...any) *Failure {
	return NewFailure(fmt.Sprintf(msg, args...))
}

// NewFailure builds an assertion failure with the message as is.
func NewFailure(msg string) *Failure {
	return &Failure{Kind: KindAssertion, Message: msg}
}

// Fail raises an assertion failure from within a check.
func Fail(msg string, args ...any) {
	panic(Failf(msg, args...))
}

func nullSubject() *Failure {
	return &Failure{Kind: KindNullSubject, Message: format.ActualIsNull()}
}

func toFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return NewFailure(err.Error())
}

// capture runs the check and returns the failure it raised, if any. Anything else the check
// panics with is not a failure and is propagated.
func capture(check func()) (failure *Failure) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Failure)
			if !ok {
				panic(r)
			}
			failure = f
		}
	}()
	check()
	return nil
}
