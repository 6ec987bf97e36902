package assertions

import (
	"reflect"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/format"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// Wrapper is implemented by every struct embedding Abstract.
type Wrapper interface {
	wrapperCore() *core
}

// core is the part of Abstract that does not depend on its type parameters.
type core struct {
	t       AssertT
	subject any
	wired   bool
}

func (c *core) wrapperCore() *core {
	return c
}

// T returns the T the wrapper reports to: a *testing.T, a *Soft or anything else it was bound to.
func (c *core) T() AssertT {
	if c.t == nil {
		return unboundT{}
	}
	return c.t
}

// Run runs the check in the mode of the T the wrapper is bound to. A check signals that its
// expectation is not met by panicking with a *Failure, see Fail.
func (c *core) Run(check func()) {
	if c.t == nil {
		panic(errors.Wrap(ErrContractViolation, "the wrapper is not bound to a test, use Bind or one of the That functions"))
	}
	c.t.Helper()
	if i, ok := c.t.(interceptor); ok {
		i.Intercept(check)
		return
	}
	if f := capture(check); f != nil {
		c.t.Errorf("%s", f.Message)
		if fn, ok := c.t.(failNower); ok {
			fn.FailNow()
		}
	}
}

// Abstract is meant to be embedded into the wrapper structs. It holds the subject and provides
// the checks common to all the wrappers. Initialize it using the WireUp method.
//
//	type Assert struct {
//		assertions.Abstract[Assert, string]
//	}
//
//	func New(actual string) *Assert {
//		a := &Assert{}
//		a.WireUp(a, actual)
//		return a
//	}
type Abstract[Self any, T any] struct {
	core
	self        *Self
	actual      T
	representer func(T) string
}

// WireUp initializes the embedded struct with a pointer to "self", so that the fluent methods
// return the type of the "end user" wrapper, and with the subject the wrapper is bound to.
func (a *Abstract[Self, T]) WireUp(self *Self, actual T) {
	a.self = self
	a.actual = actual
	a.subject = any(actual)
	a.wired = true
}

func (a *Abstract[Self, T]) Self() *Self {
	return a.self
}

func (a *Abstract[Self, T]) Actual() T {
	return a.actual
}

// RepresentWith replaces the textual form of the subject used in the failure messages.
func (a *Abstract[Self, T]) RepresentWith(representer func(T) string) *Self {
	a.representer = representer
	return a.self
}

// Represent returns the textual form of the subject used in the failure messages.
func (a *Abstract[Self, T]) Represent() string {
	return a.represent(a.actual)
}

func (a *Abstract[Self, T]) represent(v T) string {
	if a.representer != nil && !isNil(any(v)) {
		return a.representer(v)
	}
	return format.Represent(v)
}

// Check verifies the subject is not nil and then runs the verification on it. A non-nil error
// returned by verify is the failure of the check.
func (a *Abstract[Self, T]) Check(verify func(actual T) error) *Self {
	a.T().Helper()
	a.Run(func() {
		if isNil(a.subject) {
			panic(nullSubject())
		}
		if err := verify(a.actual); err != nil {
			panic(toFailure(err))
		}
	})
	return a.self
}

// CheckNillable is Check for the verifications that accept a nil subject.
func (a *Abstract[Self, T]) CheckNillable(verify func(actual T) error) *Self {
	a.T().Helper()
	a.Run(func() {
		if err := verify(a.actual); err != nil {
			panic(toFailure(err))
		}
	})
	return a.self
}

func (a *Abstract[Self, T]) IsNil() *Self {
	a.T().Helper()
	return a.CheckNillable(func(actual T) error {
		if isNil(any(actual)) {
			return nil
		}
		return NewFailure(format.ShouldBeNil(a.Represent()))
	})
}

func (a *Abstract[Self, T]) IsNotNil() *Self {
	a.T().Helper()
	return a.Check(func(T) error {
		return nil
	})
}

func (a *Abstract[Self, T]) IsEqualTo(expected T) *Self {
	a.T().Helper()
	return a.CheckNillable(func(actual T) error {
		if assert.ObjectsAreEqual(expected, actual) {
			return nil
		}
		return NewFailure(format.ShouldBeEqual(a.Represent(), a.represent(expected)))
	})
}

func (a *Abstract[Self, T]) IsNotEqualTo(other T) *Self {
	a.T().Helper()
	return a.CheckNillable(func(actual T) error {
		if !assert.ObjectsAreEqual(other, actual) {
			return nil
		}
		return NewFailure(format.ShouldNotBeEqual(a.Represent(), a.represent(other)))
	})
}

// IsInstanceOf verifies the dynamic type of the subject is the type of the sample. A nil
// pointer to an interface type as the sample verifies the subject implements the interface.
func (a *Abstract[Self, T]) IsInstanceOf(sample any) *Self {
	a.T().Helper()
	expected := reflect.TypeOf(sample)
	return a.Check(func(actual T) error {
		if isInstanceOf(actual, expected) {
			return nil
		}
		return NewFailure(format.ShouldBeInstance(a.Represent(), typeName(expected), format.TypeName(actual)))
	})
}

func (a *Abstract[Self, T]) IsNotInstanceOf(sample any) *Self {
	a.T().Helper()
	unexpected := reflect.TypeOf(sample)
	return a.Check(func(actual T) error {
		if !isInstanceOf(actual, unexpected) {
			return nil
		}
		return NewFailure(format.ShouldNotBeInstance(a.Represent(), typeName(unexpected)))
	})
}

// Matches verifies the subject matches the predicate. The description names the predicate in
// the failure message.
func (a *Abstract[Self, T]) Matches(predicate func(T) bool, description string) *Self {
	a.T().Helper()
	return a.Check(func(actual T) error {
		if predicate(actual) {
			return nil
		}
		return NewFailure(format.ShouldSatisfy(a.Represent(), description))
	})
}

// Satisfies runs the requirements against the subject. The failures they report, collected in
// a session of their own, make up a single failure of the check.
func (a *Abstract[Self, T]) Satisfies(requirements func(t AssertT, actual T)) *Self {
	a.T().Helper()
	return a.Check(func(actual T) error {
		s := newSoft(nil)
		requirements(s, actual)
		if err := s.Err(); err != nil {
			return Failf("Expecting actual:\n  %s\nto satisfy all the requirements but:\n%s", a.Represent(), err.Error())
		}
		return nil
	})
}

func isInstanceOf(actual any, expected reflect.Type) bool {
	if expected == nil {
		return actual == nil
	}
	actualType := reflect.TypeOf(actual)
	if actualType == nil {
		return false
	}
	if expected.Kind() == reflect.Pointer && expected.Elem().Kind() == reflect.Interface {
		return actualType.Implements(expected.Elem())
	}
	return actualType == expected
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	if t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Interface {
		return t.Elem().String()
	}
	return t.String()
}
