package list

import (
	"slices"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/format"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/object"
)

// Assert is the wrapper of slices. A nil slice is a nil subject, while an empty one is not.
type Assert[E comparable] struct {
	assertions.Abstract[Assert[E], []E]
}

func init() {
	assertions.RegisterConstructor(New[string])
	assertions.RegisterConstructor(New[int])
	assertions.RegisterConstructor(New[int64])
	assertions.RegisterConstructor(New[float64])
	assertions.RegisterConstructor(New[bool])
}

func New[E comparable](actual []E) *Assert[E] {
	a := &Assert[E]{}
	a.WireUp(a, actual)
	return a
}

func That[E comparable](t assertions.AssertT, actual []E) *Assert[E] {
	return assertions.Bind(t, New(actual))
}

// Contains verifies all the values are elements of the slice, in any order.
func (a *Assert[E]) Contains(values ...E) *Assert[E] {
	a.T().Helper()
	return a.Check(func(actual []E) error {
		var notFound []E
		for _, v := range values {
			if !slices.Contains(actual, v) {
				notFound = append(notFound, v)
			}
		}
		if len(notFound) == 0 {
			return nil
		}
		return assertions.NewFailure(format.ShouldContainElements(format.TypeName(actual), a.Represent(), format.Represent(values), format.Represent(notFound)))
	})
}

func (a *Assert[E]) DoesNotContain(values ...E) *Assert[E] {
	a.T().Helper()
	return a.Check(func(actual []E) error {
		var found []E
		for _, v := range values {
			if slices.Contains(actual, v) {
				found = append(found, v)
			}
		}
		if len(found) == 0 {
			return nil
		}
		return assertions.NewFailure(format.ShouldNotContainElements(format.TypeName(actual), a.Represent(), format.Represent(values), format.Represent(found)))
	})
}

// ContainsExactly verifies the slice has the values as elements, in the same order, and nothing else.
func (a *Assert[E]) ContainsExactly(values ...E) *Assert[E] {
	a.T().Helper()
	return a.Check(func(actual []E) error {
		if slices.Equal(actual, values) {
			return nil
		}
		return assertions.NewFailure(format.ShouldContainExactly(format.TypeName(actual), a.Represent(), format.Represent(values)))
	})
}

func (a *Assert[E]) HasSize(size int) *Assert[E] {
	a.T().Helper()
	return a.Check(func(actual []E) error {
		if len(actual) == size {
			return nil
		}
		return assertions.NewFailure(format.ShouldHaveSize(a.Represent(), len(actual), size))
	})
}

func (a *Assert[E]) IsEmpty() *Assert[E] {
	a.T().Helper()
	return a.Check(func(actual []E) error {
		if len(actual) == 0 {
			return nil
		}
		return assertions.NewFailure(format.ShouldBeEmpty(a.Represent()))
	})
}

func (a *Assert[E]) IsNotEmpty() *Assert[E] {
	a.T().Helper()
	return a.Check(func(actual []E) error {
		if len(actual) > 0 {
			return nil
		}
		return assertions.NewFailure(format.ShouldNotBeEmpty())
	})
}

// IsNilOrEmpty is the only check a nil slice passes, besides IsNil.
func (a *Assert[E]) IsNilOrEmpty() *Assert[E] {
	a.T().Helper()
	return a.CheckNillable(func(actual []E) error {
		if len(actual) == 0 {
			return nil
		}
		return assertions.NewFailure(format.ShouldBeEmpty(a.Represent()))
	})
}

// Element returns a wrapper over the element at the index. When there is no such element the
// check fails and the returned wrapper is over the zero value.
func (a *Assert[E]) Element(index int) *object.Assert[E] {
	a.T().Helper()
	var element E
	a.Check(func(actual []E) error {
		if index < 0 || index >= len(actual) {
			return assertions.Failf("Expecting an element at index %d but the size is %d in:\n  %s", index, len(actual), a.Represent())
		}
		element = actual[index]
		return nil
	})
	return assertions.Derive(a, object.New(element))
}
