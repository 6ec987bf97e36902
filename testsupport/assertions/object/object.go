package object

import (
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
)

// Assert only provides the checks common to all the wrappers.
type Assert[T any] struct {
	assertions.Abstract[Assert[T], T]
}

func init() {
	assertions.RegisterConstructor(New[any])
}

func New[T any](actual T) *Assert[T] {
	a := &Assert[T]{}
	a.WireUp(a, actual)
	return a
}

func That[T any](t assertions.AssertT, actual T) *Assert[T] {
	return assertions.Bind(t, New(actual))
}
