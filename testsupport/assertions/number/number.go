package number

import (
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/format"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Assert is the wrapper of a possibly absent number.
type Assert[N Number] struct {
	assertions.Abstract[Assert[N], *N]
}

func init() {
	register[int]()
	register[int32]()
	register[int64]()
	register[float32]()
	register[float64]()
}

// register makes the wrappers of N constructible from both N and *N. The constructor taking N
// is registered first, it is the one used for present values.
func register[N Number]() {
	assertions.RegisterConstructor(New[N])
	assertions.RegisterConstructor(NewNullable[N])
}

func New[N Number](actual N) *Assert[N] {
	return NewNullable(&actual)
}

// NewNullable wraps a number that may be absent. An absent number fails every check but IsNil.
func NewNullable[N Number](actual *N) *Assert[N] {
	a := &Assert[N]{}
	a.WireUp(a, actual)
	return a
}

func That[N Number](t assertions.AssertT, actual N) *Assert[N] {
	return assertions.Bind(t, New(actual))
}

func ThatNullable[N Number](t assertions.AssertT, actual *N) *Assert[N] {
	return assertions.Bind(t, NewNullable(actual))
}

func (a *Assert[N]) IsEqualTo(expected N) *Assert[N] {
	a.T().Helper()
	return a.Check(func(actual *N) error {
		if *actual == expected {
			return nil
		}
		return assertions.NewFailure(format.ShouldBeEqual(a.Represent(), format.Represent(expected)))
	})
}

func (a *Assert[N]) IsNotEqualTo(other N) *Assert[N] {
	a.T().Helper()
	return a.Check(func(actual *N) error {
		if *actual != other {
			return nil
		}
		return assertions.NewFailure(format.ShouldNotBeEqual(a.Represent(), format.Represent(other)))
	})
}

// IsBetween verifies start <= actual <= end.
func (a *Assert[N]) IsBetween(start, end N) *Assert[N] {
	a.T().Helper()
	return a.Check(func(actual *N) error {
		if start <= *actual && *actual <= end {
			return nil
		}
		return assertions.NewFailure(format.ShouldBeBetween(a.Represent(), format.Represent(start), format.Represent(end)))
	})
}

func (a *Assert[N]) IsLessThan(other N) *Assert[N] {
	a.T().Helper()
	return a.Check(func(actual *N) error {
		if *actual < other {
			return nil
		}
		return assertions.NewFailure(format.ShouldBeLess(a.Represent(), format.Represent(other)))
	})
}

func (a *Assert[N]) IsLessThanOrEqualTo(other N) *Assert[N] {
	a.T().Helper()
	return a.Check(func(actual *N) error {
		if *actual <= other {
			return nil
		}
		return assertions.NewFailure(format.ShouldBeLessOrEqual(a.Represent(), format.Represent(other)))
	})
}

func (a *Assert[N]) IsGreaterThan(other N) *Assert[N] {
	a.T().Helper()
	return a.Check(func(actual *N) error {
		if *actual > other {
			return nil
		}
		return assertions.NewFailure(format.ShouldBeGreater(a.Represent(), format.Represent(other)))
	})
}

func (a *Assert[N]) IsGreaterThanOrEqualTo(other N) *Assert[N] {
	a.T().Helper()
	return a.Check(func(actual *N) error {
		if *actual >= other {
			return nil
		}
		return assertions.NewFailure(format.ShouldBeGreaterOrEqual(a.Represent(), format.Represent(other)))
	})
}

func (a *Assert[N]) IsZero() *Assert[N] {
	a.T().Helper()
	return a.IsEqualTo(0)
}

func (a *Assert[N]) IsPositive() *Assert[N] {
	a.T().Helper()
	return a.IsGreaterThan(0)
}

func (a *Assert[N]) IsNegative() *Assert[N] {
	a.T().Helper()
	return a.IsLessThan(0)
}
