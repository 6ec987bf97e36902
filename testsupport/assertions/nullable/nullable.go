package nullable

import (
	"database/sql"
	"math"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/format"
)

const typeName = "sql.NullFloat64"

// Float64Assert is the wrapper of a sql.NullFloat64, a float that may hold no value. A nil
// *sql.NullFloat64 is a nil subject, which is not the same as a value that is not valid.
type Float64Assert struct {
	assertions.Abstract[Float64Assert, *sql.NullFloat64]
}

func init() {
	assertions.RegisterConstructor(New)
	assertions.RegisterConstructor(NewNullable)
}

func New(actual sql.NullFloat64) *Float64Assert {
	return NewNullable(&actual)
}

func NewNullable(actual *sql.NullFloat64) *Float64Assert {
	a := &Float64Assert{}
	a.WireUp(a, actual)
	a.RepresentWith(represent)
	return a
}

func That(t assertions.AssertT, actual sql.NullFloat64) *Float64Assert {
	return assertions.Bind(t, New(actual))
}

func ThatNullable(t assertions.AssertT, actual *sql.NullFloat64) *Float64Assert {
	return assertions.Bind(t, NewNullable(actual))
}

func (a *Float64Assert) IsPresent() *Float64Assert {
	a.T().Helper()
	return a.Check(func(actual *sql.NullFloat64) error {
		if actual.Valid {
			return nil
		}
		return assertions.NewFailure(format.ShouldBePresent(typeName))
	})
}

func (a *Float64Assert) IsNotPresent() *Float64Assert {
	a.T().Helper()
	return a.Check(func(actual *sql.NullFloat64) error {
		if !actual.Valid {
			return nil
		}
		return assertions.NewFailure(format.ShouldBeEmptyNullable(typeName, format.Represent(actual.Float64)))
	})
}

// IsEmpty is IsNotPresent.
func (a *Float64Assert) IsEmpty() *Float64Assert {
	a.T().Helper()
	return a.IsNotPresent()
}

func (a *Float64Assert) HasValue(expected float64) *Float64Assert {
	a.T().Helper()
	return a.Check(func(actual *sql.NullFloat64) error {
		if !actual.Valid {
			return assertions.NewFailure(format.ShouldBePresent(typeName))
		}
		if actual.Float64 == expected {
			return nil
		}
		return assertions.NewFailure(format.ShouldHaveNullableValue(typeName, a.Represent(), format.Represent(expected)))
	})
}

// HasValueCloseTo verifies the value is present and within the offset of the expected one.
func (a *Float64Assert) HasValueCloseTo(expected, offset float64) *Float64Assert {
	a.T().Helper()
	return a.Check(func(actual *sql.NullFloat64) error {
		if !actual.Valid {
			return assertions.NewFailure(format.ShouldBePresent(typeName))
		}
		if math.Abs(actual.Float64-expected) <= offset {
			return nil
		}
		return assertions.NewFailure(format.ShouldBeCloseTo(a.Represent(), format.Represent(expected), format.Represent(offset)))
	})
}

func represent(v *sql.NullFloat64) string {
	if !v.Valid {
		return typeName + ".empty"
	}
	return typeName + "[" + format.Represent(v.Float64) + "]"
}
