package conditions

import (
	"strings"

	toolchainv1alpha1 "github.com/codeready-toolchain/api/api/v1alpha1"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/format"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/wait"
	"github.com/codeready-toolchain/toolchain-common/pkg/condition"
	"github.com/google/go-cmp/cmp"
)

// Assert is the wrapper of the status conditions of an object. A nil list of conditions is
// treated as an empty one.
type Assert struct {
	assertions.Abstract[Assert, []toolchainv1alpha1.Condition]
}

func init() {
	assertions.RegisterConstructor(New)
}

func New(conditions []toolchainv1alpha1.Condition) *Assert {
	a := &Assert{}
	a.WireUp(a, conditions)
	a.RepresentWith(represent)
	return a
}

func That(t assertions.AssertT, conditions []toolchainv1alpha1.Condition) *Assert {
	return assertions.Bind(t, New(conditions))
}

func (a *Assert) HasConditionWithType(typ toolchainv1alpha1.ConditionType) *Assert {
	a.T().Helper()
	return a.CheckNillable(func(actual []toolchainv1alpha1.Condition) error {
		if _, found := condition.FindConditionByType(actual, typ); found {
			return nil
		}
		return assertions.Failf("Expecting the conditions:\n%s\nto contain a condition with the type:\n  %q", indent(a.Represent()), typ)
	})
}

// HasCondition verifies there is a condition of the same type equal to the expected one,
// not taking the time fields into account.
func (a *Assert) HasCondition(expected toolchainv1alpha1.Condition) *Assert {
	a.T().Helper()
	return a.CheckNillable(func(actual []toolchainv1alpha1.Condition) error {
		found, ok := condition.FindConditionByType(actual, expected.Type)
		if !ok {
			return assertions.Failf("Expecting the conditions:\n%s\nto contain a condition with the type:\n  %q", indent(a.Represent()), expected.Type)
		}
		reset := wait.ResetTimeFields([]toolchainv1alpha1.Condition{found, expected})
		if cmp.Equal(reset[1], reset[0]) {
			return nil
		}
		return assertions.Failf("Expecting the condition with the type %q to be:\n  %s\nbut was:\n  %s\ndiff:\n%s",
			expected.Type, describe(reset[1]), describe(reset[0]), cmp.Diff(reset[1], reset[0]))
	})
}

func (a *Assert) HasNoConditions() *Assert {
	a.T().Helper()
	return a.CheckNillable(func(actual []toolchainv1alpha1.Condition) error {
		if len(actual) == 0 {
			return nil
		}
		return assertions.Failf("Expecting no conditions but were:\n%s", indent(a.Represent()))
	})
}

func (a *Assert) HasSize(size int) *Assert {
	a.T().Helper()
	return a.CheckNillable(func(actual []toolchainv1alpha1.Condition) error {
		if len(actual) == size {
			return nil
		}
		return assertions.NewFailure(format.ShouldHaveSize(a.Represent(), len(actual), size))
	})
}

func represent(conditions []toolchainv1alpha1.Condition) string {
	if len(conditions) == 0 {
		return "[]"
	}
	lines := make([]string, 0, len(conditions))
	for _, c := range conditions {
		lines = append(lines, "- "+describe(c))
	}
	return strings.Join(lines, "\n")
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

func describe(c toolchainv1alpha1.Condition) string {
	return format.Represent(string(c.Type)) + " status=" + string(c.Status) + " reason=" + format.Represent(c.Reason) + " message=" + format.Represent(c.Message)
}
