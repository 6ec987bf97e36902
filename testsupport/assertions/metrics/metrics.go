package metrics

import (
	"sort"
	"strings"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/format"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Assert is the wrapper of a set of metric families.
type Assert struct {
	assertions.Abstract[Assert, metrics.Families]
}

func init() {
	assertions.RegisterConstructor(New)
}

func New(families metrics.Families) *Assert {
	a := &Assert{}
	a.WireUp(a, families)
	a.RepresentWith(represent)
	return a
}

func That(t assertions.AssertT, families metrics.Families) *Assert {
	return assertions.Bind(t, New(families))
}

// ThatGathered returns the wrapper of the metric families of the gatherer. The test fails
// right away when they cannot be gathered.
func ThatGathered(t assertions.RequireT, g prometheus.Gatherer) *Assert {
	t.Helper()
	families, err := metrics.Gather(g)
	if err != nil {
		t.Errorf("%s", err.Error())
		t.FailNow()
	}
	return That(t, families)
}

func (a *Assert) HasFamily(family string) *Assert {
	a.T().Helper()
	return a.Check(func(actual metrics.Families) error {
		if _, ok := actual[family]; ok {
			return nil
		}
		return assertions.Failf("Expecting the metrics:\n  %s\nto contain the family:\n  %q", a.Represent(), family)
	})
}

// HasValue verifies the value of the metric of the family with exactly the labels, passed as
// key-value pairs.
func (a *Assert) HasValue(family string, expected float64, labels ...string) *Assert {
	a.T().Helper()
	return a.Check(func(actual metrics.Families) error {
		value, err := metrics.Value(actual, family, labels...)
		if err != nil {
			return assertions.Failf("Expecting the metric '%s%s' to have the value:\n  %s\nbut: %s", family, describeLabels(labels), format.Represent(expected), err.Error())
		}
		if value == expected {
			return nil
		}
		return assertions.Failf("Expecting the metric '%s%s' to have the value:\n  %s\nbut was:\n  %s", family, describeLabels(labels), format.Represent(expected), format.Represent(value))
	})
}

// HasLabels verifies that one of the metrics of the family has the labels, among others.
func (a *Assert) HasLabels(family string, labels map[string]string) *Assert {
	a.T().Helper()
	return a.Check(func(actual metrics.Families) error {
		all := metrics.Labels(actual, family)
		for _, l := range all {
			if containsAll(l, labels) {
				return nil
			}
		}
		return assertions.Failf("Expecting a metric of the family %q to have the labels:\n  %s\nbut the labels were:\n  %s", family, format.Represent(labels), format.Represent(all))
	})
}

func containsAll(actual, expected map[string]string) bool {
	for k, v := range expected {
		if av, ok := actual[k]; !ok || av != v {
			return false
		}
	}
	return true
}

func describeLabels(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(labels)/2)
	for i := 0; i+1 < len(labels); i += 2 {
		pairs = append(pairs, labels[i]+"="+format.Represent(labels[i+1]))
	}
	return "{" + strings.Join(pairs, ",") + "}"
}

func represent(families metrics.Families) string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return format.Represent(names)
}
