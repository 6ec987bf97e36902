package text

import (
	"regexp"
	"strings"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/format"
)

type Assert struct {
	assertions.Abstract[Assert, string]
}

func init() {
	assertions.RegisterConstructor(New)
}

func New(actual string) *Assert {
	a := &Assert{}
	a.WireUp(a, actual)
	return a
}

// That returns a wrapper over the string bound to t.
func That(t assertions.AssertT, actual string) *Assert {
	return assertions.Bind(t, New(actual))
}

func (a *Assert) Contains(values ...string) *Assert {
	a.T().Helper()
	return a.Check(func(actual string) error {
		for _, v := range values {
			if !strings.Contains(actual, v) {
				return assertions.NewFailure(format.ShouldContain(a.Represent(), format.Represent(v), ""))
			}
		}
		return nil
	})
}

// HasText is Contains, for the wrappers that read better with it.
func (a *Assert) HasText(values ...string) *Assert {
	a.T().Helper()
	return a.Contains(values...)
}

func (a *Assert) ContainsIgnoringCase(value string) *Assert {
	a.T().Helper()
	return a.Check(func(actual string) error {
		if strings.Contains(strings.ToLower(actual), strings.ToLower(value)) {
			return nil
		}
		return assertions.NewFailure(format.ShouldContain(a.Represent(), format.Represent(value), "(ignoring case)"))
	})
}

func (a *Assert) DoesNotContain(value string) *Assert {
	a.T().Helper()
	return a.Check(func(actual string) error {
		if !strings.Contains(actual, value) {
			return nil
		}
		return assertions.NewFailure(format.ShouldNotContain(a.Represent(), format.Represent(value), ""))
	})
}

func (a *Assert) StartsWith(prefix string) *Assert {
	a.T().Helper()
	return a.Check(func(actual string) error {
		if strings.HasPrefix(actual, prefix) {
			return nil
		}
		return assertions.NewFailure(format.ShouldStartWith(a.Represent(), format.Represent(prefix)))
	})
}

func (a *Assert) EndsWith(suffix string) *Assert {
	a.T().Helper()
	return a.Check(func(actual string) error {
		if strings.HasSuffix(actual, suffix) {
			return nil
		}
		return assertions.NewFailure(format.ShouldEndWith(a.Represent(), format.Represent(suffix)))
	})
}

func (a *Assert) IsEmpty() *Assert {
	a.T().Helper()
	return a.Check(func(actual string) error {
		if actual == "" {
			return nil
		}
		return assertions.NewFailure(format.ShouldBeEmpty(a.Represent()))
	})
}

func (a *Assert) IsNotEmpty() *Assert {
	a.T().Helper()
	return a.Check(func(actual string) error {
		if actual != "" {
			return nil
		}
		return assertions.NewFailure(format.ShouldNotBeEmpty())
	})
}

// HasLength verifies the number of bytes of the string.
func (a *Assert) HasLength(length int) *Assert {
	a.T().Helper()
	return a.Check(func(actual string) error {
		if len(actual) == length {
			return nil
		}
		return assertions.NewFailure(format.ShouldHaveLength(a.Represent(), len(actual), length))
	})
}

// MatchesPattern verifies the string matches the regular expression. An invalid expression fails
// the check.
func (a *Assert) MatchesPattern(pattern string) *Assert {
	a.T().Helper()
	return a.Check(func(actual string) error {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return assertions.Failf("invalid pattern %q: %s", pattern, err)
		}
		if re.MatchString(actual) {
			return nil
		}
		return assertions.NewFailure(format.ShouldMatch(a.Represent(), format.Represent(pattern)))
	})
}
