package assertions

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type AssertT interface {
	assert.TestingT
	Helper()
	Logf(format string, args ...any)
}

type RequireT interface {
	require.TestingT
	Helper()
	Logf(format string, args ...any)
}

// CleanupT is satisfied by *testing.T.
type CleanupT interface {
	RequireT
	Cleanup(func())
}

type failNower interface {
	FailNow()
}

// interceptor is implemented by the T's that take care of the failure signals raised by the
// checks themselves, instead of having them reported.
type interceptor interface {
	Intercept(check func())
}

// unboundT stands in for the T of a wrapper that was never bound to one.
type unboundT struct{}

func (unboundT) Errorf(format string, args ...any) {
	panic(errors.Wrapf(ErrContractViolation, "the wrapper is not bound to a test, cannot report %q", fmt.Sprintf(format, args...)))
}

func (unboundT) Helper() {}

func (unboundT) Logf(string, ...any) {}
