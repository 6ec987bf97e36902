package assertions

import (
	"context"
	"time"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/wait"
	kwait "k8s.io/apimachinery/pkg/util/wait"
)

// Awaitable runs a block of soft assertions until none of them fails.
type Awaitable struct {
	block   func(s *Soft)
	timeout time.Duration
	tick    time.Duration
}

// Await returns an Awaitable for the block. Each round runs the whole block in a fresh session.
func Await(block func(s *Soft)) *Awaitable {
	return &Awaitable{
		block:   block,
		timeout: wait.DefaultTimeout,
		tick:    wait.DefaultRetryInterval,
	}
}

func (a *Awaitable) WithTimeout(timeout time.Duration) *Awaitable {
	a.timeout = timeout
	return a
}

func (a *Awaitable) WithRetryInterval(interval time.Duration) *Awaitable {
	a.tick = interval
	return a
}

// Satisfied polls the block until a round collects no failure. When that does not happen in
// time, the failures of the last round are reported to t.
func (a *Awaitable) Satisfied(ctx context.Context, t AssertT) bool {
	t.Helper()

	var last *Soft
	round := 0
	err := kwait.PollUntilContextTimeout(ctx, a.tick, a.timeout, true, func(ctx context.Context) (done bool, err error) {
		round++
		last = newSoft(t)
		a.block(last)
		logger.V(4).Info("awaited round", "round", round, "failures", len(last.Failures()))
		return last.WasSuccess(), nil
	})
	if err != nil {
		if last != nil {
			for _, e := range last.ErrorsCollected() {
				t.Errorf("%s", e)
			}
		}
		t.Logf("the expectations were not satisfied after %d round(s) within %s: %s", round, a.timeout, err)
		return false
	}
	return true
}
