package assertions

import "sync"

// CollectedFailure is a failure recorded by a Collector along with its position among the
// recorded failures.
type CollectedFailure struct {
	Index int
	Err   error
}

// Kind returns the kind of the recorded failure.
func (f CollectedFailure) Kind() Kind {
	return toFailure(f.Err).Kind
}

// Collector records the failures of the checks it intercepts, in the order they happen.
// The zero value is ready to use.
type Collector struct {
	lock     sync.Mutex
	failures []CollectedFailure
	checks   int
}

// Intercept runs the check and records the failure it raised, if any, instead of letting it
// propagate. A check panicking with anything other than a *Failure is not intercepted.
func (c *Collector) Intercept(check func()) {
	c.lock.Lock()
	c.checks++
	c.lock.Unlock()

	if f := capture(check); f != nil {
		c.Collect(f)
	}
}

// Collect records the failure.
func (c *Collector) Collect(err error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.failures = append(c.failures, CollectedFailure{Index: len(c.failures), Err: err})
}

// ErrorsCollected returns the failures recorded so far, in their original order.
func (c *Collector) ErrorsCollected() []error {
	c.lock.Lock()
	defer c.lock.Unlock()
	errs := make([]error, 0, len(c.failures))
	for _, f := range c.failures {
		errs = append(errs, f.Err)
	}
	return errs
}

func (c *Collector) Failures() []CollectedFailure {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]CollectedFailure(nil), c.failures...)
}

func (c *Collector) HasErrors() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.failures) > 0
}

// Checks returns the number of checks intercepted so far.
func (c *Collector) Checks() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.checks
}
