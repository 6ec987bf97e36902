package assertions_test

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"github.com/pkg/errors"
)

// fakeT records what is reported to it, and keeps going.
type fakeT struct {
	errors []string
	logs   []string
}

var _ assertions.AssertT = &fakeT{}

func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeT) Helper() {}

func (f *fakeT) Logf(format string, args ...any) {
	f.logs = append(f.logs, fmt.Sprintf(format, args...))
}

// fakeRequireT stops the goroutine it runs on in FailNow, like *testing.T does.
type fakeRequireT struct {
	fakeT
	failedNow bool
	cleanups  []func()
}

var _ assertions.CleanupT = &fakeRequireT{}

func (f *fakeRequireT) FailNow() {
	f.failedNow = true
	runtime.Goexit()
}

func (f *fakeRequireT) Cleanup(fn func()) {
	f.cleanups = append(f.cleanups, fn)
}

// runCleanups runs the cleanups in the reverse order of their registration.
func (f *fakeRequireT) runCleanups() {
	for i := len(f.cleanups) - 1; i >= 0; i-- {
		inGoroutine(f.cleanups[i])
	}
}

// inGoroutine runs the function on its own goroutine so that FailNow only stops the function.
func inGoroutine(fn func()) {
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		fn()
	}()
	wg.Wait()
}

// recoverError returns the error the function panicked with.
func recoverError(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			panic(r)
		}
		err = e
	}()
	fn()
	return errors.New("the function did not panic")
}
