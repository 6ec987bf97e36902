package assertions

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gofrs/uuid"
	"github.com/gosuri/uitable"
	"github.com/hashicorp/go-multierror"
)

// Soft is a soft assertion session. Used as the T of the wrappers, it collects the failures of
// their checks and lets the chains go on. It also collects the failures of the testify
// assertions it is passed to.
//
//	assertions.Softly(t, func(s *assertions.Soft) {
//		text.That(s, "click").Contains("foo").Contains("ick")
//		assert.Equal(s, 1, 2)
//	})
type Soft struct {
	id        uuid.UUID
	parent    AssertT
	collector Collector
}

var (
	_ AssertT     = &Soft{}
	_ interceptor = &Soft{}
)

// NewSoft starts a session whose failures are only reported on demand, see AssertAll and Err.
func NewSoft() *Soft {
	return newSoft(nil)
}

func newSoft(parent AssertT) *Soft {
	s := &Soft{
		id:     uuid.Must(uuid.NewV4()),
		parent: parent,
	}
	logger.V(4).Info("started soft assertion session", "session", s.id)
	return s
}

// Softly runs the block in a new session and reports all its failures to t at the end.
func Softly(t RequireT, block func(s *Soft)) {
	t.Helper()
	s := newSoft(t)
	block(s)
	s.AssertAll(t)
}

// SoftFor starts a session whose failures are reported to t when the test completes.
func SoftFor(t CleanupT) *Soft {
	t.Helper()
	s := newSoft(t)
	t.Cleanup(func() {
		s.AssertAll(t)
	})
	return s
}

func (s *Soft) ID() uuid.UUID {
	return s.id
}

func (s *Soft) Errorf(format string, args ...any) {
	s.collector.Collect(Failf(format, args...))
}

func (s *Soft) Helper() {
	// there is no point in calling the parent's Helper() from here
}

func (s *Soft) Logf(format string, args ...any) {
	if s.parent != nil {
		s.parent.Logf(format, args...)
		return
	}
	logger.Info(fmt.Sprintf(format, args...), "session", s.id)
}

// Intercept runs the check collecting its failure.
func (s *Soft) Intercept(check func()) {
	s.collector.Intercept(check)
}

// ErrorsCollected returns the failures collected so far, in their original order.
func (s *Soft) ErrorsCollected() []error {
	return s.collector.ErrorsCollected()
}

func (s *Soft) Failures() []CollectedFailure {
	return s.collector.Failures()
}

// Checks returns the number of wrapper checks run in the session so far.
func (s *Soft) Checks() int {
	return s.collector.Checks()
}

func (s *Soft) WasSuccess() bool {
	return !s.collector.HasErrors()
}

// Err combines the failures collected so far into a single error, nil if there are none.
func (s *Soft) Err() error {
	var result *multierror.Error
	for _, f := range s.collector.Failures() {
		result = multierror.Append(result, f.Err)
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = formatFailures
	return result
}

// AssertAll reports all the failures collected so far to t as a single one and stops the test.
// It does nothing when there are no failures.
func (s *Soft) AssertAll(t RequireT) {
	t.Helper()
	if err := s.Err(); err != nil {
		t.Errorf("%s", err.Error())
		t.FailNow()
	}
}

// Report writes a summary of the session. Only the checks of the wrappers are counted, while
// the failures also include the ones reported through Errorf, by testify for example.
func (s *Soft) Report(w io.Writer) {
	failures := s.collector.Failures()
	header := color.New(color.FgGreen, color.Bold)
	if len(failures) > 0 {
		header = color.New(color.FgRed, color.Bold)
	}
	header.Fprintf(w, "soft assertions %s: %d wrapper checks, %d failures\n", s.id, s.collector.Checks(), len(failures))
	if len(failures) == 0 {
		return
	}
	table := uitable.New()
	table.MaxColWidth = 100
	table.Wrap = true
	table.AddRow("#", "KIND", "FAILURE")
	for _, f := range failures {
		table.AddRow(f.Index+1, f.Kind(), strings.TrimSpace(f.Err.Error()))
	}
	fmt.Fprintln(w, table)
}

func formatFailures(errs []error) string {
	sb := &strings.Builder{}
	if len(errs) == 1 {
		sb.WriteString("Multiple Failures (1 failure)\n")
	} else {
		fmt.Fprintf(sb, "Multiple Failures (%d failures)\n", len(errs))
	}
	for i, err := range errs {
		fmt.Fprintf(sb, "-- failure %d --\n", i+1)
		sb.WriteString(strings.TrimPrefix(err.Error(), "\n"))
		if !strings.HasSuffix(err.Error(), "\n") {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
