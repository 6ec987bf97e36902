package assertions_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/list"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/number"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/object"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoft(t *testing.T) {
	t.Run("collects the failures in order", func(t *testing.T) {
		// given
		s := assertions.NewSoft()

		// when
		text.That(s, "click").
			HasText("foo").
			HasText("ick").
			HasText("bar").
			HasText("click")

		// then
		errs := s.ErrorsCollected()
		require.Len(t, errs, 2)
		assert.True(t, strings.HasPrefix(errs[0].Error(), "Expecting actual:\n  \"click\"\nto contain:\n  \"foo\" "))
		assert.True(t, strings.HasPrefix(errs[1].Error(), "Expecting actual:\n  \"click\"\nto contain:\n  \"bar\" "))
		assert.Equal(t, 4, s.Checks())
		assert.False(t, s.WasSuccess())
	})

	t.Run("across wrappers", func(t *testing.T) {
		// given
		s := assertions.NewSoft()

		// when
		text.That(s, "click").StartsWith("cl").EndsWith("x")
		number.That(s, 10).IsPositive().IsLessThan(5)
		list.That(s, []int{1, 2}).HasSize(2).Contains(3)

		// then
		failures := s.Failures()
		require.Len(t, failures, 3)
		for i, f := range failures {
			assert.Equal(t, i, f.Index)
		}
		assert.Contains(t, failures[0].Err.Error(), "to end with")
		assert.Contains(t, failures[1].Err.Error(), "to be less than")
		assert.Contains(t, failures[2].Err.Error(), "but could not find the following element(s):\n  [3]")
	})

	t.Run("collects testify assertions", func(t *testing.T) {
		// given
		s := assertions.NewSoft()

		// when
		assert.Equal(s, "cookie", "chocolate")
		text.That(s, "click").Contains("foo")
		assert.True(s, true)

		// then
		errs := s.ErrorsCollected()
		require.Len(t, errs, 2)
		assert.Contains(t, errs[0].Error(), "Not equal")
		assert.ErrorIs(t, errs[0], assertions.ErrAssertionFailed)
		assert.Contains(t, errs[1].Error(), "to contain")
	})

	t.Run("no failures", func(t *testing.T) {
		// given
		s := assertions.NewSoft()

		// when
		text.That(s, "click").Contains("ick")

		// then
		assert.Empty(t, s.ErrorsCollected())
		assert.True(t, s.WasSuccess())
		assert.NoError(t, s.Err())
	})

	t.Run("nil subject fails once per check", func(t *testing.T) {
		// given
		s := assertions.NewSoft()

		// when
		list.That[string](s, nil).Contains("a").HasSize(0).IsNilOrEmpty().IsNil()

		// then
		errs := s.ErrorsCollected()
		require.Len(t, errs, 2)
		for _, err := range errs {
			assert.ErrorIs(t, err, assertions.ErrNullSubject)
		}
	})

	t.Run("other panics propagate", func(t *testing.T) {
		// given
		s := assertions.NewSoft()
		executed := false

		// when
		assert.PanicsWithValue(t, "boom", func() {
			object.That(s, 1).
				IsEqualTo(2).
				Matches(func(int) bool { panic("boom") }, "a bomb").
				Matches(func(int) bool {
					executed = true
					return true
				}, "the rest")
		})

		// then
		assert.False(t, executed)
		assert.Len(t, s.ErrorsCollected(), 1)
	})

	t.Run("ids", func(t *testing.T) {
		assert.NotEqual(t, assertions.NewSoft().ID(), assertions.NewSoft().ID())
	})
}

func TestSoftErr(t *testing.T) {
	t.Run("combines the failures", func(t *testing.T) {
		// given
		s := assertions.NewSoft()
		text.That(s, "click").Contains("foo").Contains("bar")

		// when
		err := s.Err()

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, assertions.ErrAssertionFailed)
		assert.Equal(t, "Multiple Failures (2 failures)\n"+
			"-- failure 1 --\n"+
			"Expecting actual:\n  \"click\"\nto contain:\n  \"foo\" \n"+
			"-- failure 2 --\n"+
			"Expecting actual:\n  \"click\"\nto contain:\n  \"bar\" \n", err.Error())
	})

	t.Run("single failure", func(t *testing.T) {
		// given
		s := assertions.NewSoft()
		text.That(s, "click").IsEmpty()

		// when
		err := s.Err()

		// then
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "Multiple Failures (1 failure)\n-- failure 1 --\nExpecting empty but was:\n  \"click\""))
	})
}

func TestAssertAll(t *testing.T) {
	t.Run("reports all the failures at once", func(t *testing.T) {
		// given
		ft := &fakeRequireT{}
		s := assertions.NewSoft()
		text.That(s, "click").Contains("foo").Contains("bar")

		// when
		inGoroutine(func() {
			s.AssertAll(ft)
		})

		// then
		require.Len(t, ft.errors, 1)
		assert.True(t, strings.HasPrefix(ft.errors[0], "Multiple Failures (2 failures)"))
		assert.True(t, ft.failedNow)
	})

	t.Run("does nothing without failures", func(t *testing.T) {
		// given
		ft := &fakeRequireT{}
		s := assertions.NewSoft()
		text.That(s, "click").Contains("click")

		// when
		inGoroutine(func() {
			s.AssertAll(ft)
		})

		// then
		assert.Empty(t, ft.errors)
		assert.False(t, ft.failedNow)
	})
}

func TestSoftly(t *testing.T) {
	t.Run("with failures", func(t *testing.T) {
		// given
		ft := &fakeRequireT{}
		executed := false

		// when
		inGoroutine(func() {
			assertions.Softly(ft, func(s *assertions.Soft) {
				text.That(s, "click").Contains("foo")
				number.That(s, 3).IsZero()
				executed = true
			})
		})

		// then
		assert.True(t, executed)
		require.Len(t, ft.errors, 1)
		assert.Contains(t, ft.errors[0], "Multiple Failures (2 failures)")
		assert.True(t, ft.failedNow)
	})

	t.Run("logs go to the test", func(t *testing.T) {
		// given
		ft := &fakeRequireT{}

		// when
		inGoroutine(func() {
			assertions.Softly(ft, func(s *assertions.Soft) {
				s.Logf("looking at %s", "click")
			})
		})

		// then
		assert.Equal(t, []string{"looking at click"}, ft.logs)
		assert.False(t, ft.failedNow)
	})
}

func TestSoftFor(t *testing.T) {
	// given
	ft := &fakeRequireT{}
	s := assertions.SoftFor(ft)
	text.That(s, "click").Contains("foo")

	// when
	require.Empty(t, ft.errors)
	ft.runCleanups()

	// then
	require.Len(t, ft.errors, 1)
	assert.True(t, ft.failedNow)
}

func TestReport(t *testing.T) {
	t.Run("with failures", func(t *testing.T) {
		// given
		s := assertions.NewSoft()
		text.That(s, "click").Contains("foo")
		number.ThatNullable[int64](s, nil).IsPositive()
		number.That(s, 1).IsPositive()
		out := &bytes.Buffer{}

		// when
		s.Report(out)

		// then
		report := out.String()
		assert.Contains(t, report, s.ID().String())
		assert.Contains(t, report, "3 wrapper checks, 2 failures")
		assert.Contains(t, report, "KIND")
		assert.Contains(t, report, "assertion")
		assert.Contains(t, report, "nil subject")
	})

	t.Run("with testify failures only", func(t *testing.T) {
		// given
		s := assertions.NewSoft()
		assert.Equal(s, "cookie", "chocolate")
		out := &bytes.Buffer{}

		// when
		s.Report(out)

		// then
		assert.Contains(t, out.String(), "0 wrapper checks, 1 failures")
		assert.Contains(t, out.String(), "KIND")
	})

	t.Run("without failures", func(t *testing.T) {
		// given
		s := assertions.NewSoft()
		out := &bytes.Buffer{}

		// when
		s.Report(out)

		// then
		assert.Contains(t, out.String(), "0 wrapper checks, 0 failures")
		assert.NotContains(t, out.String(), "KIND")
	})
}
