package assertions_test

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestAwait(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	t.Run("success", func(t *testing.T) {
		// given
		ft := &fakeT{}
		rounds := 0

		// when
		ok := assertions.Await(func(s *assertions.Soft) {
			rounds++
			number.That(s, rounds).IsGreaterThan(2)
		}).
			WithTimeout(time.Second * 5).
			WithRetryInterval(time.Millisecond).
			Satisfied(context.TODO(), ft)

		// then
		assert.True(t, ok)
		assert.Equal(t, 3, rounds)
		assert.Empty(t, ft.errors)
	})

	t.Run("timeout", func(t *testing.T) {
		// given
		ft := &fakeT{}

		// when
		ok := assertions.Await(func(s *assertions.Soft) {
			number.That(s, 1).IsGreaterThan(2).IsZero()
		}).
			WithTimeout(time.Millisecond * 50).
			WithRetryInterval(time.Millisecond * 10).
			Satisfied(context.TODO(), ft)

		// then
		assert.False(t, ok)
		require.Len(t, ft.errors, 2)
		assert.Contains(t, ft.errors[0], "to be greater than")
		assert.Contains(t, ft.errors[1], "to be equal to")
		require.NotEmpty(t, ft.logs)
		assert.Contains(t, ft.logs[len(ft.logs)-1], "the expectations were not satisfied")
	})

	t.Run("canceled", func(t *testing.T) {
		// given
		ft := &fakeT{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		ok := assertions.Await(func(s *assertions.Soft) {
			number.That(s, 1).IsZero()
		}).
			WithRetryInterval(time.Millisecond).
			Satisfied(ctx, ft)

		// then
		assert.False(t, ok)
	})
}
