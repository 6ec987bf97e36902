package object_test

import (
	"fmt"
	"testing"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	Name string
	Age  int
}

func TestObject(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		object.That(t, user{Name: "john", Age: 42}).
			IsNotNil().
			IsEqualTo(user{Name: "john", Age: 42}).
			IsNotEqualTo(user{Name: "jane"}).
			IsInstanceOf(user{}).
			IsNotInstanceOf(&user{}).
			Matches(func(u user) bool { return u.Age > 18 }, "an adult")

		object.That[error](t, fmt.Errorf("boom")).IsInstanceOf((*error)(nil))
		object.That[*user](t, nil).IsNil()
	})

	t.Run("failures", func(t *testing.T) {
		// given
		s := assertions.NewSoft()

		// when
		object.That(s, &user{Name: "john", Age: 42}).
			IsNil().
			IsEqualTo(&user{Name: "jane"}).
			IsInstanceOf(user{}).
			Matches(func(u *user) bool { return u.Age < 18 }, "a minor")

		// then
		errs := s.ErrorsCollected()
		require.Len(t, errs, 4)
		assert.Equal(t, "Expecting actual:\n  &{Name:john Age:42}\nto be nil", errs[0].Error())
		assert.Equal(t, "Expecting actual:\n  &{Name:john Age:42}\nto be equal to:\n  &{Name:jane Age:0}\nbut was not.", errs[1].Error())
		assert.Equal(t, "Expecting actual:\n  &{Name:john Age:42}\nto be an instance of:\n  object_test.user\nbut was instance of:\n  *object_test.user", errs[2].Error())
		assert.Equal(t, "Expecting actual:\n  &{Name:john Age:42}\nto match a minor", errs[3].Error())
	})

	t.Run("satisfies", func(t *testing.T) {
		// given
		s := assertions.NewSoft()

		// when
		object.That(s, user{Name: "john", Age: 42}).Satisfies(func(t assertions.AssertT, u user) {
			assert.Equal(t, "jane", u.Name)
			assert.Equal(t, 42, u.Age)
		})

		// then
		errs := s.ErrorsCollected()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "to satisfy all the requirements but:\nMultiple Failures (1 failure)\n")
	})

	t.Run("self referencing subject", func(t *testing.T) {
		// given
		m := map[string]any{}
		m["self"] = m
		s := assertions.NewSoft()

		// when
		object.That[any](s, m).IsNil()

		// then
		errs := s.ErrorsCollected()
		require.Len(t, errs, 1)
		assert.Equal(t, "Expecting actual:\n  {\"self\"=(this map)}\nto be nil", errs[0].Error())
	})

	t.Run("constructed for any subject", func(t *testing.T) {
		// when
		a, err := assertions.Construct[*object.Assert[any]](user{Name: "john"})

		// then
		require.NoError(t, err)
		assert.Equal(t, user{Name: "john"}, a.Actual())
	})
}
