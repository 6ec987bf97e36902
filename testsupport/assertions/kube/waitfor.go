package kube

import (
	"context"
	"reflect"
	"time"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/wait"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	kwait "k8s.io/apimachinery/pkg/util/wait"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Finder polls the cluster for an object until it satisfies the expectations.
type Finder[T client.Object] struct {
	cl      client.Client
	key     client.ObjectKey
	timeout time.Duration
	tick    time.Duration
}

func WaitFor[T client.Object](cl client.Client) *Finder[T] {
	return &Finder[T]{
		cl:      cl,
		timeout: wait.DefaultTimeout,
		tick:    wait.DefaultRetryInterval,
	}
}

func (f *Finder[T]) WithObjectKey(namespace, name string) *Finder[T] {
	f.key = client.ObjectKey{Name: name, Namespace: namespace}
	return f
}

func (f *Finder[T]) WithTimeout(timeout time.Duration) *Finder[T] {
	f.timeout = timeout
	return f
}

func (f *Finder[T]) WithRetryInterval(interval time.Duration) *Finder[T] {
	f.tick = interval
	return f
}

// Matching fetches the object and runs the expectations on it in a fresh soft assertion session
// until none of them fails. It returns the matching object. When there is none in time, the
// failures of the last attempt are reported to t and the returned object is the zero value.
func (f *Finder[T]) Matching(ctx context.Context, t assertions.RequireT, expectations func(s *assertions.Soft, obj T)) T {
	t.Helper()
	require.NotEmpty(t, f.key.Name, "the object key is required, see WithObjectKey")

	t.Logf("waiting for %T with name '%s' in namespace '%s' to match the expectations", newObject[T](), f.key.Name, f.key.Namespace)

	var returnedObject T
	var last *assertions.Soft

	err := kwait.PollUntilContextTimeout(ctx, f.tick, f.timeout, true, func(ctx context.Context) (done bool, err error) {
		last = assertions.NewSoft()
		obj := newObject[T]()
		if err := f.cl.Get(ctx, f.key, obj); err != nil {
			if apierrors.IsNotFound(err) {
				last.Errorf("%T %s not found", obj, f.key)
				return false, nil
			}
			return false, err
		}
		expectations(last, obj)
		if last.WasSuccess() {
			returnedObject = obj
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		if last != nil {
			for _, e := range last.ErrorsCollected() {
				t.Errorf("%s", e)
			}
		}
		t.Logf("couldn't match %T with name '%s' in namespace '%s' with the expectations because of: %s", newObject[T](), f.key.Name, f.key.Namespace, err)
	}

	return returnedObject
}

// Deleted waits until the object cannot be found anymore.
func (f *Finder[T]) Deleted(ctx context.Context, t assertions.RequireT) {
	t.Helper()
	require.NotEmpty(t, f.key.Name, "the object key is required, see WithObjectKey")

	err := kwait.PollUntilContextTimeout(ctx, f.tick, f.timeout, true, func(ctx context.Context) (done bool, err error) {
		obj := newObject[T]()
		err = f.cl.Get(ctx, f.key, obj)
		if err != nil && apierrors.IsNotFound(err) {
			return true, nil
		}
		return false, err
	})
	if err != nil {
		assert.Fail(t, "object still present or other error happened", "object with key %s: %s", f.key, err)
	}
}

func newObject[T client.Object]() T {
	var obj T
	typ := reflect.TypeOf(obj)
	if typ == nil || typ.Kind() != reflect.Pointer {
		panic("the object type of a Finder must be a pointer to a struct")
	}
	return reflect.New(typ.Elem()).Interface().(T)
}
