package kube

import (
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// ObjectAssert is the wrapper of any kind of object, with the metadata checks only.
type ObjectAssert[T client.Object] struct {
	Metadata[ObjectAssert[T], T]
}

func init() {
	assertions.RegisterConstructor(New[client.Object])
}

func New[T client.Object](obj T) *ObjectAssert[T] {
	a := &ObjectAssert[T]{}
	a.WireUp(a, obj)
	return a
}

func That[T client.Object](t assertions.AssertT, obj T) *ObjectAssert[T] {
	return assertions.Bind(t, New(obj))
}
