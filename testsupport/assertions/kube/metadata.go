package kube

import (
	"fmt"
	"slices"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/format"
	"github.com/codeready-toolchain/toolchain-assertions/testsupport/wait"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Metadata provides the checks of the metadata of the objects. It is meant to be embedded into
// the wrappers of the concrete object types in place of assertions.Abstract.
type Metadata[Self any, T client.Object] struct {
	assertions.Abstract[Self, T]
}

// WireUp initializes the embedded struct, the objects being represented as YAML in the failures.
func (m *Metadata[Self, T]) WireUp(self *Self, obj T) {
	m.Abstract.WireUp(self, obj)
	m.RepresentWith(Represent[T])
}

func (m *Metadata[Self, T]) HasName(name string) *Self {
	m.T().Helper()
	return m.Check(func(obj T) error {
		if obj.GetName() == name {
			return nil
		}
		return assertions.Failf("Expecting %s to have the name:\n  %q\nbut was:\n  %q", describe(obj), name, obj.GetName())
	})
}

func (m *Metadata[Self, T]) IsInNamespace(namespace string) *Self {
	m.T().Helper()
	return m.Check(func(obj T) error {
		if obj.GetNamespace() == namespace {
			return nil
		}
		return assertions.Failf("Expecting %s to be in the namespace:\n  %q\nbut was in:\n  %q", describe(obj), namespace, obj.GetNamespace())
	})
}

func (m *Metadata[Self, T]) WithNameAndNamespace(name, namespace string) *Self {
	m.T().Helper()
	m.HasName(name)
	return m.IsInNamespace(namespace)
}

func (m *Metadata[Self, T]) HasLabel(label string) *Self {
	m.T().Helper()
	return m.Check(func(obj T) error {
		if _, ok := obj.GetLabels()[label]; ok {
			return nil
		}
		return assertions.Failf("Expecting %s to have the label:\n  %q\nbut its labels were:\n  %s", describe(obj), label, format.Represent(obj.GetLabels()))
	})
}

func (m *Metadata[Self, T]) HasLabelWithValue(label, value string) *Self {
	m.T().Helper()
	return m.Check(func(obj T) error {
		if v, ok := obj.GetLabels()[label]; ok && v == value {
			return nil
		}
		return assertions.Failf("Expecting %s to have the label %q with the value:\n  %q\nbut its labels were:\n  %s", describe(obj), label, value, format.Represent(obj.GetLabels()))
	})
}

func (m *Metadata[Self, T]) DoesNotHaveLabel(label string) *Self {
	m.T().Helper()
	return m.Check(func(obj T) error {
		if _, ok := obj.GetLabels()[label]; !ok {
			return nil
		}
		return assertions.Failf("Expecting %s not to have the label:\n  %q\nbut its labels were:\n  %s", describe(obj), label, format.Represent(obj.GetLabels()))
	})
}

func (m *Metadata[Self, T]) HasAnnotation(annotation string) *Self {
	m.T().Helper()
	return m.Check(func(obj T) error {
		if _, ok := obj.GetAnnotations()[annotation]; ok {
			return nil
		}
		return assertions.Failf("Expecting %s to have the annotation:\n  %q\nbut its annotations were:\n  %s", describe(obj), annotation, format.Represent(obj.GetAnnotations()))
	})
}

func (m *Metadata[Self, T]) HasAnnotationWithValue(annotation, value string) *Self {
	m.T().Helper()
	return m.Check(func(obj T) error {
		if v, ok := obj.GetAnnotations()[annotation]; ok && v == value {
			return nil
		}
		return assertions.Failf("Expecting %s to have the annotation %q with the value:\n  %q\nbut its annotations were:\n  %s", describe(obj), annotation, value, format.Represent(obj.GetAnnotations()))
	})
}

func (m *Metadata[Self, T]) HasFinalizer(finalizer string) *Self {
	m.T().Helper()
	return m.Check(func(obj T) error {
		if slices.Contains(obj.GetFinalizers(), finalizer) {
			return nil
		}
		return assertions.Failf("Expecting %s to have the finalizer:\n  %q\nbut its finalizers were:\n  %s", describe(obj), finalizer, format.Represent(obj.GetFinalizers()))
	})
}

// Represent renders the object as YAML, without the managed fields.
func Represent[T client.Object](obj T) string {
	out, err := wait.StringifyObject(obj)
	if err != nil {
		return format.Represent(obj)
	}
	return string(out)
}

func describe(obj client.Object) string {
	return fmt.Sprintf("%T %s", obj, client.ObjectKeyFromObject(obj))
}
