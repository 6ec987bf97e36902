package assertions

import (
	"reflect"

	"github.com/codeready-toolchain/toolchain-assertions/testsupport/assertions/constructors"
	"github.com/pkg/errors"
)

// Provider is implemented by the types that know how to build their own wrapper.
type Provider[W any] interface {
	Asserting() W
}

var registry = constructors.NewRegistry()

// RegisterConstructor makes the constructor available to Construct and ThatAs for the wrappers
// of type W. The wrapper packages register their constructors in init.
func RegisterConstructor[T, W any](ctor func(T) W) {
	constructors.Register(registry, ctor)
}

// Bind binds the wrapper to t and returns it. It panics when w is not a usable wrapper.
func Bind[W any](t AssertT, w W) W {
	c, err := coreOf(w)
	if err != nil {
		panic(err)
	}
	c.t = t
	return w
}

// Derive binds the wrapper over a value derived from the parent's subject to the T of the parent.
func Derive[W any](parent Wrapper, w W) W {
	return Bind(parent.wrapperCore().t, w)
}

// FromProvider asks the provider for its wrapper and verifies it can be used as one.
func FromProvider[W any](p Provider[W]) (W, error) {
	var zero W
	if isNil(p) {
		return zero, errors.Wrapf(ErrContractViolation, "the provider of %s is nil", wrapperTypeOf[W]())
	}
	w := p.Asserting()
	if _, err := coreOf(w); err != nil {
		return zero, err
	}
	return w, nil
}

// ThatProvider returns the wrapper of the provider bound to t. An unusable wrapper is not a
// failure of the test but a mistake in it, so it panics even when t is a *Soft.
func ThatProvider[W any](t AssertT, p Provider[W]) W {
	w, err := FromProvider(p)
	if err != nil {
		panic(err)
	}
	return Bind(t, w)
}

// Construct builds a wrapper of type W for the subject using the registered constructors.
func Construct[W any](subject any) (W, error) {
	var zero W
	w, shape, err := registry.New(wrapperTypeOf[W](), subject)
	if err != nil {
		return zero, err
	}
	logger.V(4).Info("constructed wrapper", "wrapper", wrapperTypeOf[W](), "shape", shape)
	result, ok := w.(W)
	if !ok {
		return zero, errors.Wrapf(ErrContractViolation, "the constructor of %s returned %T", wrapperTypeOf[W](), w)
	}
	if _, err := coreOf(result); err != nil {
		return zero, err
	}
	return result, nil
}

// MustConstruct is Construct for the providers, it panics on error.
func MustConstruct[W any](subject any) W {
	w, err := Construct[W](subject)
	if err != nil {
		panic(err)
	}
	return w
}

// ThatAs returns a wrapper of type W for the subject bound to t. It panics, even when t is a
// *Soft, when no registered constructor accepts the subject.
func ThatAs[W any](t AssertT, subject any) W {
	return Bind(t, MustConstruct[W](subject))
}

func coreOf[W any](w W) (*core, error) {
	if isNil(any(w)) {
		return nil, errors.Wrapf(ErrContractViolation, "the provided %s instance is nil", wrapperTypeOf[W]())
	}
	wr, ok := any(w).(Wrapper)
	if !ok {
		return nil, errors.Wrapf(ErrContractViolation, "the provided %T instance must embed assertions.Abstract", w)
	}
	c := wr.wrapperCore()
	if !c.wired {
		return nil, errors.Wrapf(ErrContractViolation, "the provided %T instance was not wired up", w)
	}
	return c, nil
}

func wrapperTypeOf[W any]() reflect.Type {
	return reflect.TypeOf((*W)(nil)).Elem()
}
