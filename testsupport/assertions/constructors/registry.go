package constructors

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrNoSuitableConstructor is returned when none of the constructors registered for a wrapper
// type accepts the subject.
var ErrNoSuitableConstructor = errors.New("no suitable constructor")

// Constructor is a single argument wrapper constructor, as registered.
type Constructor struct {
	// Param is the type of the only parameter of the constructor.
	Param reflect.Type
	call  func(arg reflect.Value) any
}

// Resolution is the outcome of the decision table for one subject.
type Resolution struct {
	Constructor Constructor
	Shape       Shape
	arg         reflect.Value
}

// New invokes the chosen constructor.
func (r Resolution) New() any {
	return r.Constructor.call(r.arg)
}

// Registry holds the constructors known per wrapper type.
type Registry struct {
	lock         sync.RWMutex
	constructors map[reflect.Type][]Constructor
}

func NewRegistry() *Registry {
	return &Registry{
		constructors: map[reflect.Type][]Constructor{},
	}
}

// Register adds the constructor as a way to build wrappers of type W in the registry.
func Register[T, W any](r *Registry, ctor func(T) W) {
	param := reflect.TypeOf((*T)(nil)).Elem()
	wrapper := reflect.TypeOf((*W)(nil)).Elem()
	c := Constructor{
		Param: param,
		call: func(arg reflect.Value) any {
			var value T
			if arg.IsValid() && !(arg.Kind() == reflect.Interface && arg.IsNil()) {
				value = arg.Interface().(T)
			}
			return ctor(value)
		},
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	r.constructors[wrapper] = append(r.constructors[wrapper], c)
	klog.V(4).InfoS("registered wrapper constructor", "wrapper", wrapper, "param", param)
}

// Constructors returns the constructors registered for the wrapper type, in registration order.
func (r *Registry) Constructors(wrapper reflect.Type) []Constructor {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return append([]Constructor(nil), r.constructors[wrapper]...)
}

// Resolve picks the constructor of the wrapper type that should be used for the subject.
func (r *Registry) Resolve(wrapper reflect.Type, subject any) (Resolution, error) {
	ctors := r.Constructors(wrapper)
	value := reflect.ValueOf(subject)
	if len(ctors) == 0 {
		return Resolution{}, errors.Wrapf(ErrNoSuitableConstructor, "%s has no registered constructors", wrapper)
	}
	for _, row := range decisionTable {
		for _, c := range ctors {
			if arg, ok := row.convert(value, c.Param); ok {
				klog.V(4).InfoS("resolved wrapper constructor", "wrapper", wrapper, "subject", subjectType(value), "param", c.Param, "shape", row.shape)
				return Resolution{Constructor: c, Shape: row.shape, arg: arg}, nil
			}
		}
	}
	return Resolution{}, errors.Wrapf(ErrNoSuitableConstructor, "%s has no suitable constructor for a subject of type %s", wrapper, subjectType(value))
}

// New resolves the constructor and invokes it.
func (r *Registry) New(wrapper reflect.Type, subject any) (any, Shape, error) {
	res, err := r.Resolve(wrapper, subject)
	if err != nil {
		return nil, ShapeNone, err
	}
	return res.New(), res.Shape, nil
}

func subjectType(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}
