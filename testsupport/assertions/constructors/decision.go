package constructors

import "reflect"

// Shape tells which kind of parameter conversion was used to pass the subject to the chosen
// constructor.
type Shape int

const (
	ShapeNone Shape = iota
	// ShapePrimitive passes the value a non-nil pointer subject points to.
	ShapePrimitive
	// ShapeExact passes the subject as is, its type being the parameter type.
	ShapeExact
	// ShapeBoxed passes a nil pointer subject to a constructor accepting that pointer type.
	ShapeBoxed
	// ShapeAddressed passes a pointer to a copy of the subject.
	ShapeAddressed
	// ShapeAssignable passes the subject to a parameter its type is assignable to.
	ShapeAssignable
	// ShapeNillable passes the zero value of a nillable parameter for an untyped nil subject.
	ShapeNillable
)

func (s Shape) String() string {
	switch s {
	case ShapePrimitive:
		return "primitive"
	case ShapeExact:
		return "exact"
	case ShapeBoxed:
		return "boxed"
	case ShapeAddressed:
		return "addressed"
	case ShapeAssignable:
		return "assignable"
	case ShapeNillable:
		return "nillable"
	default:
		return "none"
	}
}

// rule converts the subject into an argument for a parameter of the given type, if it applies.
type rule struct {
	shape   Shape
	convert func(subject reflect.Value, param reflect.Type) (reflect.Value, bool)
}

// decisionTable is evaluated top to bottom, each row against every constructor in registration
// order. The first conversion that applies wins.
var decisionTable = []rule{
	{shape: ShapePrimitive, convert: primitive},
	{shape: ShapeExact, convert: exact},
	{shape: ShapeBoxed, convert: boxed},
	{shape: ShapeAddressed, convert: addressed},
	{shape: ShapeAssignable, convert: assignable},
	{shape: ShapeNillable, convert: nillable},
}

func primitive(subject reflect.Value, param reflect.Type) (reflect.Value, bool) {
	if !subject.IsValid() || subject.Kind() != reflect.Pointer || subject.IsNil() {
		return reflect.Value{}, false
	}
	if subject.Type().Elem() != param {
		return reflect.Value{}, false
	}
	return subject.Elem(), true
}

func exact(subject reflect.Value, param reflect.Type) (reflect.Value, bool) {
	if !subject.IsValid() || subject.Type() != param {
		return reflect.Value{}, false
	}
	if subject.Kind() == reflect.Pointer && subject.IsNil() {
		return reflect.Value{}, false
	}
	return subject, true
}

func boxed(subject reflect.Value, param reflect.Type) (reflect.Value, bool) {
	if !subject.IsValid() || subject.Kind() != reflect.Pointer || !subject.IsNil() {
		return reflect.Value{}, false
	}
	if subject.Type() != param {
		return reflect.Value{}, false
	}
	return subject, true
}

func addressed(subject reflect.Value, param reflect.Type) (reflect.Value, bool) {
	if !subject.IsValid() || param.Kind() != reflect.Pointer || param.Elem() != subject.Type() {
		return reflect.Value{}, false
	}
	ptr := reflect.New(subject.Type())
	ptr.Elem().Set(subject)
	return ptr, true
}

func assignable(subject reflect.Value, param reflect.Type) (reflect.Value, bool) {
	if !subject.IsValid() || subject.Type() == param || !subject.Type().AssignableTo(param) {
		return reflect.Value{}, false
	}
	if subject.Kind() == reflect.Pointer && subject.IsNil() && param.Kind() != reflect.Interface {
		return reflect.Value{}, false
	}
	arg := reflect.New(param).Elem()
	arg.Set(subject)
	return arg, true
}

func nillable(subject reflect.Value, param reflect.Type) (reflect.Value, bool) {
	if subject.IsValid() {
		return reflect.Value{}, false
	}
	switch param.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return reflect.Zero(param), true
	}
	return reflect.Value{}, false
}
