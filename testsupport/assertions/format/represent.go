package format

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Represent returns the textual form of the value used in failure messages.
func Represent(v any) string {
	cfg := Current()
	return truncateLine(represent(reflect.ValueOf(v), cfg, visited{}), cfg.MaxLineLength)
}

// TypeName returns the name the failure messages use for the type of the value.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// visited holds the maps, slices and pointers being rendered on the current path.
type visited map[uintptr]bool

func represent(v reflect.Value, cfg Configuration, seen visited) string {
	if !v.IsValid() {
		return "nil"
	}
	if v.CanInterface() {
		switch value := v.Interface().(type) {
		case string:
			return strconv.Quote(value)
		case error:
			if isNilValue(v) {
				return "nil"
			}
			return strconv.Quote(value.Error())
		case reflect.Type:
			if isNilValue(v) {
				return "nil"
			}
			return value.String()
		case fmt.Stringer:
			if !isNilValue(v) {
				return value.String()
			}
		}
	}

	switch v.Kind() {
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Float32:
		return formatFloat(v.Float(), 32)
	case reflect.Float64:
		return formatFloat(v.Float(), 64)
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fmt.Sprint(v.Interface())
	case reflect.Pointer:
		if v.IsNil() {
			return "nil"
		}
		if v.Elem().Kind() == reflect.Struct {
			return "&" + spewConfig.Sprintf("%+v", v.Elem().Interface())
		}
		return nested(v, "(this pointer)", seen, func() string {
			return represent(v.Elem(), cfg, seen)
		})
	case reflect.Interface:
		if v.IsNil() {
			return "nil"
		}
		return represent(v.Elem(), cfg, seen)
	case reflect.Slice:
		if v.IsNil() {
			return "nil"
		}
		if v.Len() == 0 {
			return "[]"
		}
		return nested(v, "(this slice)", seen, func() string {
			return representElements(v, cfg, seen)
		})
	case reflect.Array:
		return representElements(v, cfg, seen)
	case reflect.Map:
		if v.IsNil() {
			return "nil"
		}
		return nested(v, "(this map)", seen, func() string {
			return representMap(v, cfg, seen)
		})
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if v.IsNil() {
			return "nil"
		}
		return v.Type().String()
	}
	if !v.CanInterface() {
		return v.Type().String()
	}
	return spewConfig.Sprintf("%+v", v.Interface())
}

// nested renders a map, slice or pointer, or the marker when it is already being rendered
// further up, so that self-referencing values terminate.
func nested(v reflect.Value, marker string, seen visited, render func() string) string {
	p := v.Pointer()
	if seen[p] {
		return marker
	}
	seen[p] = true
	defer delete(seen, p)
	return render()
}

func representElements(v reflect.Value, cfg Configuration, seen visited) string {
	elements := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if cfg.MaxElements > 0 && i == cfg.MaxElements {
			elements = append(elements, "...")
			break
		}
		elements = append(elements, represent(v.Index(i), cfg, seen))
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

func representMap(v reflect.Value, cfg Configuration, seen visited) string {
	entries := make([]string, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, represent(iter.Key(), cfg, seen)+"="+represent(iter.Value(), cfg, seen))
	}
	sort.Strings(entries)
	if cfg.MaxElements > 0 && len(entries) > cfg.MaxElements {
		entries = append(entries[:cfg.MaxElements], "...")
	}
	return "{" + strings.Join(entries, ", ") + "}"
}

// floats always carry a decimal point so that 10.0 is not mistaken for an integer
func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if strings.ContainsAny(s, ".eEIN") {
		return s
	}
	return s + ".0"
}

// truncateLine cuts after max runes.
func truncateLine(s string, max int) string {
	if max <= 0 || strings.Contains(s, "\n") || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
