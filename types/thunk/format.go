package thunk

import (
	"fmt"
	"reflect"
)

// String renders the forced value, so a thunk prints like its result.
// Printing evaluates the thunk.
func (t *Thunk[T]) String() string {
	v, err := ForceAny(t)
	if err != nil {
		return fmt.Sprintf("%%!v(ERROR=%v)", err)
	}

	return fmt.Sprint(v)
}

// GoString renders the thunk itself without evaluating it.
func (t *Thunk[T]) GoString() string {
	name := reflect.TypeFor[T]().String()

	if v, ok := t.Peek(); ok {
		return fmt.Sprintf("thunk.Thunk[%s]{%#v}", name, v)
	}

	return fmt.Sprintf("thunk.Thunk[%s]{%v}", name, NotEvaluated)
}
