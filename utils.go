package errno

import "reflect"

// AsError turns a handle into an error. A nil handle becomes a nil
// error interface rather than an interface holding a nil *Value.
func AsError(v *Value) error {
	if v == nil {
		return nil
	}
	return v
}

// From returns the *Value carried by err, or nil when err is nil or
// does not carry one.
func From(err error) *Value {
	if isNil(err) {
		return nil
	}
	var v *Value
	if As(err, &v) {
		return v
	}
	return nil
}

func isNil(err error) bool {
	if err == nil {
		return true
	}
	switch reflect.TypeOf(err).Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		if reflect.ValueOf(err).IsNil() {
			return true
		}
	default:
	}
	return false
}
