package grammar

import (
	"errors"
	"reflect"
)

// Errors splits an error returned by Parse, Load or Compile into the
// individual grammar errors it carries.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() != reflect.Slice {
			continue
		}
		list := make([]error, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			if item, ok := v.Index(i).Interface().(error); ok {
				list = append(list, item)
			}
		}
		return list
	}
	return []error{err}
}
