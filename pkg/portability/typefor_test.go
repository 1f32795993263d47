package portability_test

import "reflect"

// typeFor mirrors reflect.TypeFor, which requires Go 1.22+.
func typeFor[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }
