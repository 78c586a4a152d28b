package ttt

import (
	"fmt"
	"reflect"
)

// ResourceOf returns a pointer to the resource of type T.
func ResourceOf[T any](w *World) (*T, bool) {
	value, ok := w.Resource(reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}

	return value.(*T), true
}

// MustResourceOf is like ResourceOf but panics if the resource does not exist.
func MustResourceOf[T any](w *World) *T {
	value, ok := ResourceOf[T](w)
	if !ok {
		panic(fmt.Sprintf("Resource of type %s does not exist in world", reflect.TypeFor[T]()))
	}

	return value
}

// ResourceExists is a Predicate that holds if a resource of type T is present.
func ResourceExists[T any](w *World) bool {
	_, ok := ResourceOf[T](w)
	return ok
}

// RemoveResourceOf removes the resource of type T, if any.
func RemoveResourceOf[T any](w *World) {
	w.RemoveResource(reflect.TypeFor[T]())
}
