package configs

import (
	"errors"
	"fmt"
	"iter"
)

// First decodes the value at path from the first file defining it.
// A path defined nowhere gives the zero value. Decode errors panic.
func First[T any](loader Loader, path string) (ret T) {
	err := loader.AssignFirst(path, &ret)
	if errors.Is(err, ErrValueNotFound) {
		var zero T
		return zero
	}
	if err != nil {
		panic(err)
	}
	return
}

// All yields the value at path from every file that defines it, in loader order.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(fmt.Errorf("decode %s: %w", path, err))
			}
			if !yield(v) {
				return
			}
		}
	}
}
